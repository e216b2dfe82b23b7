package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		p := openProfile(cmd.Context(), st, newLogger(os.Stderr))
		plain, err := toPlain(p.Snapshot())
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		return writeFormatted(os.Stdout, format, plain)
	},
}

func init() {
	profileCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
}
