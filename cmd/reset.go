package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		p := openProfile(cmd.Context(), st, newLogger(os.Stderr))
		p.Reset()
		fmt.Println("Profile reset.")
		return nil
	},
}
