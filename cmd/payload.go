package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/cpe/internal/evaluation"
)

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Print the request that would be sent for the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		s := openProfile(cmd.Context(), st, newLogger(os.Stderr)).Snapshot()
		p, err := evaluation.BuildPayload(s.QuizResponses, s.Goals, s.Background)
		if err != nil {
			return err
		}
		return writeFormatted(os.Stdout, format, p)
	},
}

func init() {
	payloadCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
}
