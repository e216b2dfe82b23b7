package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/report"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Submit the saved profile and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("json")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		logger := newLogger(os.Stderr)
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		p := openProfile(ctx, st, logger)
		ev, err := newEvaluator(st, logger)
		if err != nil {
			return err
		}

		s := p.Snapshot()
		res, err := evaluation.EvaluateProfile(ctx, ev, s.QuizResponses, s.Goals, s.Background)
		switch {
		case errors.Is(err, evaluation.ErrCancelled):
			fmt.Fprintln(os.Stderr, "Evaluation cancelled.")
			return err
		case errors.Is(err, evaluation.ErrBackgroundRequired):
			return fmt.Errorf("no track selected yet; run the quiz first: %w", err)
		case err != nil:
			return err
		}

		p.SetEvaluationResults(res)
		if raw {
			return writeFormatted(os.Stdout, "json", res)
		}
		return report.WriteText(os.Stdout, res)
	},
}

func init() {
	evaluateCmd.Flags().Bool("json", false, "Print the raw evaluation instead of the report")
}
