package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cpe/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past evaluation requests",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent evaluation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		failed, _ := cmd.Flags().GetBool("failed")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.EventRepo().QueryEvaluationRequests(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println("No evaluation requests found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Track", "HTTP", "Ms", "Outcome")
		fmt.Println(strings.Repeat("─", 72))

		for _, r := range recs {
			if failed && r.Success {
				continue
			}
			status := "-"
			if r.StatusCode > 0 {
				status = fmt.Sprint(r.StatusCode)
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-6s  %-7d  %s\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Background,
				status,
				r.LatencyMs,
				outcome(r),
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full request and response of an evaluation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.EventRepo().GetEvaluationRequest(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		if r == nil {
			return fmt.Errorf("request %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", r.ID)
		fmt.Printf("Time:      %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Request:   %s\n", r.RequestID)
		fmt.Printf("Endpoint:  %s\n", r.Endpoint)
		fmt.Printf("Track:     %s\n", r.Background)
		fmt.Printf("Status:    %d\n", r.StatusCode)
		fmt.Printf("Latency:   %dms\n", r.LatencyMs)
		fmt.Printf("Outcome:   %s\n", outcome(*r))
		if r.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", r.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		fmt.Println(orNotCaptured(r.RequestBody))

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		fmt.Println(orNotCaptured(r.ResponseBody))
		return nil
	},
}

func outcome(r store.EvaluationRequestRecord) string {
	switch {
	case r.Success:
		return "✓ ok"
	case r.Cancelled:
		return "cancelled"
	default:
		return "✗ failed"
	}
}

func orNotCaptured(s string) string {
	if s == "" {
		return "(not captured)"
	}
	return s
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	historyListCmd.Flags().Bool("failed", false, "Only show failed or cancelled requests")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
