package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/cpe/internal/mockserver"
)

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Serve canned evaluations for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		delay, _ := cmd.Flags().GetDuration("delay")
		origins, _ := cmd.Flags().GetStringSlice("origin")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := mockserver.Options{
			Delay:          delay,
			AllowedOrigins: origins,
			Logger:         newLogger(os.Stderr),
		}
		return mockserver.ListenAndServe(ctx, addr, opts, func(a net.Addr) {
			fmt.Printf("Mock evaluation service listening on http://%s%s\n", a, mockserver.MountPath)
			fmt.Printf("Point the quiz at it with --endpoint http://%s/career-profile-tool\n", a)
		})
	},
}

func init() {
	mockServerCmd.Flags().String("addr", "127.0.0.1:8000", "Listen address")
	mockServerCmd.Flags().Duration("delay", 0, "Artificial delay before each evaluation response")
	mockServerCmd.Flags().StringSlice("origin", nil, "Allowed CORS origin (repeatable)")
}
