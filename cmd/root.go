package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cpe/internal/config"
)

var (
	v   = config.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:          "cpe",
	Short:        "Career profile evaluation quiz",
	Long:         "cpe walks you through a short career quiz and asks the evaluation service how your profile stacks up.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		c, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default: cpe.yaml in the config search path)")
	pf.String("db", "", "Path to SQLite database file (overrides CPE_DB env var)")
	pf.String("endpoint", "", "Base URL of the evaluation service")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	_ = v.BindPFlag(config.KeyDB, pf.Lookup("db"))
	_ = v.BindPFlag(config.KeyEndpoint, pf.Lookup("endpoint"))
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mockServerCmd)
	rootCmd.AddCommand(versionCmd)
}
