package main

import (
	"log/slog"
	"os"

	"vplmon/config"
	logs "vplmon/internal/infra/log"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "vplctl",
		Short:         "Operator tooling for the VPL lift monitor",
		Long:          "vplctl prepares the preference database, operator credentials and checks the SMS gateway.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(hashPasswordCmd())
	root.AddCommand(sendSMSCmd())

	if err := root.Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// loadConfig reads the same configuration the services use and builds their logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
