package main

import (
	"context"
	"fmt"
	"time"

	"vplmon/internal/errors"
	"vplmon/internal/infra/gateway/sms"

	"github.com/spf13/cobra"
)

func sendSMSCmd() *cobra.Command {
	var (
		message string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "send-sms phone [phone...]",
		Short: "Send a message through the configured send-sms endpoint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			results, err := sms.NewHTTPGateway(cfg, logger).SendSMS(ctx, args, message, time.Now())
			if err != nil {
				return err
			}

			failed := 0
			for _, result := range results {
				if result.Succeeded() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tsent\t%s\n", result.Recipient, result.ProviderID)

					continue
				}
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tfailed\t%s\n", result.Recipient, result.ErrorDetail)
			}
			if failed > 0 {
				return errors.Errorf("%d of %d messages failed", failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "VPL monitor test message", "message body")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	return cmd
}
