package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	_ "github.com/r53adm/r53adm/adapters/drivers/dns/route53"
	"github.com/r53adm/r53adm/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "r53adm",
		Short:   "Route 53 zone and record administration CLI",
		Long:    "r53adm administers hosted zones and resource records in Amazon Route 53.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := os.Getenv("R53ADM_CONFIG")
	if defaultConfig == "" {
		defaultConfig = defaultConfigFile
	}
	cmd.PersistentFlags().String("config", defaultConfig, "Config file (env R53ADM_CONFIG)")
	cmd.PersistentFlags().Int64("ttl", defaultTTL, "TTL in seconds for created records (add only)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Structured JSON listing output instead of terse lines")
	cmd.PersistentFlags().String("log-format", defaultLogFormat, "Log format (human|text|json) (env R53ADM_LOG_FORMAT)")
	cmd.PersistentFlags().String("profile", "", "AWS shared-config profile")
	cmd.PersistentFlags().String("region", "", "AWS region override")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		s, err := resolveSettings(c)
		if err != nil {
			return err
		}
		l, err := logging.New(s.LogFormat, slog.LevelInfo)
		if err != nil {
			return err
		}
		c.SetContext(logging.WithLogger(c.Context(), l))
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdZones())
	cmd.AddCommand(newCmdLs())
	cmd.AddCommand(newCmdAdd())
	cmd.AddCommand(newCmdDel())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Error(ctx, "Failed", "error", err)
		os.Exit(1)
	}
}
