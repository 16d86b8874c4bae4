package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/r53adm/r53adm/usecase/zone"
)

func newCmdZones() *cobra.Command {
	return &cobra.Command{
		Use:                "zones",
		Short:              "List hosted zones in the account",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			u, err := buildZoneUseCase(cmd, s)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			out, err := u.List(ctx, &zone.ListInput{})
			if err != nil {
				return err
			}
			if s.Verbose {
				return printJSONLines(cmd.OutOrStdout(), out.Zones)
			}
			printZones(cmd.OutOrStdout(), out.Zones)
			return nil
		},
	}
}
