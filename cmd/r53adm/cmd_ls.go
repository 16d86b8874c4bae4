package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/r53adm/r53adm/usecase/record"
)

func newCmdLs() *cobra.Command {
	return &cobra.Command{
		Use:                "ls <domain>",
		Short:              "List all records of the zone owning a domain",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			u, err := buildRecordUseCase(cmd, s)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			out, err := u.List(ctx, &record.ListInput{Domain: args[0]})
			if err != nil {
				return err
			}
			if s.Verbose {
				return printJSONLines(cmd.OutOrStdout(), out.Records)
			}
			printRecords(cmd.OutOrStdout(), out.Records)
			return nil
		},
	}
}
