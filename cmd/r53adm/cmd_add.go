package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/r53adm/r53adm/usecase/record"
)

func newCmdAdd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <fqdn> <address>",
		Short:              "Create an A or AAAA record",
		Long:               "Create a record named <fqdn> pointing at <address> in the zone owning the FQDN's registrable domain. IPv4 addresses produce an A record, IPv6 an AAAA record.",
		Args:               cobra.ExactArgs(2),
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
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			out, err := u.Add(ctx, &record.AddInput{FQDN: args[0], Address: args[1], TTL: s.TTL})
			if err != nil {
				return err
			}
			return printReceipt(cmd.OutOrStdout(), out.Receipt)
		},
	}
}
