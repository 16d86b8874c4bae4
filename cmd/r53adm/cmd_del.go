package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/r53adm/r53adm/usecase/record"
)

func newCmdDel() *cobra.Command {
	return &cobra.Command{
		Use:                "del <fqdn>",
		Short:              "Delete all records matching an FQDN",
		Long:               "Delete every record whose name exactly equals the normalized FQDN, as one atomic change batch.",
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
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			out, err := u.Delete(ctx, &record.DeleteInput{FQDN: args[0]})
			if err != nil {
				return err
			}
			return printReceipt(cmd.OutOrStdout(), out.Receipt)
		},
	}
}
