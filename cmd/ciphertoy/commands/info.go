package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ciphertoy/internal/cipher"
	"ciphertoy/internal/domain"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <cipher>",
		Short: "Describe a cipher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s brute force)\n\n%s\n", kind.Label(), kind.Strategy(), cipher.Describe(kind))
			return nil
		},
	}
}

func ciphersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ciphers",
		Short: "List supported ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKEY\tBRUTE FORCE")
			for _, k := range domain.AllKinds() {
				key := "-"
				if cipher.NeedsKey(k) {
					key = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k, key, k.Strategy())
			}
			return tw.Flush()
		},
	}
}
