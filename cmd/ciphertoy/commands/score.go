package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	var wordlist string
	cmd := &cobra.Command{
		Use:   "score [text...]",
		Short: "Print how English-like a text is",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("wordlist") {
				appCtx.Config.Wordlist = wordlist
			}
			text, err := messageArg(cmd, args)
			if err != nil {
				return err
			}
			w, err := appCtx.Wire(cmd.Context())
			if err != nil {
				return err
			}
			if w.WordlistErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; scoring with the embedded list\n", w.WordlistErr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", w.Scorer.Score(text))
			return nil
		},
	}
	cmd.Flags().StringVar(&wordlist, "wordlist", "", "scoring word list file (default embedded list)")
	return cmd
}
