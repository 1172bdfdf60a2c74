package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ciphertoy/internal/domain"
	"ciphertoy/internal/progress"
	"ciphertoy/internal/services/bruteforce"
)

func bruteforceCmd() *cobra.Command {
	var (
		names      []string
		all        bool
		limit      int
		workers    int
		wordlist   string
		dictionary string
		results    string
		top        int
	)
	cmd := &cobra.Command{
		Use:   "bruteforce [message...]",
		Short: "Try the selected ciphers and rank likely plaintexts",
		Long: "Decrypts the message with every key of every selected cipher, scores each\n" +
			"attempt against an English word list and prints the best guesses. Keyed\n" +
			"ciphers draw their keys from the configured dictionary file. The full\n" +
			"ranking is written to the results file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := selectKinds(names, all)
			if err != nil {
				return err
			}

			cfg := &appCtx.Config
			flags := cmd.Flags()
			if flags.Changed("limit") {
				cfg.BruteforceLimit = limit
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("wordlist") {
				cfg.Wordlist = wordlist
			}
			if flags.Changed("dictionary") {
				cfg.Dictionary = dictionary
			}
			if flags.Changed("results") {
				cfg.Results = results
			}
			if flags.Changed("top") {
				cfg.Top = top
			}

			msg, err := messageArg(cmd, args)
			if err != nil {
				return err
			}
			w, err := appCtx.Wire(cmd.Context())
			if err != nil {
				return err
			}
			errOut := cmd.ErrOrStderr()
			if w.WordlistErr != nil {
				fmt.Fprintf(errOut, "warning: %v; scoring with the embedded list\n", w.WordlistErr)
			}

			tr := &progress.Tracker{}
			line := startProgress(tr)
			res, err := w.Bruteforce.Run(cmd.Context(), bruteforce.Request{
				Message: msg,
				Kinds:   kinds,
				Limit:   cfg.RequestLimit(),
			}, tr)
			line.Stop()
			if err != nil {
				return err
			}

			for _, f := range res.Failures {
				fmt.Fprintf(errOut, "warning: %v\n", f)
			}
			if res.Skipped > 0 {
				fmt.Fprintf(errOut, "warning: %d keys skipped\n", res.Skipped)
			}
			if res.SinkErr != nil {
				fmt.Fprintf(errOut, "warning: results not saved: %v\n", res.SinkErr)
			} else if w.Sink != nil {
				appCtx.Log.Info("results written", zap.String("path", w.Sink.Path()), zap.Int("candidates", len(res.All)))
			}
			fmt.Fprint(cmd.OutOrStdout(), bruteforce.FormatReport(res))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&names, "cipher", "c", nil, "ciphers to try, comma separated (see the ciphers command)")
	f.BoolVar(&all, "all", false, "try every cipher")
	f.IntVar(&limit, "limit", bruteforce.DefaultLimit, "dictionary keys to try per keyed cipher; 0 tries all")
	f.IntVar(&workers, "workers", 0, "concurrent dictionary workers (default GOMAXPROCS)")
	f.StringVar(&wordlist, "wordlist", "", "scoring word list file (default embedded list)")
	f.StringVar(&dictionary, "dictionary", "", "key dictionary file, optionally .zst or .xz")
	f.StringVar(&results, "results", "", "file for the full ranking; empty disables it")
	f.IntVar(&top, "top", 0, "number of results to print")
	return cmd
}

func selectKinds(names []string, all bool) ([]domain.Kind, error) {
	if all {
		return domain.AllKinds(), nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("select ciphers with --cipher or use --all")
	}
	kinds := make([]domain.Kind, 0, len(names))
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), "all") {
			return domain.AllKinds(), nil
		}
		k, err := domain.ParseKind(n)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
