package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"ciphertoy/internal/app"
	"ciphertoy/internal/logging"
)

var (
	configPath string
	logLevel   string
	appCtx     *app.App
)

// Execute runs the root command with os.Args. An interrupt cancels the
// running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ciphertoy",
		Short:        "Classical ciphers and a brute-force cracker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.ciphertoy/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		encryptCmd(),
		decryptCmd(),
		bruteforceCmd(),
		scoreCmd(),
		infoCmd(),
		ciphersCmd(),
	)
	return root
}

// messageArg joins args into the message, or reads stdin when there are none.
func messageArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return "", nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
