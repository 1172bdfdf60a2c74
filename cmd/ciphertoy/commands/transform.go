package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ciphertoy/internal/cipher"
	"ciphertoy/internal/domain"
)

func encryptCmd() *cobra.Command {
	return transformCmd(domain.Encrypt)
}

func decryptCmd() *cobra.Command {
	return transformCmd(domain.Decrypt)
}

func transformCmd(dir domain.Direction) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <cipher> [message...]", dir),
		Short: fmt.Sprintf("%s a message (reads stdin when no message is given)", titleCase(dir.String())),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			if cipher.NeedsKey(kind) && !cmd.Flags().Changed("key") {
				return fmt.Errorf("%s needs a key (-k)", kind)
			}
			k, err := cipher.ParseKey(kind, key)
			if err != nil {
				return err
			}
			msg, err := messageArg(cmd, args[1:])
			if err != nil {
				return err
			}
			out, err := cipher.Apply(kind, msg, k, dir)
			if err != nil {
				return err
			}
			appCtx.Log.Debug("transform",
				zap.Stringer("cipher", kind), zap.Stringer("direction", dir), zap.Int("len", len(msg)))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "key: shift or rails as an integer, \"a,b\" for affine, text otherwise")
	return cmd
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
