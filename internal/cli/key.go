package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/thesisvault/internal/common"
)

func newKeyCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the installation's encryption key pair",
	}
	cmd.AddCommand(
		newKeyGenerateCmd(a),
		newKeyShowCmd(a),
		newKeyClearCmd(a),
	)
	return cmd
}

func newKeyGenerateCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and persist a fresh key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Regenerating invalidates everything encrypted under the old
			// identity, so an existing pair requires confirmation.
			if _, err := a.Keychain.PublicKey(); err == nil && !force {
				answer, err := a.GetSimpleText("A key pair already exists. Replace it? Previously encrypted data will become unreadable. [y/N]: ")
				if err != nil {
					return err
				}
				if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
					fmt.Fprintln(a.out, "Aborted")
					return nil
				}
			}

			if _, err := a.Keychain.Generate(); err != nil {
				return err
			}

			pub, err := a.Keychain.PublicKey()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Key pair generated\npublic key: %s\n", pub)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key pair without asking")
	return cmd
}

func newKeyShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := a.Keychain.PublicKey()
			if errors.Is(err, common.ErrNoKeyPair) {
				return fmt.Errorf("no key pair yet, run 'thesisvault key generate' first")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, pub)
			return nil
		},
	}
}

func newKeyClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Wipe the key pair from memory and disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Keychain.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Keychain cleared")
			return nil
		},
	}
}
