package cli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/dmitrijs2005/thesisvault/internal/cryptox"
)

// Envelopes and signatures cross command boundaries as base64-encoded JSON so
// they survive copy-paste through chats and shell pipelines.

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func decodeJSON(encoded string, v any) error {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("%w: not base64: %v", common.ErrMalformedState, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedState, err)
	}
	return nil
}

func newEncryptCmd(a *App) *cobra.Command {
	var (
		recipient   string
		usePassword bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message for a recipient or under a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if usePassword {
				pwd, err := a.GetPassword("Password: ")
				if err != nil {
					return err
				}
				defer common.WipeByteArray(pwd)

				out, err := cryptox.EncryptWithPassword(args[0], pwd)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, out)
				return nil
			}

			if recipient == "" {
				return fmt.Errorf("either --to or --password is required")
			}

			env, err := a.Keychain.EncryptMessage(args[0], recipient)
			if err != nil {
				return err
			}
			out, err := encodeJSON(env)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&recipient, "to", "", "recipient's base64 public key")
	cmd.Flags().BoolVar(&usePassword, "password", false, "use password-based encryption instead of a recipient key")
	return cmd
}

func newDecryptCmd(a *App) *cobra.Command {
	var (
		sender      string
		usePassword bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt a message from a sender or under a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if usePassword {
				pwd, err := a.GetPassword("Password: ")
				if err != nil {
					return err
				}
				defer common.WipeByteArray(pwd)

				var plaintext string
				if err := cryptox.DecryptWithPassword(args[0], pwd, &plaintext); err != nil {
					return err
				}
				fmt.Fprintln(a.out, plaintext)
				return nil
			}

			if sender == "" {
				return fmt.Errorf("either --from or --password is required")
			}

			env := &cryptox.Envelope{}
			if err := decodeJSON(args[0], env); err != nil {
				return err
			}
			plaintext, err := a.Keychain.DecryptMessage(env, sender)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, plaintext)
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "from", "", "sender's base64 public key")
	cmd.Flags().BoolVar(&usePassword, "password", false, "use password-based decryption instead of a sender key")
	return cmd
}

func newSignCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Produce a detached signature over a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := a.Keychain.Sign(args[0])
			if err != nil {
				return err
			}
			out, err := encodeJSON(sig)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
}

func newVerifyCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <message> <signature>",
		Short: "Check a detached signature against a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := &cryptox.Signature{}
			if err := decodeJSON(args[1], sig); err != nil {
				return err
			}
			if !cryptox.Verify(args[0], sig.Signature, sig.PublicKey) {
				fmt.Fprintln(a.out, "INVALID")
				return fmt.Errorf("signature verification failed")
			}
			fmt.Fprintln(a.out, "valid")
			return nil
		},
	}
}
