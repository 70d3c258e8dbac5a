package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree around the given App.
func NewRootCmd(a *App) *cobra.Command {
	// -c/--config is consumed early by config.LoadConfig (via flagx) before
	// cobra runs; it is declared here only so cobra accepts it.
	var configPath string

	root := &cobra.Command{
		Use:           "thesisvault",
		Short:         "Local encrypted storage for thesis files and notes",
		Long:          "thesisvault keeps thesis files, folders and notes in a local SQLite vault\nand manages the installation's encryption keychain.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.Init(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.Close()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to JSON config file")
	root.PersistentFlags().StringVarP(&a.Config.DataDir, "data-dir", "d", a.Config.DataDir, "data directory")

	root.AddCommand(
		newUploadCmd(a),
		newDownloadCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newFoldersCmd(a),
		newRemoveCmd(a),
		newMoveCmd(a),
		newMkdirCmd(a),
		newRmdirCmd(a),
		newNoteCmd(a),
		newKeyCmd(a),
		newEncryptCmd(a),
		newDecryptCmd(a),
		newSignCmd(a),
		newVerifyCmd(a),
		newStatsCmd(a),
		newActivityCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(a *App) {
	root := NewRootCmd(a)
	if err := root.Execute(); err != nil {
		a.Logger.Error(context.Background(), err.Error())
		os.Exit(1)
	}
}
