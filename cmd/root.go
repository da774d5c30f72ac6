package cmd

import "github.com/spf13/cobra"

var configPath string

// InitializeCommands sets up the cobra commands
func InitializeCommands() *cobra.Command {
	rootCmd := createRootCommand()

	rootCmd.AddCommand(
		createServeCommand(),
		createSendCommand(),
	)

	return rootCmd
}

func createRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listproject",
		Short: "listproject keeps a linked list on a server fed by queued client operations",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the yaml config file")

	return cmd
}
