package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"listproject/client"
	"listproject/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func createSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Forward client actions from stdin or a file to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfig(configPath)
			if err != nil {
				return errors.Wrap(err, "loading config")
			}

			manager, err := client.NewClientsManager(conf)
			if err != nil {
				return err
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigs
				manager.Cancel()
			}()

			return manager.ListenClientActions()
		},
	}

	return cmd
}
