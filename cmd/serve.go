package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"listproject/config"
	"listproject/server"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func createServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the list server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfig(configPath)
			if err != nil {
				return errors.Wrap(err, "loading config")
			}

			srv, err := server.NewServer(conf)
			if err != nil {
				return err
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigs
				srv.Cancel()
			}()

			return srv.StartServer()
		},
	}

	return cmd
}
