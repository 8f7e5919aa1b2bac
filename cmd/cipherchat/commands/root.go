package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cipherchat/internal/app"
	"cipherchat/internal/domain"
	"cipherchat/internal/transport"
)

var (
	network  string
	bindHost string
	verbose  bool

	logger = logrus.New()
)

func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		logger.WithError(err).Error("cipherchat failed")
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cipherchat",
		Short:         "Two-party encrypted chat over a raw connection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(os.Stderr)
			logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			logger.SetLevel(logrus.InfoLevel)
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			_, err := transport.ParseNetwork(network)
			return err
		},
	}

	root.PersistentFlags().StringVar(&network, "network", string(transport.TCP), "transport: tcp or kcp")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(serverCmd(), clientCmd())
	return root
}

// runRole builds the app config shared by both roles and runs it.
func runRole(cmd *cobra.Command, role domain.Role, addr string) error {
	n, err := transport.ParseNetwork(network)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), app.Config{
		Role:    role,
		Address: addr,
		Network: n,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Logger:  logger,
	})
}
