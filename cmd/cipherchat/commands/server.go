package commands

import (
	"net"

	"github.com/spf13/cobra"

	"cipherchat/internal/domain"
)

// serverCmd waits for exactly one peer, then chats with it.
func serverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server PORT",
		Aliases: []string{"listen"},
		Short:   "Wait for one peer on PORT and chat with it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRole(cmd, domain.Listener, net.JoinHostPort(bindHost, args[0]))
		},
	}
	cmd.Flags().StringVar(&bindHost, "bind", "0.0.0.0", "interface to listen on")
	return cmd
}
