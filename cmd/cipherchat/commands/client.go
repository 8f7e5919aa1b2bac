package commands

import (
	"github.com/spf13/cobra"

	"cipherchat/internal/domain"
)

// clientCmd dials a waiting server.
func clientCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "client HOST:PORT",
		Aliases: []string{"connect"},
		Short:   "Connect to a peer and chat with it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRole(cmd, domain.Initiator, args[0])
		},
	}
}
