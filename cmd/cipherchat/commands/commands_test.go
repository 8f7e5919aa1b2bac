package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherchat/internal/transport"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(&bytes.Buffer{})
	return root.Execute()
}

func TestRoot_UnknownNetwork(t *testing.T) {
	err := execute(t, "--network", "udp", "client", "127.0.0.1:1")
	require.ErrorIs(t, err, transport.ErrUnknownNetwork)
}

func TestRoot_RoleArgumentRequired(t *testing.T) {
	assert.Error(t, execute(t, "server"))
	assert.Error(t, execute(t, "client"))
	assert.Error(t, execute(t, "client", "a:1", "b:2"))
}

func TestRoot_Aliases(t *testing.T) {
	root := newRootCmd()

	cmd, _, err := root.Find([]string{"listen"})
	require.NoError(t, err)
	assert.Equal(t, "server", cmd.Name())

	cmd, _, err = root.Find([]string{"connect"})
	require.NoError(t, err)
	assert.Equal(t, "client", cmd.Name())
}

func TestClient_ConnectFailure(t *testing.T) {
	// Port 1 on loopback is not expected to have a listener.
	err := execute(t, "client", "127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to 127.0.0.1:1")
}
