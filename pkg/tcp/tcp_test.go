package tcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerClientRoundTrip(t *testing.T) {
	srv, err := NewServer("127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, srv.Listen())
	defer func() { _ = srv.Close() }()

	client, err := NewClient(srv.ListenAddr().String())
	require.NoError(t, err)

	done := make(chan []byte, 1)
	go func() {
		conn, aerr := srv.Accept()
		if aerr != nil {
			done <- nil
			return
		}
		defer func() { _ = conn.Close() }()
		buf := make([]byte, 16)
		n, _ := conn.Read(buf)
		done <- buf[:n]
	}()

	conn, err := client.Dial()
	require.NoError(t, err)
	_, err = conn.Write([]byte("ping\n"))
	require.NoError(t, err)
	_ = conn.Close()

	assert.Equal(t, []byte("ping\n"), <-done)
}

func TestServerMisuse(t *testing.T) {
	var nilServer *Server
	require.ErrorIs(t, nilServer.Listen(), ErrNilServer)

	srv, err := NewServer("127.0.0.1:0")
	require.NoError(t, err)
	_, err = srv.Accept()
	require.ErrorIs(t, err, ErrNotListening)

	require.NoError(t, srv.Listen())
	require.ErrorIs(t, srv.Listen(), ErrAlreadyListening)
	require.NoError(t, srv.Close())

	_, err = NewServer("")
	require.ErrorIs(t, err, ErrEmptyAddr)
	_, err = NewClient("")
	require.ErrorIs(t, err, ErrEmptyAddr)
}
