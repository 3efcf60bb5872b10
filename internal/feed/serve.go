// Package feed owns the socket boundary: one inbound connector per
// feed port, the outbound record publishers, and the file streamers
// that replay data files through the sockets.
package feed

import (
	"context"
	"io"
	"net"

	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/pkg/scanner"
	"main/pkg/tcp"
)

// inboundDelim frames the four feed ports; outboundDelim frames the
// streaming and execution output ports.
const (
	inboundDelim  = '\n'
	outboundDelim = '\r'
)

const readChunkSize = 32 * 1024

// serve accepts connections sequentially and feeds complete records to
// onRecord. Sequential accept keeps the whole ingress chain for one
// port on one goroutine, so stores reached from a single port need no
// locks. Returns when the context is done or the process is
// shutting down.
func serve(ctx context.Context, srv *tcp.Server, delim byte, onRecord func([]byte)) error {
	if err := srv.Listen(); err != nil {
		return err
	}
	return acceptLoop(ctx, srv, delim, onRecord)
}

// acceptLoop drives an already-listening server.
func acceptLoop(ctx context.Context, srv *tcp.Server, delim byte, onRecord func([]byte)) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-sys.Shutdown():
		case <-done:
		}
		_ = srv.Close()
	}()

	for {
		conn, err := srv.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			select {
			case <-sys.Shutdown():
				return nil
			default:
			}
			return err
		}
		drainConn(conn, delim, onRecord)
	}
}

// drainConn reads until the peer closes, carrying partial trailing
// bytes across reads.
func drainConn(conn net.Conn, delim byte, onRecord func([]byte)) {
	defer func() { _ = conn.Close() }()

	var buf []byte
	chunk := make([]byte, readChunkSize)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			records, rest := scanner.SplitRecords(buf, delim)
			for _, record := range records {
				onRecord(record)
			}
			buf = append(buf[:0], rest...)
		}
		if err != nil {
			if err != io.EOF {
				logs.Errorf("feed read failed on %s: %+v", conn.LocalAddr(), err)
			}
			return
		}
	}
}
