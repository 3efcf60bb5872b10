package feed

import (
	"context"
	"io"
	"os"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/pkg/tcp"
)

const streamChunkSize = 16 * 1024

// FileStreamer replays a data file through a feed socket, standing in
// for the external market. It dials the inbound connector's port and
// writes the file bytes as-is; the connector's framing does the rest.
type FileStreamer struct {
	path   string
	client *tcp.Client
}

func NewFileStreamer(path, addr string) (*FileStreamer, error) {
	client, err := tcp.NewClient(addr)
	if err != nil {
		return nil, err
	}
	return &FileStreamer{path: path, client: client}, nil
}

// Stream sends the whole file and closes the connection.
func (s *FileStreamer) Stream(ctx context.Context) error {
	file, err := os.Open(s.path)
	if err != nil {
		return errors.Wrapf(err, "open feed file %s", s.path)
	}
	defer func() { _ = file.Close() }()

	conn, err := s.client.DialRetry(dialRetryAttempts, dialRetryBackoff)
	if err != nil {
		return errors.Wrapf(err, "dial feed %s", s.client.Addr())
	}
	defer func() { _ = conn.Close() }()

	chunk := make([]byte, streamChunkSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := file.Read(chunk)
		if n > 0 {
			if _, werr := conn.Write(chunk[:n]); werr != nil {
				return errors.Wrapf(werr, "stream %s", s.path)
			}
		}
		if err != nil {
			if err != io.EOF {
				return errors.Wrapf(err, "read %s", s.path)
			}
			break
		}
	}

	logs.Infof("streamed %s to %s", s.path, s.client.Addr())
	return nil
}
