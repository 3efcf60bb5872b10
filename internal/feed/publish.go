package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/soa"
	"main/pkg/tcp"
)

var _ soa.Connector[model.PriceStream] = (*PublishConnector[model.PriceStream])(nil)

const (
	publishQueueSize  = 1024
	dialRetryAttempts = 100
	dialRetryBackoff  = 20 * time.Millisecond
)

// Texter renders an entity as one wire record.
type Texter interface {
	Text() string
}

// PublishConnector pushes formatted records over a localhost socket.
// It owns both halves of the loopback: a listener that prints whatever
// arrives to stdout, and a client that writes the published records.
// Publication is best-effort; a full queue or a write error drops the
// record.
type PublishConnector[V Texter] struct {
	name    string
	srv     *tcp.Server
	queue   *bus.Queue[string]
	metrics *obs.Metrics
}

func NewPublishConnector[V Texter](name, addr string, metrics *obs.Metrics) (*PublishConnector[V], error) {
	srv, err := tcp.NewServer(addr)
	if err != nil {
		return nil, err
	}
	return &PublishConnector[V]{
		name:    name,
		srv:     srv,
		queue:   bus.NewQueue[string](publishQueueSize),
		metrics: metrics,
	}, nil
}

// Publish enqueues the record without blocking the ingress chain.
func (c *PublishConnector[V]) Publish(v V) {
	if err := c.queue.TryPublish(v.Text()); err != nil {
		logs.Warnf("%s publish: dropping record: %+v", c.name, err)
		c.metrics.IncPublishDrop()
	}
}

// Close stops accepting new records; Run returns once the queue is
// drained.
func (c *PublishConnector[V]) Close() {
	c.queue.Close()
}

// Run serves the loopback listener and drains the publish queue into
// the socket until the queue closes or the context is done.
func (c *PublishConnector[V]) Run(ctx context.Context) error {
	if err := c.srv.Listen(); err != nil {
		return err
	}
	go func() {
		if err := acceptLoop(ctx, c.srv, outboundDelim, func(record []byte) {
			fmt.Printf("%s> %s\n", c.name, record)
		}); err != nil {
			logs.Errorf("%s loopback listener failed: %+v", c.name, err)
		}
	}()

	client, err := tcp.NewClient(c.srv.ListenAddr().String())
	if err != nil {
		return err
	}
	conn, err := client.DialRetry(dialRetryAttempts, dialRetryBackoff)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	frame := make([]byte, 0, 256)
	c.queue.Run(ctx, func(record string) {
		frame = append(frame[:0], record...)
		frame = append(frame, outboundDelim)
		if _, err := conn.Write(frame); err != nil {
			logs.Errorf("%s publish write failed: %+v", c.name, err)
		}
	})
	return nil
}
