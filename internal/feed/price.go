package feed

import (
	"context"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/obs"
	"main/internal/pricing"
	"main/internal/px"
	"main/internal/refdata"
	"main/internal/soa"
	"main/pkg/scanner"
	"main/pkg/tcp"
)

var ErrBadRecord = errors.New("malformed feed record")

var _ soa.SubscriberConnector[model.Price] = (*PriceConnector)(nil)

// PriceConnector ingests price records. Inbound only: Publish is a
// no-op.
type PriceConnector struct {
	svc     *pricing.Service
	srv     *tcp.Server
	metrics *obs.Metrics
}

func NewPriceConnector(addr string, svc *pricing.Service, metrics *obs.Metrics) (*PriceConnector, error) {
	srv, err := tcp.NewServer(addr)
	if err != nil {
		return nil, err
	}
	return &PriceConnector{svc: svc, srv: srv, metrics: metrics}, nil
}

func (c *PriceConnector) Publish(model.Price) {}

// Subscribe drives ingress until the source closes.
func (c *PriceConnector) Subscribe(ctx context.Context) error {
	return serve(ctx, c.srv, inboundDelim, func(record []byte) {
		start := time.Now()
		price, err := ParsePriceRecord(record)
		if err != nil {
			logs.Warnf("price feed: dropping record: %+v", err)
			c.metrics.IncParseDrop(obs.FeedPrice)
			return
		}
		c.metrics.IncRecord(obs.FeedPrice)
		c.svc.OnMessage(price)
		c.metrics.ObserveChain(time.Since(start))
	})
}

// ParsePriceRecord parses "timestamp,cusip,bid,ask[,spread]". Prices
// are decimal or fractional 32nd notation. The spread column is
// optional; when absent it is derived from ask minus bid.
func ParsePriceRecord(record []byte) (model.Price, error) {
	fields := scanner.Fields(record)
	if len(fields) != 4 && len(fields) != 5 {
		return model.Price{}, errors.Wrapf(ErrBadRecord, "price fields: %d", len(fields))
	}

	product, err := refdata.ProductFor(fields[1])
	if err != nil {
		return model.Price{}, err
	}
	bid, err := px.Parse(fields[2])
	if err != nil {
		return model.Price{}, errors.Wrap(err, "bid")
	}
	ask, err := px.Parse(fields[3])
	if err != nil {
		return model.Price{}, errors.Wrap(err, "ask")
	}

	spread := ask - bid
	if len(fields) == 5 {
		spread, err = px.Parse(fields[4])
		if err != nil {
			return model.Price{}, errors.Wrap(err, "spread")
		}
	}
	if spread < 0 {
		return model.Price{}, errors.Wrapf(ErrBadRecord, "negative spread: %f", spread)
	}

	return model.Price{
		Product:        product,
		Mid:            (bid + ask) / 2,
		BidOfferSpread: spread,
	}, nil
}
