package feed

import (
	"context"
	"strconv"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/px"
	"main/internal/refdata"
	"main/internal/soa"
	"main/internal/tradebook"
	"main/pkg/scanner"
	"main/pkg/tcp"
)

var _ soa.SubscriberConnector[model.Trade] = (*TradeConnector)(nil)

// TradeConnector ingests booked trade records. Inbound only.
type TradeConnector struct {
	svc     *tradebook.Service
	srv     *tcp.Server
	metrics *obs.Metrics
}

func NewTradeConnector(addr string, svc *tradebook.Service, metrics *obs.Metrics) (*TradeConnector, error) {
	srv, err := tcp.NewServer(addr)
	if err != nil {
		return nil, err
	}
	return &TradeConnector{svc: svc, srv: srv, metrics: metrics}, nil
}

func (c *TradeConnector) Publish(model.Trade) {}

// Subscribe drives ingress until the source closes.
func (c *TradeConnector) Subscribe(ctx context.Context) error {
	return serve(ctx, c.srv, inboundDelim, func(record []byte) {
		start := time.Now()
		trade, err := ParseTradeRecord(record)
		if err != nil {
			logs.Warnf("trade feed: dropping record: %+v", err)
			c.metrics.IncParseDrop(obs.FeedTrade)
			return
		}
		c.metrics.IncRecord(obs.FeedTrade)
		c.svc.OnMessage(trade)
		c.metrics.ObserveChain(time.Since(start))
	})
}

// ParseTradeRecord parses "cusip,tradeId,price,book,quantity,side".
func ParseTradeRecord(record []byte) (model.Trade, error) {
	fields := scanner.Fields(record)
	if len(fields) != 6 {
		return model.Trade{}, errors.Wrapf(ErrBadRecord, "trade fields: %d", len(fields))
	}

	product, err := refdata.ProductFor(fields[0])
	if err != nil {
		return model.Trade{}, err
	}
	price, err := px.Parse(fields[2])
	if err != nil {
		return model.Trade{}, errors.Wrap(err, "price")
	}
	book, err := enum.ParseBook(fields[3])
	if err != nil {
		return model.Trade{}, err
	}
	quantity, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil || quantity < 0 {
		return model.Trade{}, errors.Wrapf(ErrBadRecord, "quantity: %q", fields[4])
	}
	side, err := enum.ParseTradeSide(fields[5])
	if err != nil {
		return model.Trade{}, err
	}

	return model.Trade{
		Product:  product,
		TradeID:  fields[1],
		Price:    price,
		Book:     book,
		Quantity: quantity,
		Side:     side,
	}, nil
}
