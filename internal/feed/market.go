package feed

import (
	"context"
	"strconv"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/marketdata"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/px"
	"main/internal/refdata"
	"main/internal/soa"
	"main/pkg/scanner"
	"main/pkg/tcp"
)

const bookDepth = 5

var _ soa.SubscriberConnector[model.OrderBook] = (*MarketConnector)(nil)

// MarketConnector ingests depth-5 order book records, aggregates
// duplicate levels, and hands the book to the market data service.
type MarketConnector struct {
	svc     *marketdata.Service
	srv     *tcp.Server
	metrics *obs.Metrics
}

func NewMarketConnector(addr string, svc *marketdata.Service, metrics *obs.Metrics) (*MarketConnector, error) {
	srv, err := tcp.NewServer(addr)
	if err != nil {
		return nil, err
	}
	return &MarketConnector{svc: svc, srv: srv, metrics: metrics}, nil
}

func (c *MarketConnector) Publish(model.OrderBook) {}

// Subscribe drives ingress until the source closes.
func (c *MarketConnector) Subscribe(ctx context.Context) error {
	return serve(ctx, c.srv, inboundDelim, func(record []byte) {
		start := time.Now()
		book, err := ParseBookRecord(record)
		if err != nil {
			logs.Warnf("market feed: dropping record: %+v", err)
			c.metrics.IncParseDrop(obs.FeedMarket)
			return
		}
		c.metrics.IncRecord(obs.FeedMarket)
		c.svc.OnMessage(marketdata.AggregateDepth(book))
		c.metrics.ObserveChain(time.Since(start))
	})
}

// ParseBookRecord parses "timestamp,cusip" followed by five
// bid,bidSize,ask,askSize level groups.
func ParseBookRecord(record []byte) (model.OrderBook, error) {
	fields := scanner.Fields(record)
	if len(fields) != 2+4*bookDepth {
		return model.OrderBook{}, errors.Wrapf(ErrBadRecord, "book fields: %d", len(fields))
	}

	product, err := refdata.ProductFor(fields[1])
	if err != nil {
		return model.OrderBook{}, err
	}

	book := model.OrderBook{
		Product: product,
		Bids:    make([]model.Order, 0, bookDepth),
		Offers:  make([]model.Order, 0, bookDepth),
	}
	for level := 0; level < bookDepth; level++ {
		base := 2 + 4*level
		bid, err := parseLevel(fields[base], fields[base+1], enum.PricingSideBid)
		if err != nil {
			return model.OrderBook{}, errors.Wrapf(err, "level %d bid", level+1)
		}
		ask, err := parseLevel(fields[base+2], fields[base+3], enum.PricingSideOffer)
		if err != nil {
			return model.OrderBook{}, errors.Wrapf(err, "level %d ask", level+1)
		}
		book.Bids = append(book.Bids, bid)
		book.Offers = append(book.Offers, ask)
	}
	return book, nil
}

func parseLevel(priceText, sizeText string, side enum.PricingSide) (model.Order, error) {
	price, err := px.Parse(priceText)
	if err != nil {
		return model.Order{}, err
	}
	size, err := strconv.ParseInt(sizeText, 10, 64)
	if err != nil || size < 0 {
		return model.Order{}, errors.Wrapf(ErrBadRecord, "size: %q", sizeText)
	}
	return model.Order{Price: price, Quantity: size, Side: side}, nil
}
