// Package marketdata stores the latest aggregated order book per
// product and answers best bid/offer queries.
package marketdata

import (
	"main/internal/model"
	"main/internal/soa"
)

const defaultBookDepth = 5

// Service keys order books on CUSIP.
type Service struct {
	*soa.Store[model.OrderBook]
	bookDepth int
}

var _ soa.Service[string, model.OrderBook] = (*Service)(nil)

func New() *Service {
	return &Service{
		Store:     soa.NewStore[model.OrderBook]("marketdata"),
		bookDepth: defaultBookDepth,
	}
}

// BookDepth returns the fixed depth of the raw feed.
func (s *Service) BookDepth() int {
	return s.bookDepth
}

// Get returns the latest book, or the zero value for an unseen CUSIP.
func (s *Service) Get(cusip string) (model.OrderBook, error) {
	return s.GetLenient(cusip)
}

// OnMessage overwrites the stored book and notifies listeners. The
// connector aggregates before calling here, so each price level
// appears at most once per side.
func (s *Service) OnMessage(book model.OrderBook) {
	s.Put(book.Product.CUSIP, book)
	s.NotifyAdd(book)
}

// AggregateDepth collapses the stored book's duplicate price levels
// and restores the aggregated book.
func (s *Service) AggregateDepth(cusip string) model.OrderBook {
	book, ok := s.Lookup(cusip)
	if !ok {
		return model.OrderBook{}
	}
	agg := AggregateDepth(book)
	s.Put(cusip, agg)
	return agg
}

// BestBidOffer returns the max-price bid and min-price offer of the
// stored book.
func (s *Service) BestBidOffer(cusip string) model.BidOffer {
	book, _ := s.Lookup(cusip)
	return book.BestBidOffer()
}

// AggregateDepth collapses duplicate price levels per side by summing
// quantities. Level order is first occurrence.
func AggregateDepth(book model.OrderBook) model.OrderBook {
	return model.OrderBook{
		Product: book.Product,
		Bids:    aggregateSide(book.Bids),
		Offers:  aggregateSide(book.Offers),
	}
}

func aggregateSide(stack []model.Order) []model.Order {
	if len(stack) == 0 {
		return nil
	}
	index := make(map[float64]int, len(stack))
	agg := make([]model.Order, 0, len(stack))
	for _, o := range stack {
		if i, ok := index[o.Price]; ok {
			agg[i].Quantity += o.Quantity
			continue
		}
		index[o.Price] = len(agg)
		agg = append(agg, o)
	}
	return agg
}
