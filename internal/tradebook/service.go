// Package tradebook stores booked trades and synthesizes trades from
// algo execution orders, rotating them across the trading books.
package tradebook

import (
	"sync"

	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/soa"
)

// Service keys trades on tradeId. Both the trade feed and the
// execution chain book here, so OnMessage serializes its writers.
type Service struct {
	*soa.Store[model.Trade]
	mu          sync.Mutex
	bookCounter uint64
}

var _ soa.Service[string, model.Trade] = (*Service)(nil)

func New() *Service {
	return &Service{Store: soa.NewStore[model.Trade]("tradebook")}
}

// Get returns the trade for an id, or ErrNotFound.
func (s *Service) Get(tradeID string) (model.Trade, error) {
	return s.GetStrict(tradeID)
}

// OnMessage stores the trade and fans it out. The lock is held for the
// whole downstream chain.
func (s *Service) OnMessage(trade model.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Put(trade.TradeID, trade)
	s.NotifyAdd(trade)
}

// BookTrade books a trade through the same path as the inbound feed.
func (s *Service) BookTrade(trade model.Trade) {
	s.OnMessage(trade)
}

// FromExecution synthesizes a trade from an execution order: the full
// order size (visible plus hidden) is booked, a BID execution books as
// a BUY, and the books rotate per synthesized trade.
func (s *Service) FromExecution(order model.ExecutionOrder) model.Trade {
	side := enum.TradeSideSell
	if order.Side == enum.PricingSideBid {
		side = enum.TradeSideBuy
	}
	book := enum.BookAt(s.bookCounter)
	s.bookCounter++

	return model.Trade{
		Product:  order.Product,
		TradeID:  order.OrderID,
		Price:    order.Price,
		Book:     book,
		Quantity: order.VisibleQuantity + order.HiddenQuantity,
		Side:     side,
	}
}

// ExecutionListener chains this service onto the execution service.
func (s *Service) ExecutionListener() soa.Listener[model.ExecutionOrder] {
	return soa.ListenerFuncs[model.ExecutionOrder]{
		OnAdd: func(order model.ExecutionOrder) {
			s.OnMessage(s.FromExecution(order))
		},
	}
}
