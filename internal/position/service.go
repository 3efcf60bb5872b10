// Package position folds booked trades into signed per-book positions.
package position

import (
	"main/internal/model"
	"main/internal/soa"
)

// Service keys positions on CUSIP.
type Service struct {
	*soa.Store[model.Position]
}

var _ soa.Service[string, model.Position] = (*Service)(nil)

func New() *Service {
	return &Service{Store: soa.NewStore[model.Position]("position")}
}

// Get returns the position, or the zero value for an unseen CUSIP.
func (s *Service) Get(cusip string) (model.Position, error) {
	return s.GetLenient(cusip)
}

// OnMessage overwrites the position by CUSIP and notifies listeners.
func (s *Service) OnMessage(pos model.Position) {
	s.Put(pos.Product.CUSIP, pos)
	s.NotifyAdd(pos)
}

// AddTrade applies a trade's signed quantity to the product's book and
// publishes the updated position.
func (s *Service) AddTrade(trade model.Trade) {
	pos, ok := s.Lookup(trade.Product.CUSIP)
	if !ok {
		pos = model.NewPosition(trade.Product)
	}
	pos.Quantities[trade.Book] += trade.SignedQuantity()
	s.OnMessage(pos)
}

// TradeListener chains this service onto the trade booking service.
func (s *Service) TradeListener() soa.Listener[model.Trade] {
	return soa.ListenerFuncs[model.Trade]{OnAdd: s.AddTrade}
}
