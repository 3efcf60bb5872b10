// Package pricing stores the latest two-sided price per product and
// fans updates out to the streaming stages.
package pricing

import (
	"main/internal/model"
	"main/internal/soa"
)

// Service keys prices on CUSIP. There is no internal computation: the
// inbound connector parses, the service stores and notifies.
type Service struct {
	*soa.Store[model.Price]
}

var _ soa.Service[string, model.Price] = (*Service)(nil)

func New() *Service {
	return &Service{Store: soa.NewStore[model.Price]("pricing")}
}

// Get returns the latest price, or the zero value for an unseen CUSIP.
func (s *Service) Get(cusip string) (model.Price, error) {
	return s.GetLenient(cusip)
}

// OnMessage overwrites the price by CUSIP and notifies listeners.
func (s *Service) OnMessage(price model.Price) {
	s.Put(price.Product.CUSIP, price)
	s.NotifyAdd(price)
}
