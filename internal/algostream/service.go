// Package algostream turns prices into two-sided quote streams with
// alternating visible size.
package algostream

import (
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/soa"
)

const (
	baseVisibleQuantity    = 1_000_000
	doubledVisibleQuantity = 2_000_000
)

// Service keys algo streams on CUSIP. The alternation counter is
// monotonic process state; it starts at zero and is not persisted.
type Service struct {
	*soa.Store[model.AlgoStream]
	counter uint64
}

func New() *Service {
	return &Service{Store: soa.NewStore[model.AlgoStream]("algostream")}
}

var _ soa.Service[string, model.AlgoStream] = (*Service)(nil)

// Get returns the latest stream, or the zero value for an unseen CUSIP.
func (s *Service) Get(cusip string) (model.AlgoStream, error) {
	return s.GetLenient(cusip)
}

// OnMessage stores the stream and notifies listeners.
func (s *Service) OnMessage(stream model.AlgoStream) {
	s.Put(stream.Stream.Product.CUSIP, stream)
	s.NotifyAdd(stream)
}

// AlgoPublishPrice derives a stream from the price and publishes it.
// Visible quantity alternates between one and two million per update;
// hidden quantity is always twice the visible.
func (s *Service) AlgoPublishPrice(price model.Price) {
	visible := int64(baseVisibleQuantity)
	if s.counter%2 == 1 {
		visible = doubledVisibleQuantity
	}
	s.counter++

	stream := model.AlgoStream{
		Stream: model.PriceStream{
			Product: price.Product,
			Bid: model.PriceStreamOrder{
				Price:           price.Bid(),
				VisibleQuantity: visible,
				HiddenQuantity:  2 * visible,
				Side:            enum.PricingSideBid,
			},
			Offer: model.PriceStreamOrder{
				Price:           price.Offer(),
				VisibleQuantity: visible,
				HiddenQuantity:  2 * visible,
				Side:            enum.PricingSideOffer,
			},
		},
	}

	s.OnMessage(stream)
}

// PriceListener chains this service onto the pricing service.
func (s *Service) PriceListener() soa.Listener[model.Price] {
	return soa.ListenerFuncs[model.Price]{OnAdd: s.AlgoPublishPrice}
}
