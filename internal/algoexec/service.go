// Package algoexec aggresses the book with a market order whenever the
// top-of-book spread is at its tightest.
package algoexec

import (
	"math/rand"

	"main/internal/ids"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/soa"
)

// tightestSpread is the narrowest spread the feed produces; the algo
// only crosses when the book is at most this wide.
const tightestSpread = 1.0 / 128.0

// spreadTolerance absorbs float noise from prices that are not exact
// binary fractions (the feed carries decimals like 99.99).
const spreadTolerance = 1e-9

const (
	orderIDPrefix  = "Algo"
	parentIDPrefix = "AlgoParent"
)

// Service keys the latest algo execution on CUSIP. The alternation
// counter increments on every book update, tight or not, so the
// aggressed side depends on the full update history.
type Service struct {
	*soa.Store[model.AlgoExecution]
	counter uint64
	rng     *rand.Rand
}

func New(seed int64) *Service {
	return &Service{
		Store: soa.NewStore[model.AlgoExecution]("algoexec"),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

var _ soa.Service[string, model.AlgoExecution] = (*Service)(nil)

// Get returns the latest execution, or the zero value for an unseen
// CUSIP.
func (s *Service) Get(cusip string) (model.AlgoExecution, error) {
	return s.GetLenient(cusip)
}

// OnMessage stores the execution and notifies listeners.
func (s *Service) OnMessage(exec model.AlgoExecution) {
	s.Put(exec.Order.Product.CUSIP, exec)
	s.NotifyAdd(exec)
}

// AlgoExecuteOrder inspects the book's top of book and, when the
// spread is tight enough, emits a market order crossing it. A wide
// book emits nothing but still advances the alternation counter.
func (s *Service) AlgoExecuteOrder(book model.OrderBook) {
	counter := s.counter
	s.counter++

	bo := book.BestBidOffer()
	if bo.Bid.Quantity == 0 || bo.Offer.Quantity == 0 {
		return
	}
	if bo.Spread() > tightestSpread+spreadTolerance {
		return
	}

	var (
		side     enum.PricingSide
		price    float64
		quantity int64
	)
	if counter%2 == 0 {
		// lift the offer for the size resting on the bid
		side = enum.PricingSideBid
		price = bo.Offer.Price
		quantity = bo.Bid.Quantity
	} else {
		// hit the bid for the size resting on the offer
		side = enum.PricingSideOffer
		price = bo.Bid.Price
		quantity = bo.Offer.Quantity
	}

	exec := model.AlgoExecution{
		Order: model.ExecutionOrder{
			Product:         book.Product,
			Side:            side,
			OrderID:         orderIDPrefix + ids.Random(s.rng, 11),
			OrderType:       enum.OrderTypeMarket,
			Price:           price,
			VisibleQuantity: quantity,
			HiddenQuantity:  0,
			ParentOrderID:   parentIDPrefix + ids.Random(s.rng, 5),
			IsChildOrder:    false,
		},
		Market: enum.MarketBrokerTec,
	}

	s.OnMessage(exec)
}

// BookListener chains this service onto the market data service.
func (s *Service) BookListener() soa.Listener[model.OrderBook] {
	return soa.ListenerFuncs[model.OrderBook]{OnAdd: s.AlgoExecuteOrder}
}
