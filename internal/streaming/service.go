// Package streaming publishes the algo quote streams to the price
// stream output socket.
package streaming

import (
	"main/internal/model"
	"main/internal/soa"
)

// Service keys price streams on CUSIP. Each stored stream is also
// handed to the outbound connector.
type Service struct {
	*soa.Store[model.PriceStream]
	connector soa.Connector[model.PriceStream]
}

var _ soa.Service[string, model.PriceStream] = (*Service)(nil)

// New creates the service. The connector may be nil in tests.
func New(connector soa.Connector[model.PriceStream]) *Service {
	return &Service{
		Store:     soa.NewStore[model.PriceStream]("streaming"),
		connector: connector,
	}
}

// Get returns the latest stream, or the zero value for an unseen CUSIP.
func (s *Service) Get(cusip string) (model.PriceStream, error) {
	return s.GetLenient(cusip)
}

// OnMessage stores the stream, notifies listeners, then publishes.
func (s *Service) OnMessage(stream model.PriceStream) {
	s.Put(stream.Product.CUSIP, stream)
	s.NotifyAdd(stream)
	if s.connector != nil {
		s.connector.Publish(stream)
	}
}

// PublishPrice pushes a stream through the same path as listener
// chaining.
func (s *Service) PublishPrice(stream model.PriceStream) {
	s.OnMessage(stream)
}

// AlgoListener chains this service onto the algo streaming service.
func (s *Service) AlgoListener() soa.Listener[model.AlgoStream] {
	return soa.ListenerFuncs[model.AlgoStream]{
		OnAdd: func(algo model.AlgoStream) {
			s.OnMessage(algo.Stream)
		},
	}
}
