// Package execution publishes execution orders to the execution
// output socket.
package execution

import (
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/soa"
)

// Service keys execution orders on orderId.
type Service struct {
	*soa.Store[model.ExecutionOrder]
	connector soa.Connector[model.ExecutionOrder]
}

var _ soa.Service[string, model.ExecutionOrder] = (*Service)(nil)

// New creates the service. The connector may be nil in tests.
func New(connector soa.Connector[model.ExecutionOrder]) *Service {
	return &Service{
		Store:     soa.NewStore[model.ExecutionOrder]("execution"),
		connector: connector,
	}
}

// Get returns the order for an id, or ErrNotFound.
func (s *Service) Get(orderID string) (model.ExecutionOrder, error) {
	return s.GetStrict(orderID)
}

// OnMessage stores the order, notifies listeners, then publishes.
func (s *Service) OnMessage(order model.ExecutionOrder) {
	s.Put(order.OrderID, order)
	s.NotifyAdd(order)
	if s.connector != nil {
		s.connector.Publish(order)
	}
}

// ExecuteOrder routes an order to a market. Markets are labels on this
// wire, not destinations; routing is the log line plus publication.
func (s *Service) ExecuteOrder(order model.ExecutionOrder, market enum.Market) {
	logs.Infof("executing %s on %s", order.OrderID, market)
	s.OnMessage(order)
}

// AlgoListener chains this service onto the algo execution service.
func (s *Service) AlgoListener() soa.Listener[model.AlgoExecution] {
	return soa.ListenerFuncs[model.AlgoExecution]{
		OnAdd: func(algo model.AlgoExecution) {
			s.ExecuteOrder(algo.Order, algo.Market)
		},
	}
}
