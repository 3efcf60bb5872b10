// Package soa defines the service/listener/connector contracts the
// dataflow fabric is wired with. Services own keyed stores, listeners
// are the only inter-service coupling, and connectors sit on the
// socket/file boundary.
package soa

import (
	"context"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

var ErrNotFound = errors.New("key not found")

// Listener receives add, remove, and update callbacks as entries of an
// upstream service change. Only ProcessAdd carries semantic weight in
// this fabric; the other two exist for completeness.
type Listener[V any] interface {
	ProcessAdd(V)
	ProcessRemove(V)
	ProcessUpdate(V)
}

// Service is a keyed store of domain entities with listener fan-out.
// Services are not thread safe internally; a service reached from
// more than one ingress goroutine serializes its own OnMessage.
type Service[K comparable, V any] interface {
	Get(K) (V, error)
	OnMessage(V)
	AddListener(Listener[V])
	Listeners() []Listener[V]
}

// Connector is the boundary element that publishes entities outbound.
// Inbound-only connectors implement Publish as a no-op.
type Connector[V any] interface {
	Publish(V)
}

// SubscriberConnector additionally drives ingress until its source
// closes or the context is done.
type SubscriberConnector[V any] interface {
	Connector[V]
	Subscribe(ctx context.Context) error
}

// ListenerFuncs adapts plain callbacks to the Listener interface. Nil
// callbacks are ignored.
type ListenerFuncs[V any] struct {
	OnAdd    func(V)
	OnRemove func(V)
	OnUpdate func(V)
}

func (l ListenerFuncs[V]) ProcessAdd(v V) {
	if l.OnAdd != nil {
		l.OnAdd(v)
	}
}

func (l ListenerFuncs[V]) ProcessRemove(v V) {
	if l.OnRemove != nil {
		l.OnRemove(v)
	}
}

func (l ListenerFuncs[V]) ProcessUpdate(v V) {
	if l.OnUpdate != nil {
		l.OnUpdate(v)
	}
}

// NotifyCounter, when set, is invoked once per listener callback. The
// composition root points it at the pipeline metrics.
var NotifyCounter func()

func notify[V any](name string, v V, fire func(V)) {
	if NotifyCounter != nil {
		NotifyCounter()
	}
	defer func() {
		if r := recover(); r != nil {
			logs.Errorf("%s listener panicked: %+v", name, r)
		}
	}()
	fire(v)
}
