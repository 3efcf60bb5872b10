// Package hist is the persistence fan-out: one generic historical
// service per upstream store, appending timestamped records to the
// result files and mirroring them into the archive database when one
// is configured.
package hist

import (
	"time"

	"main/internal/soa"
)

// ServiceType selects the result file a historical service appends to.
type ServiceType uint8

const (
	_service_type_beg ServiceType = iota
	ServicePositions
	ServiceRisk
	ServiceExecutions
	ServiceStreaming
	ServiceInquiries
	_service_type_end
)

func (t ServiceType) IsAvailable() bool {
	return t > _service_type_beg && t < _service_type_end
}

func (t ServiceType) String() string {
	switch t {
	case ServicePositions:
		return "positions"
	case ServiceRisk:
		return "risk"
	case ServiceExecutions:
		return "executions"
	case ServiceStreaming:
		return "streaming"
	case ServiceInquiries:
		return "allinquiries"
	default:
		return "unknown"
	}
}

// FileName returns the result file for the service type.
func (t ServiceType) FileName() string {
	return t.String() + ".txt"
}

// Adapter extracts the persist key and renders the record line for one
// entity type.
type Adapter[V any] interface {
	Key(V) string
	Render(V) string
}

// Service keys the persisted view of one upstream store and forwards
// every add to its connector.
type Service[V any] struct {
	*soa.Store[V]
	serviceType ServiceType
	adapter     Adapter[V]
	connector   soa.Connector[V]
}

func New[V any](serviceType ServiceType, adapter Adapter[V], connector soa.Connector[V]) *Service[V] {
	return &Service[V]{
		Store:       soa.NewStore[V]("hist-" + serviceType.String()),
		serviceType: serviceType,
		adapter:     adapter,
		connector:   connector,
	}
}

// Get returns the persisted entity for a key, or ErrNotFound.
func (s *Service[V]) Get(key string) (V, error) {
	return s.GetStrict(key)
}

// OnMessage updates the store and appends one record.
func (s *Service[V]) OnMessage(v V) {
	s.Put(s.adapter.Key(v), v)
	if s.connector != nil {
		s.connector.Publish(v)
	}
}

// Listener subscribes this service to the matching upstream store.
func (s *Service[V]) Listener() soa.Listener[V] {
	return soa.ListenerFuncs[V]{OnAdd: s.OnMessage}
}

// Stamp renders the record timestamp with millisecond precision.
func Stamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000")
}
