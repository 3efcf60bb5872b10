package soa

import "github.com/yanun0323/errors"

// Store is the keyed entry map plus listener list every service embeds.
// Updates replace by key. Fan-out order equals registration order, and
// a panic in one listener never aborts the chain for its siblings.
type Store[V any] struct {
	name      string
	entries   map[string]V
	listeners []Listener[V]
}

// NewStore creates an empty store. The name labels log lines only.
func NewStore[V any](name string) *Store[V] {
	return &Store[V]{
		name:    name,
		entries: make(map[string]V),
	}
}

// Lookup returns the stored entry and whether it exists.
func (s *Store[V]) Lookup(key string) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// GetStrict returns the stored entry or ErrNotFound. Identifier-keyed
// services expose this as their Get.
func (s *Store[V]) GetStrict(key string) (V, error) {
	v, ok := s.entries[key]
	if !ok {
		return v, errors.Wrapf(ErrNotFound, "%s: %q", s.name, key)
	}
	return v, nil
}

// GetLenient returns the stored entry or the zero value. Product-keyed
// services expose this as their Get.
func (s *Store[V]) GetLenient(key string) (V, error) {
	return s.entries[key], nil
}

// Put overwrites the entry for key.
func (s *Store[V]) Put(key string, v V) {
	s.entries[key] = v
}

// Erase removes the entry for key.
func (s *Store[V]) Erase(key string) {
	delete(s.entries, key)
}

// Len returns the number of stored entries.
func (s *Store[V]) Len() int {
	return len(s.entries)
}

// Keys returns the stored keys in unspecified order.
func (s *Store[V]) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys
}

// AddListener registers a listener. Fan-out is unbounded.
func (s *Store[V]) AddListener(l Listener[V]) {
	s.listeners = append(s.listeners, l)
}

// Listeners returns the registered listeners in registration order.
func (s *Store[V]) Listeners() []Listener[V] {
	return s.listeners
}

// NotifyAdd fires ProcessAdd on every listener.
func (s *Store[V]) NotifyAdd(v V) {
	for _, l := range s.listeners {
		notify(s.name, v, l.ProcessAdd)
	}
}

// NotifyRemove fires ProcessRemove on every listener.
func (s *Store[V]) NotifyRemove(v V) {
	for _, l := range s.listeners {
		notify(s.name, v, l.ProcessRemove)
	}
}

// NotifyUpdate fires ProcessUpdate on every listener.
func (s *Store[V]) NotifyUpdate(v V) {
	for _, l := range s.listeners {
		notify(s.name, v, l.ProcessUpdate)
	}
}
