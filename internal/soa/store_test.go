package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrictAndLenientGet(t *testing.T) {
	store := NewStore[int]("test")
	store.Put("a", 7)

	v, err := store.GetStrict("a")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = store.GetStrict("b")
	require.ErrorIs(t, err, ErrNotFound)

	v, err = store.GetLenient("b")
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestPutOverwritesAndErase(t *testing.T) {
	store := NewStore[string]("test")
	store.Put("k", "one")
	store.Put("k", "two")
	assert.Equal(t, 1, store.Len())

	v, ok := store.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, "two", v)

	store.Erase("k")
	_, ok = store.Lookup("k")
	assert.False(t, ok)
}

func TestFanOutInRegistrationOrder(t *testing.T) {
	store := NewStore[int]("test")
	var order []string
	store.AddListener(ListenerFuncs[int]{OnAdd: func(int) { order = append(order, "first") }})
	store.AddListener(ListenerFuncs[int]{OnAdd: func(int) { order = append(order, "second") }})
	store.AddListener(ListenerFuncs[int]{OnAdd: func(int) { order = append(order, "third") }})

	store.NotifyAdd(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPanickingListenerDoesNotAbortSiblings(t *testing.T) {
	store := NewStore[int]("test")
	var got []int
	store.AddListener(ListenerFuncs[int]{OnAdd: func(int) { panic("boom") }})
	store.AddListener(ListenerFuncs[int]{OnAdd: func(v int) { got = append(got, v) }})

	store.NotifyAdd(42)
	assert.Equal(t, []int{42}, got)
}

func TestNilCallbacksAreIgnored(t *testing.T) {
	store := NewStore[int]("test")
	store.AddListener(ListenerFuncs[int]{})
	store.NotifyAdd(1)
	store.NotifyRemove(1)
	store.NotifyUpdate(1)
}
