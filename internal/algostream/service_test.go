package algostream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/soa"
)

func TestStreamFromPrice(t *testing.T) {
	svc := New()
	var got []model.AlgoStream
	svc.AddListener(soa.ListenerFuncs[model.AlgoStream]{OnAdd: func(s model.AlgoStream) { got = append(got, s) }})

	price := model.Price{
		Product:        model.Bond{CUSIP: "9128283H1"},
		Mid:            100.0,
		BidOfferSpread: 1.0 / 128.0,
	}
	svc.AlgoPublishPrice(price)

	require.Len(t, got, 1)
	stream := got[0].Stream
	assert.InDelta(t, 100.0-1.0/256.0, stream.Bid.Price, 1e-12)
	assert.InDelta(t, 100.0+1.0/256.0, stream.Offer.Price, 1e-12)
	assert.Equal(t, int64(1_000_000), stream.Bid.VisibleQuantity)
	assert.Equal(t, int64(2_000_000), stream.Bid.HiddenQuantity)
	assert.Equal(t, int64(1_000_000), stream.Offer.VisibleQuantity)
	assert.Equal(t, int64(2_000_000), stream.Offer.HiddenQuantity)

	stored, err := svc.Get("9128283H1")
	require.NoError(t, err)
	assert.Equal(t, got[0], stored)
}

func TestVisibleSizeAlternatesStrictly(t *testing.T) {
	svc := New()
	price := model.Price{
		Product:        model.Bond{CUSIP: "912828M80"},
		Mid:            99.5,
		BidOfferSpread: 1.0 / 64.0,
	}

	want := []int64{1_000_000, 2_000_000, 1_000_000, 2_000_000}
	for i, visible := range want {
		svc.AlgoPublishPrice(price)
		stored, err := svc.Get("912828M80")
		require.NoError(t, err)
		assert.Equal(t, visible, stored.Stream.Bid.VisibleQuantity, "update %d", i)
		assert.Equal(t, 2*visible, stored.Stream.Bid.HiddenQuantity, "update %d", i)
	}
}
