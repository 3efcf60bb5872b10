package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/soa"
)

func TestOnMessageOverwritesByCUSIP(t *testing.T) {
	svc := New()
	var got []model.Price
	svc.AddListener(soa.ListenerFuncs[model.Price]{OnAdd: func(p model.Price) { got = append(got, p) }})

	bond := model.Bond{CUSIP: "9128283H1"}
	svc.OnMessage(model.Price{Product: bond, Mid: 99.5, BidOfferSpread: 1.0 / 128.0})
	svc.OnMessage(model.Price{Product: bond, Mid: 100.0, BidOfferSpread: 1.0 / 64.0})

	require.Len(t, got, 2)
	stored, err := svc.Get("9128283H1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.Mid)

	// unseen CUSIP yields the zero price, not an error
	missing, err := svc.Get("912810RZ3")
	require.NoError(t, err)
	assert.True(t, missing.Product.IsZero())
}

func TestPriceImpliedSides(t *testing.T) {
	price := model.Price{Mid: 100.0, BidOfferSpread: 1.0 / 128.0}
	assert.InDelta(t, 100.0-1.0/256.0, price.Bid(), 1e-12)
	assert.InDelta(t, 100.0+1.0/256.0, price.Offer(), 1e-12)
}
