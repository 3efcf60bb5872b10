package streaming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/soa"
)

// captureConnector records published streams.
type captureConnector struct {
	published []model.PriceStream
}

func (c *captureConnector) Publish(s model.PriceStream) {
	c.published = append(c.published, s)
}

func TestOnMessageStoresNotifiesAndPublishes(t *testing.T) {
	connector := &captureConnector{}
	svc := New(connector)

	var notified []model.PriceStream
	svc.AddListener(soa.ListenerFuncs[model.PriceStream]{OnAdd: func(s model.PriceStream) { notified = append(notified, s) }})

	stream := model.PriceStream{
		Product: model.Bond{CUSIP: "9128283H1"},
		Bid:     model.PriceStreamOrder{Price: 99.99, VisibleQuantity: 1_000_000, HiddenQuantity: 2_000_000, Side: enum.PricingSideBid},
		Offer:   model.PriceStreamOrder{Price: 100.00, VisibleQuantity: 1_000_000, HiddenQuantity: 2_000_000, Side: enum.PricingSideOffer},
	}
	svc.PublishPrice(stream)

	require.Len(t, notified, 1)
	require.Len(t, connector.published, 1)

	stored, err := svc.Get("9128283H1")
	require.NoError(t, err)
	assert.Equal(t, stream, stored)
}

func TestAlgoListenerUnwrapsStream(t *testing.T) {
	svc := New(nil)
	algo := model.AlgoStream{Stream: model.PriceStream{Product: model.Bond{CUSIP: "912828M80"}}}
	svc.AlgoListener().ProcessAdd(algo)

	stored, err := svc.Get("912828M80")
	require.NoError(t, err)
	assert.Equal(t, algo.Stream, stored)
}
