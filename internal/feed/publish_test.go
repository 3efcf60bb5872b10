package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/obs"
)

func TestPublishConnectorRoundTrip(t *testing.T) {
	metrics := obs.NewMetrics()
	connector, err := NewPublishConnector[model.PriceStream]("streaming", "127.0.0.1:0", metrics)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- connector.Run(ctx) }()

	stream := model.PriceStream{
		Product: model.Bond{CUSIP: "9128283H1"},
		Bid:     model.PriceStreamOrder{Price: 99.99, VisibleQuantity: 1_000_000, HiddenQuantity: 2_000_000},
		Offer:   model.PriceStreamOrder{Price: 100.00, VisibleQuantity: 1_000_000, HiddenQuantity: 2_000_000},
	}
	// Run dials lazily; give the writer a moment to come up
	time.Sleep(50 * time.Millisecond)
	connector.Publish(stream)

	connector.Close()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("publish run did not stop")
	}
	assert.Equal(t, uint64(0), metrics.Snapshot().PublishDrops)
}
