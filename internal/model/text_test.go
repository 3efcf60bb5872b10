package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"main/internal/model/enum"
)

func TestPriceText(t *testing.T) {
	price := Price{
		Product:        Bond{CUSIP: "9128283H1"},
		Mid:            100.0,
		BidOfferSpread: 2.0 / 256.0,
	}
	assert.Equal(t, "9128283H1,100-000,0-002", price.Text())
}

func TestPriceStreamText(t *testing.T) {
	stream := PriceStream{
		Product: Bond{CUSIP: "9128283H1"},
		Bid:     PriceStreamOrder{Price: 99.0 + 31.0/32.0 + 4.0/256.0, VisibleQuantity: 1_000_000, HiddenQuantity: 2_000_000, Side: enum.PricingSideBid},
		Offer:   PriceStreamOrder{Price: 100.0 + 4.0/256.0, VisibleQuantity: 1_000_000, HiddenQuantity: 2_000_000, Side: enum.PricingSideOffer},
	}
	assert.Equal(t, "9128283H1,99-31+,1000000,2000000,100-00+,1000000,2000000", stream.Text())
}

func TestExecutionOrderText(t *testing.T) {
	order := ExecutionOrder{
		Product:         Bond{CUSIP: "912828M80"},
		Side:            enum.PricingSideBid,
		OrderID:         "AlgoAAAAAAAAAAA",
		OrderType:       enum.OrderTypeMarket,
		Price:           100.0,
		VisibleQuantity: 1_000_000,
		HiddenQuantity:  0,
		ParentOrderID:   "AlgoParentAAAAA",
		IsChildOrder:    false,
	}
	assert.Equal(t,
		"AlgoAAAAAAAAAAA,912828M80,BID,MARKET,100-000,1000000,0,AlgoParentAAAAA,false",
		order.Text())
}

func TestTradeText(t *testing.T) {
	trade := Trade{
		Product:  Bond{CUSIP: "912828M80"},
		TradeID:  "TRADE0000001",
		Price:    100.0,
		Book:     enum.BookTRSY2,
		Quantity: 2_000_000,
		Side:     enum.TradeSideSell,
	}
	assert.Equal(t, "912828M80,TRADE0000001,100-000,TRSY2,2000000,SELL", trade.Text())
}

func TestPositionText(t *testing.T) {
	pos := NewPosition(Bond{CUSIP: "9128283F5"})
	pos.Quantities[enum.BookTRSY1] = 1_000_000
	pos.Quantities[enum.BookTRSY2] = -400_000
	assert.Equal(t, "9128283F5,TRSY1:1000000,TRSY2:-400000,TRSY3:0,600000", pos.Text())
}

func TestPV01Text(t *testing.T) {
	pv := PV01{Product: Bond{CUSIP: "9128283F5"}, Value: 0.080120, Quantity: 600_000}
	assert.Equal(t, "9128283F5,0.080120,600000", pv.Text())
}

func TestBucketedPV01Text(t *testing.T) {
	pv := BucketedPV01{Sector: BucketedSector{Name: "Belly"}, Value: 210.0, Quantity: 3000}
	assert.Equal(t, "Belly,210.000000,3000", pv.Text())
}

func TestInquiryText(t *testing.T) {
	inq := Inquiry{
		InquiryID: "INQ000000001",
		Product:   Bond{CUSIP: "9128283J7"},
		Side:      enum.TradeSideBuy,
		Quantity:  3_000_000,
		Price:     100.0,
		State:     enum.InquiryDone,
	}
	assert.Equal(t, "INQ000000001,9128283J7,BUY,3000000,100-000,DONE", inq.Text())
}
