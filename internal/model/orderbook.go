package model

import (
	"strconv"

	"main/internal/model/enum"
	"main/internal/px"
)

// Order is one price level on one side of a book.
type Order struct {
	Price    float64
	Quantity int64
	Side     enum.PricingSide
}

// BidOffer is a snapshot of the best bid and best offer.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// Spread returns offer minus bid.
func (bo BidOffer) Spread() float64 {
	return bo.Offer.Price - bo.Bid.Price
}

// OrderBook holds the bid and offer stacks for one product.
type OrderBook struct {
	Product Bond
	Bids    []Order
	Offers  []Order
}

// BestBidOffer returns the max-price bid and min-price offer, ties
// broken by first occurrence. Empty sides yield zero orders.
func (ob OrderBook) BestBidOffer() BidOffer {
	var bo BidOffer
	for i, o := range ob.Bids {
		if i == 0 || o.Price > bo.Bid.Price {
			bo.Bid = o
		}
	}
	for i, o := range ob.Offers {
		if i == 0 || o.Price < bo.Offer.Price {
			bo.Offer = o
		}
	}
	return bo
}

func (ob OrderBook) AppendText(buf []byte) []byte {
	appendStack := func(buf []byte, stack []Order) []byte {
		for _, o := range stack {
			buf = append(buf, ',')
			buf = append(buf, px.Format(o.Price)...)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, o.Quantity, 10)
		}
		return buf
	}
	buf = append(buf, ob.Product.CUSIP...)
	buf = appendStack(buf, ob.Bids)
	buf = appendStack(buf, ob.Offers)
	return buf
}

func (ob OrderBook) Text() string {
	return string(ob.AppendText(make([]byte, 0, 256)))
}
