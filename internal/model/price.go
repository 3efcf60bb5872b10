package model

import (
	"main/internal/px"
)

// Price is a two-sided mid/spread quote for one product.
type Price struct {
	Product        Bond
	Mid            float64
	BidOfferSpread float64
}

// Bid returns the bid implied by mid and spread.
func (p Price) Bid() float64 {
	return p.Mid - p.BidOfferSpread/2
}

// Offer returns the offer implied by mid and spread.
func (p Price) Offer() float64 {
	return p.Mid + p.BidOfferSpread/2
}

func (p Price) AppendText(buf []byte) []byte {
	buf = append(buf, p.Product.CUSIP...)
	buf = append(buf, ',')
	buf = append(buf, px.Format(p.Mid)...)
	buf = append(buf, ',')
	buf = append(buf, px.Format(p.BidOfferSpread)...)
	return buf
}

func (p Price) Text() string {
	return string(p.AppendText(make([]byte, 0, 64)))
}
