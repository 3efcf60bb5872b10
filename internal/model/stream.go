package model

import (
	"strconv"

	"main/internal/model/enum"
	"main/internal/px"
)

// PriceStreamOrder is one published side of a quote stream. The hidden
// quantity is twice the visible quantity.
type PriceStreamOrder struct {
	Price           float64
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            enum.PricingSide
}

func (o PriceStreamOrder) AppendText(buf []byte) []byte {
	buf = append(buf, px.Format(o.Price)...)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, o.VisibleQuantity, 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, o.HiddenQuantity, 10)
	return buf
}

// PriceStream is the two-sided published stream for one product.
type PriceStream struct {
	Product Bond
	Bid     PriceStreamOrder
	Offer   PriceStreamOrder
}

func (s PriceStream) AppendText(buf []byte) []byte {
	buf = append(buf, s.Product.CUSIP...)
	buf = append(buf, ',')
	buf = s.Bid.AppendText(buf)
	buf = append(buf, ',')
	buf = s.Offer.AppendText(buf)
	return buf
}

func (s PriceStream) Text() string {
	return string(s.AppendText(make([]byte, 0, 128)))
}

// AlgoStream wraps the stream produced by the streaming algo.
type AlgoStream struct {
	Stream PriceStream
}
