package model

import (
	"strconv"

	"main/internal/model/enum"
	"main/internal/px"
)

// Trade is a booked trade in one trading book.
type Trade struct {
	Product  Bond
	TradeID  string
	Price    float64
	Book     enum.Book
	Quantity int64
	Side     enum.TradeSide
}

// SignedQuantity returns the quantity signed by trade side.
func (t Trade) SignedQuantity() int64 {
	if t.Side == enum.TradeSideSell {
		return -t.Quantity
	}
	return t.Quantity
}

func (t Trade) AppendText(buf []byte) []byte {
	buf = append(buf, t.Product.CUSIP...)
	buf = append(buf, ',')
	buf = append(buf, t.TradeID...)
	buf = append(buf, ',')
	buf = append(buf, px.Format(t.Price)...)
	buf = append(buf, ',')
	buf = append(buf, t.Book.String()...)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, t.Quantity, 10)
	buf = append(buf, ',')
	buf = append(buf, t.Side.String()...)
	return buf
}

func (t Trade) Text() string {
	return string(t.AppendText(make([]byte, 0, 96)))
}
