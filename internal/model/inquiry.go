package model

import (
	"strconv"

	"main/internal/model/enum"
	"main/internal/px"
)

// Inquiry is a customer inquiry moving through the quote lifecycle.
type Inquiry struct {
	InquiryID string
	Product   Bond
	Side      enum.TradeSide
	Quantity  int64
	Price     float64
	State     enum.InquiryState
}

func (i Inquiry) AppendText(buf []byte) []byte {
	buf = append(buf, i.InquiryID...)
	buf = append(buf, ',')
	buf = append(buf, i.Product.CUSIP...)
	buf = append(buf, ',')
	buf = append(buf, i.Side.String()...)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, i.Quantity, 10)
	buf = append(buf, ',')
	buf = append(buf, px.Format(i.Price)...)
	buf = append(buf, ',')
	buf = append(buf, i.State.String()...)
	return buf
}

func (i Inquiry) Text() string {
	return string(i.AppendText(make([]byte, 0, 96)))
}
