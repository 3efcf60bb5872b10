package model

import (
	"strconv"

	"main/internal/model/enum"
	"main/internal/px"
)

// ExecutionOrder is an order routed to a market for execution.
type ExecutionOrder struct {
	Product         Bond
	Side            enum.PricingSide
	OrderID         string
	OrderType       enum.OrderType
	Price           float64
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChildOrder    bool
}

func (o ExecutionOrder) AppendText(buf []byte) []byte {
	buf = append(buf, o.OrderID...)
	buf = append(buf, ',')
	buf = append(buf, o.Product.CUSIP...)
	buf = append(buf, ',')
	buf = append(buf, o.Side.String()...)
	buf = append(buf, ',')
	buf = append(buf, o.OrderType.String()...)
	buf = append(buf, ',')
	buf = append(buf, px.Format(o.Price)...)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, o.VisibleQuantity, 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, o.HiddenQuantity, 10)
	buf = append(buf, ',')
	buf = append(buf, o.ParentOrderID...)
	buf = append(buf, ',')
	buf = strconv.AppendBool(buf, o.IsChildOrder)
	return buf
}

func (o ExecutionOrder) Text() string {
	return string(o.AppendText(make([]byte, 0, 128)))
}

// AlgoExecution wraps an execution order with its routed market.
type AlgoExecution struct {
	Order  ExecutionOrder
	Market enum.Market
}
