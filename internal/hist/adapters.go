package hist

import (
	"main/internal/model"
	"main/internal/soa"
)

var _ soa.Service[string, model.Inquiry] = (*Service[model.Inquiry])(nil)

// PositionAdapter persists positions by CUSIP.
type PositionAdapter struct{}

func (PositionAdapter) Key(p model.Position) string    { return p.Product.CUSIP }
func (PositionAdapter) Render(p model.Position) string { return p.Text() }

// PV01Adapter persists risk entries by CUSIP.
type PV01Adapter struct{}

func (PV01Adapter) Key(p model.PV01) string    { return p.Product.CUSIP }
func (PV01Adapter) Render(p model.PV01) string { return p.Text() }

// ExecutionAdapter persists execution orders by orderId.
type ExecutionAdapter struct{}

func (ExecutionAdapter) Key(o model.ExecutionOrder) string    { return o.OrderID }
func (ExecutionAdapter) Render(o model.ExecutionOrder) string { return o.Text() }

// StreamAdapter persists price streams by CUSIP.
type StreamAdapter struct{}

func (StreamAdapter) Key(s model.PriceStream) string    { return s.Product.CUSIP }
func (StreamAdapter) Render(s model.PriceStream) string { return s.Text() }

// InquiryAdapter persists inquiries by inquiryId.
type InquiryAdapter struct{}

func (InquiryAdapter) Key(i model.Inquiry) string    { return i.InquiryID }
func (InquiryAdapter) Render(i model.Inquiry) string { return i.Text() }
