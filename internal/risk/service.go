// Package risk aggregates PV01 exposure per product and rolls it up
// over yield-bucket sectors.
package risk

import (
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/refdata"
	"main/internal/soa"
)

// Service keys PV01 entries on CUSIP. Each entry carries the per-unit
// PV01 and the net aggregate position it currently applies to.
type Service struct {
	*soa.Store[model.PV01]
}

var _ soa.Service[string, model.PV01] = (*Service)(nil)

func New() *Service {
	return &Service{Store: soa.NewStore[model.PV01]("risk")}
}

// Get returns the PV01 entry, or the zero value for an unseen CUSIP.
func (s *Service) Get(cusip string) (model.PV01, error) {
	return s.GetLenient(cusip)
}

// OnMessage overwrites the entry by CUSIP and notifies listeners.
func (s *Service) OnMessage(pv model.PV01) {
	s.Put(pv.Product.CUSIP, pv)
	s.NotifyAdd(pv)
}

// AddPosition refreshes the product's PV01 entry against its current
// net aggregate position.
func (s *Service) AddPosition(pos model.Position) {
	unit, err := refdata.PV01ForUnit(pos.Product.CUSIP)
	if err != nil {
		logs.Warnf("risk: %+v", err)
		return
	}
	s.OnMessage(model.PV01{
		Product:  pos.Product,
		Value:    unit,
		Quantity: pos.Aggregate(),
	})
}

// BucketedRisk rolls the sector up: the value is the sum of unit PV01
// times quantity over the sector's products, the quantity is the sum
// of quantities. Products with no position contribute nothing.
func (s *Service) BucketedRisk(sector model.BucketedSector) model.BucketedPV01 {
	rollup := model.BucketedPV01{Sector: sector}
	for _, product := range sector.Products {
		pv, ok := s.Lookup(product.CUSIP)
		if !ok {
			continue
		}
		rollup.Value += pv.Value * float64(pv.Quantity)
		rollup.Quantity += pv.Quantity
	}
	return rollup
}

// PositionListener chains this service onto the position service.
func (s *Service) PositionListener() soa.Listener[model.Position] {
	return soa.ListenerFuncs[model.Position]{OnAdd: s.AddPosition}
}
