// Package refdata holds the static US treasury reference data the
// pipeline is keyed on: the traded CUSIPs, per-unit PV01 constants,
// and the yield-bucket sectors used for risk rollups.
package refdata

import (
	"time"

	"github.com/yanun0323/errors"

	"main/internal/model"
)

var ErrUnknownCUSIP = errors.New("unknown cusip")

func maturity(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var bonds = map[string]model.Bond{
	"9128283H1": {CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.01750, Maturity: maturity(2019, time.November, 30)},
	"9128283L2": {CUSIP: "9128283L2", Ticker: "US3Y", Coupon: 0.01875, Maturity: maturity(2020, time.December, 15)},
	"912828M80": {CUSIP: "912828M80", Ticker: "US5Y", Coupon: 0.02000, Maturity: maturity(2022, time.November, 30)},
	"9128283J7": {CUSIP: "9128283J7", Ticker: "US7Y", Coupon: 0.02125, Maturity: maturity(2024, time.November, 30)},
	"9128283F5": {CUSIP: "9128283F5", Ticker: "US10Y", Coupon: 0.02250, Maturity: maturity(2027, time.December, 15)},
	"912810TW8": {CUSIP: "912810TW8", Ticker: "US20Y", Coupon: 0.02500, Maturity: maturity(2037, time.December, 15)},
	"912810RZ3": {CUSIP: "912810RZ3", Ticker: "US30Y", Coupon: 0.02750, Maturity: maturity(2047, time.December, 15)},
}

// unit PV01 per bond, precomputed from coupon and current yield on a
// 1000 face with semiannual compounding
var unitPV01 = map[string]float64{
	"9128283H1": 0.018476,
	"9128283L2": 0.027176,
	"912828M80": 0.044058,
	"9128283J7": 0.059262,
	"9128283F5": 0.080120,
	"912810TW8": 0.125563,
	"912810RZ3": 0.161743,
}

// CUSIPs returns the traded identifiers in curve order.
func CUSIPs() []string {
	return []string{
		"9128283H1",
		"9128283L2",
		"912828M80",
		"9128283J7",
		"9128283F5",
		"912810TW8",
		"912810RZ3",
	}
}

// ProductFor resolves a CUSIP to its bond.
func ProductFor(cusip string) (model.Bond, error) {
	bond, ok := bonds[cusip]
	if !ok {
		return model.Bond{}, errors.Wrapf(ErrUnknownCUSIP, "%q", cusip)
	}
	return bond, nil
}

// PV01ForUnit returns the per-unit PV01 for a CUSIP.
func PV01ForUnit(cusip string) (float64, error) {
	value, ok := unitPV01[cusip]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownCUSIP, "%q", cusip)
	}
	return value, nil
}

func mustProduct(cusip string) model.Bond {
	return bonds[cusip]
}

// Sectors returns the yield-bucket sectors used for risk rollups.
func Sectors() []model.BucketedSector {
	return []model.BucketedSector{
		{
			Name:     "FrontEnd",
			Products: []model.Bond{mustProduct("9128283H1"), mustProduct("9128283L2")},
		},
		{
			Name:     "Belly",
			Products: []model.Bond{mustProduct("912828M80"), mustProduct("9128283J7"), mustProduct("9128283F5")},
		},
		{
			Name:     "LongEnd",
			Products: []model.Bond{mustProduct("912810TW8"), mustProduct("912810RZ3")},
		},
	}
}
