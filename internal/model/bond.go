package model

import "time"

// Bond identifies a US treasury product by CUSIP.
type Bond struct {
	CUSIP    string
	Ticker   string
	Coupon   float64
	Maturity time.Time
}

// ProductID returns the store key for the bond.
func (b Bond) ProductID() string {
	return b.CUSIP
}

// IsZero reports whether the bond is the default-constructed value.
func (b Bond) IsZero() bool {
	return b.CUSIP == ""
}
