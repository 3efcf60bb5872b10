package model

import "strconv"

// PV01 carries the per-unit PV01 of one product together with the net
// aggregate position it applies to.
type PV01 struct {
	Product  Bond
	Value    float64
	Quantity int64
}

func (p PV01) AppendText(buf []byte) []byte {
	buf = append(buf, p.Product.CUSIP...)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, p.Value, 'f', 6, 64)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, p.Quantity, 10)
	return buf
}

func (p PV01) Text() string {
	return string(p.AppendText(make([]byte, 0, 64)))
}

// BucketedSector is a named group of products risk is rolled up over.
type BucketedSector struct {
	Name     string
	Products []Bond
}

// BucketedPV01 is the sector rollup: Value is the total dollar PV01
// (sum of unit pv01 times quantity), not a per-unit figure.
type BucketedPV01 struct {
	Sector   BucketedSector
	Value    float64
	Quantity int64
}

func (p BucketedPV01) AppendText(buf []byte) []byte {
	buf = append(buf, p.Sector.Name...)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, p.Value, 'f', 6, 64)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, p.Quantity, 10)
	return buf
}

func (p BucketedPV01) Text() string {
	return string(p.AppendText(make([]byte, 0, 64)))
}
