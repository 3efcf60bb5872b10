package model

import (
	"strconv"

	"main/internal/model/enum"
)

// Position tracks signed quantities per trading book for one product.
type Position struct {
	Product    Bond
	Quantities map[enum.Book]int64
}

// NewPosition creates an empty position for the product.
func NewPosition(product Bond) Position {
	return Position{
		Product:    product,
		Quantities: make(map[enum.Book]int64, 3),
	}
}

// Quantity returns the signed quantity for one book.
func (p Position) Quantity(book enum.Book) int64 {
	return p.Quantities[book]
}

// Aggregate returns the sum of signed quantities over all books.
func (p Position) Aggregate() int64 {
	var total int64
	for _, qty := range p.Quantities {
		total += qty
	}
	return total
}

func (p Position) AppendText(buf []byte) []byte {
	buf = append(buf, p.Product.CUSIP...)
	for _, book := range []enum.Book{enum.BookTRSY1, enum.BookTRSY2, enum.BookTRSY3} {
		buf = append(buf, ',')
		buf = append(buf, book.String()...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, p.Quantities[book], 10)
	}
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, p.Aggregate(), 10)
	return buf
}

func (p Position) Text() string {
	return string(p.AppendText(make([]byte, 0, 96)))
}
