package enum

import "github.com/yanun0323/errors"

// OrderType FOK, IOC, market, limit, stop
type OrderType uint8

const (
	_order_type_beg OrderType = iota
	OrderTypeFOK
	OrderTypeIOC
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStop
	_order_type_end
)

func (t OrderType) IsAvailable() bool {
	return t > _order_type_beg && t < _order_type_end
}

func (t OrderType) String() string {
	switch t {
	case OrderTypeFOK:
		return "FOK"
	case OrderTypeIOC:
		return "IOC"
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// Market the venue an execution order is routed to
type Market uint8

const (
	_market_beg Market = iota
	MarketBrokerTec
	MarketESpeed
	MarketCME
	_market_end
)

func (m Market) IsAvailable() bool {
	return m > _market_beg && m < _market_end
}

func (m Market) String() string {
	switch m {
	case MarketBrokerTec:
		return "BROKERTEC"
	case MarketESpeed:
		return "ESPEED"
	case MarketCME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}

// Book logical trading account
type Book uint8

const (
	_book_beg Book = iota
	BookTRSY1
	BookTRSY2
	BookTRSY3
	_book_end
)

func (b Book) IsAvailable() bool {
	return b > _book_beg && b < _book_end
}

func (b Book) String() string {
	switch b {
	case BookTRSY1:
		return "TRSY1"
	case BookTRSY2:
		return "TRSY2"
	case BookTRSY3:
		return "TRSY3"
	default:
		return "UNKNOWN"
	}
}

func ParseBook(text string) (Book, error) {
	switch text {
	case "TRSY1":
		return BookTRSY1, nil
	case "TRSY2":
		return BookTRSY2, nil
	case "TRSY3":
		return BookTRSY3, nil
	default:
		return 0, errors.Wrapf(ErrUnknownEnum, "book: %q", text)
	}
}

// BookAt maps a rotation counter onto the trading books.
func BookAt(counter uint64) Book {
	switch counter % 3 {
	case 0:
		return BookTRSY1
	case 1:
		return BookTRSY2
	default:
		return BookTRSY3
	}
}
