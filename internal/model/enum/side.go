package enum

import "github.com/yanun0323/errors"

var ErrUnknownEnum = errors.New("unknown enum text")

// PricingSide bid, offer
type PricingSide uint8

const (
	_pricing_side_beg PricingSide = iota
	PricingSideBid
	PricingSideOffer
	_pricing_side_end
)

func (s PricingSide) IsAvailable() bool {
	return s > _pricing_side_beg && s < _pricing_side_end
}

func (s PricingSide) String() string {
	switch s {
	case PricingSideBid:
		return "BID"
	case PricingSideOffer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

// Opposite returns the other side of the book.
func (s PricingSide) Opposite() PricingSide {
	switch s {
	case PricingSideBid:
		return PricingSideOffer
	case PricingSideOffer:
		return PricingSideBid
	default:
		return s
	}
}

// TradeSide buy, sell
type TradeSide uint8

const (
	_trade_side_beg TradeSide = iota
	TradeSideBuy
	TradeSideSell
	_trade_side_end
)

func (s TradeSide) IsAvailable() bool {
	return s > _trade_side_beg && s < _trade_side_end
}

func (s TradeSide) String() string {
	switch s {
	case TradeSideBuy:
		return "BUY"
	case TradeSideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

func ParseTradeSide(text string) (TradeSide, error) {
	switch text {
	case "BUY":
		return TradeSideBuy, nil
	case "SELL":
		return TradeSideSell, nil
	default:
		return 0, errors.Wrapf(ErrUnknownEnum, "trade side: %q", text)
	}
}
