// Package px converts US treasury prices between decimal and
// fractional 32nd notation ("100-25+" = 100 + 25/32 + 4/256).
package px

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

var ErrMalformedPrice = errors.New("malformed price text")

// Parse accepts either decimal notation ("100.015625") or fractional
// notation ("100-00+"). In fractional form the last character is the
// 256th digit 0..7, with "+" standing for 4.
func Parse(text string) (float64, error) {
	if text == "" {
		return 0, errors.Wrap(ErrMalformedPrice, "empty")
	}

	dash := strings.IndexByte(text, '-')
	if dash <= 0 {
		d, err := decimal.NewFromString(text)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedPrice, "decimal: %q", text)
		}
		return d.InexactFloat64(), nil
	}

	if len(text) < dash+4 {
		return 0, errors.Wrapf(ErrMalformedPrice, "fractional: %q", text)
	}

	handle, err := strconv.Atoi(text[:dash])
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedPrice, "handle: %q", text)
	}
	ticks, err := strconv.Atoi(text[dash+1 : dash+3])
	if err != nil || ticks > 31 {
		return 0, errors.Wrapf(ErrMalformedPrice, "32nds: %q", text)
	}
	var sub int
	switch c := text[dash+3]; {
	case c == '+':
		sub = 4
	case c >= '0' && c <= '7':
		sub = int(c - '0')
	default:
		return 0, errors.Wrapf(ErrMalformedPrice, "256ths: %q", text)
	}

	return float64(handle) + float64(ticks)/32.0 + float64(sub)/256.0, nil
}

// Format renders a price in fractional notation. The 256th digit 4 is
// rendered as "+", so Format(Parse(s)) == s holds for canonical
// fractional strings.
func Format(price float64) string {
	handle := int(math.Floor(price))
	frac := price - float64(handle)
	ticks := int(math.Floor(frac * 32))
	sub := int(frac*256) % 8

	var b strings.Builder
	b.WriteString(strconv.Itoa(handle))
	b.WriteByte('-')
	if ticks < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(ticks))
	if sub == 4 {
		b.WriteByte('+')
	} else {
		b.WriteString(strconv.Itoa(sub))
	}
	return b.String()
}
