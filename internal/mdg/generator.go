// Package mdg generates the synthetic feed files the system replays
// through its sockets: prices, order books, trades, and inquiries.
// For a given seed the ids, prices, sizes and sides repeat; the
// timestamps in the price and book files start from the wall clock.
package mdg

import (
	"bufio"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/yanun0323/errors"

	"main/internal/hist"
	"main/internal/ids"
	"main/internal/px"
)

const bookDepth = 5

var books = []string{"TRSY1", "TRSY2", "TRSY3"}
var quantities = []int64{1_000_000, 2_000_000, 3_000_000, 4_000_000, 5_000_000}

// GenPricesAndBooks writes the price and order book feed files. The
// mid oscillates between 99 and 101 in 1/256 steps; the quoted spread
// is drawn at random each tick from 2/256, 3/256 or 4/256 (1/128 to
// 1/64); the book's top spread oscillates
// between 1/128 and 1/32 so the execution algo sees both tight and
// wide books.
func GenPricesAndBooks(cusips []string, priceFile, bookFile string, seed int64, ticks int) error {
	pf, err := os.Create(priceFile)
	if err != nil {
		return errors.Wrap(err, "create price file")
	}
	defer func() { _ = pf.Close() }()
	bf, err := os.Create(bookFile)
	if err != nil {
		return errors.Wrap(err, "create book file")
	}
	defer func() { _ = bf.Close() }()

	pw := bufio.NewWriter(pf)
	bw := bufio.NewWriter(bf)

	_, _ = pw.WriteString("Timestamp,CUSIP,Bid,Ask,Spread\n")
	_, _ = bw.WriteString("Timestamp,CUSIP")
	for level := 1; level <= bookDepth; level++ {
		l := strconv.Itoa(level)
		_, _ = bw.WriteString(",Bid" + l + ",BidSize" + l + ",Ask" + l + ",AskSize" + l)
	}
	_, _ = bw.WriteString("\n")

	rng := rand.New(rand.NewSource(seed))
	for _, cusip := range cusips {
		mid := 99.0
		priceIncreasing := true
		spreadIncreasing := true
		fixSpread := 1.0 / 128.0
		clock := time.Now()

		for i := 0; i < ticks; i++ {
			// quoted spread is a random pick between 1/128 and 1/64
			quoted := float64(2+rng.Intn(3)) / 256.0
			clock = clock.Add(time.Duration(1+rng.Intn(9)) * time.Millisecond)
			stamp := hist.Stamp(clock)

			bid := mid - quoted/2
			ask := mid + quoted/2
			_, _ = pw.WriteString(stamp + "," + cusip + "," + px.Format(bid) + "," + px.Format(ask) + "," + px.Format(quoted) + "\n")

			_, _ = bw.WriteString(stamp + "," + cusip)
			for level := 1; level <= bookDepth; level++ {
				levelBid := mid - fixSpread*float64(level)/2
				levelAsk := mid + fixSpread*float64(level)/2
				size := strconv.FormatInt(int64(level)*1_000_000, 10)
				_, _ = bw.WriteString("," + px.Format(levelBid) + "," + size + "," + px.Format(levelAsk) + "," + size)
			}
			_, _ = bw.WriteString("\n")

			if priceIncreasing {
				mid += 1.0 / 256.0
				if ask >= 101.0 {
					priceIncreasing = false
				}
			} else {
				mid -= 1.0 / 256.0
				if bid <= 99.0 {
					priceIncreasing = true
				}
			}

			if spreadIncreasing {
				fixSpread += 1.0 / 128.0
				if fixSpread >= 1.0/32.0 {
					spreadIncreasing = false
				}
			} else {
				fixSpread -= 1.0 / 128.0
				if fixSpread <= 1.0/128.0 {
					spreadIncreasing = true
				}
			}
		}
	}

	if err := pw.Flush(); err != nil {
		return errors.Wrap(err, "flush price file")
	}
	return errors.Wrap(bw.Flush(), "flush book file")
}

// GenTrades writes the trade feed file: alternating BUY/SELL with the
// books and sizes rotating per trade.
func GenTrades(cusips []string, path string, seed int64, perProduct int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create trade file")
	}
	defer func() { _ = file.Close() }()
	w := bufio.NewWriter(file)

	rng := rand.New(rand.NewSource(seed))
	for _, cusip := range cusips {
		for i := 0; i < perProduct; i++ {
			side := "BUY"
			price := 99.0 + rng.Float64()
			if i%2 == 1 {
				side = "SELL"
				price = 100.0 + rng.Float64()
			}
			tradeID := ids.Random(rng, 12)
			quantity := strconv.FormatInt(quantities[i%len(quantities)], 10)
			book := books[i%len(books)]
			_, _ = w.WriteString(cusip + "," + tradeID + "," + px.Format(price) + "," + book + "," + quantity + "," + side + "\n")
		}
	}
	return errors.Wrap(w.Flush(), "flush trade file")
}

// GenInquiries writes the inquiry feed file; every inquiry starts in
// RECEIVED.
func GenInquiries(cusips []string, path string, seed int64, perProduct int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create inquiry file")
	}
	defer func() { _ = file.Close() }()
	w := bufio.NewWriter(file)

	rng := rand.New(rand.NewSource(seed))
	for _, cusip := range cusips {
		for i := 0; i < perProduct; i++ {
			side := "BUY"
			price := 99.0 + rng.Float64()
			if i%2 == 1 {
				side = "SELL"
				price = 100.0 + rng.Float64()
			}
			inquiryID := ids.Random(rng, 12)
			quantity := strconv.FormatInt(quantities[i%len(quantities)], 10)
			_, _ = w.WriteString(inquiryID + "," + cusip + "," + side + "," + quantity + "," + px.Format(price) + ",RECEIVED\n")
		}
	}
	return errors.Wrap(w.Flush(), "flush inquiry file")
}
