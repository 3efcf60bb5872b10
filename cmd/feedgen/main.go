package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/yanun0323/logs"

	"main/internal/mdg"
	"main/internal/refdata"
)

func main() {
	dir := flag.String("dir", "data", "Output directory for feed files")
	seed := flag.Int64("seed", 42, "Generator seed")
	ticks := flag.Int("ticks", 1000, "Price/book ticks per product")
	trades := flag.Int("trades", 10, "Trades per product")
	inquiries := flag.Int("inquiries", 10, "Inquiries per product")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		logs.Errorf("feedgen: %+v", err)
		os.Exit(1)
	}

	cusips := refdata.CUSIPs()
	if err := mdg.GenPricesAndBooks(cusips,
		filepath.Join(*dir, "prices.txt"),
		filepath.Join(*dir, "marketdata.txt"),
		*seed, *ticks); err != nil {
		logs.Errorf("feedgen: %+v", err)
		os.Exit(1)
	}
	if err := mdg.GenTrades(cusips, filepath.Join(*dir, "trades.txt"), *seed, *trades); err != nil {
		logs.Errorf("feedgen: %+v", err)
		os.Exit(1)
	}
	if err := mdg.GenInquiries(cusips, filepath.Join(*dir, "inquiries.txt"), *seed, *inquiries); err != nil {
		logs.Errorf("feedgen: %+v", err)
		os.Exit(1)
	}
	logs.Infof("feed files written to %s", *dir)
}
