package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"

	"main/internal/algoexec"
	"main/internal/algostream"
	"main/internal/execution"
	"main/internal/feed"
	"main/internal/gui"
	"main/internal/hist"
	"main/internal/hist/archive"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/mdg"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/refdata"
	"main/internal/risk"
	"main/internal/soa"
	"main/internal/streaming"
	"main/internal/tradebook"
	"main/pkg/conn"
)

const drainDelay = 500 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	regenerate := flag.Bool("regenerate", false, "Regenerate feed files even when present")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		logs.Errorf("config load failed: %+v", err)
		os.Exit(1)
	}

	if err := run(loaded, *regenerate); err != nil {
		logs.Errorf("trader failed: %+v", err)
		os.Exit(1)
	}
}

func run(loaded ops.Loaded, regenerate bool) error {
	logs.Info("trading system starting")

	if addr := loaded.Profiling.ServerAddress; addr != "" {
		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "treasury.trader",
			ServerAddress:   addr,
		}); err != nil {
			logs.Errorf("profiling disabled: %+v", err)
		}
	}

	if err := os.MkdirAll(loaded.DataDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(loaded.ResultDir, 0o755); err != nil {
		return err
	}

	paths := feedPaths(loaded.DataDir)
	if err := generateFeeds(loaded, paths, regenerate); err != nil {
		return err
	}

	arch := openArchive(loaded)
	if arch != nil {
		defer func() { _ = arch.Close() }()
	}

	metrics := obs.NewMetrics()
	soa.NotifyCounter = metrics.IncNotification

	// services
	pricingSvc := pricing.New()
	marketSvc := marketdata.New()
	tradebookSvc := tradebook.New()
	positionSvc := position.New()
	riskSvc := risk.New()
	algoStreamSvc := algostream.New()
	algoExecSvc := algoexec.New(loaded.Generator.Seed)

	streamConn, err := feed.NewPublishConnector[model.PriceStream]("streaming", loaded.Addr(loaded.Ports.Streaming), metrics)
	if err != nil {
		return err
	}
	execConn, err := feed.NewPublishConnector[model.ExecutionOrder]("execution", loaded.Addr(loaded.Ports.Execution), metrics)
	if err != nil {
		return err
	}
	streamingSvc := streaming.New(streamConn)
	executionSvc := execution.New(execConn)

	inquirySvc := inquiry.New()
	inquiryConn, err := feed.NewInquiryConnector(loaded.Addr(loaded.Ports.Inquiry), inquirySvc, metrics)
	if err != nil {
		return err
	}
	inquirySvc.SetConnector(inquiryConn)

	guiSvc := gui.New(filepath.Join(loaded.ResultDir, "gui.txt"), loaded.GUIThrottle)

	// historical persistence fan-out
	histPositions := hist.New[model.Position](hist.ServicePositions, hist.PositionAdapter{},
		hist.NewFileConnector[model.Position](hist.ServicePositions, loaded.ResultDir, hist.PositionAdapter{}, arch))
	histRisk := hist.New[model.PV01](hist.ServiceRisk, hist.PV01Adapter{},
		hist.NewFileConnector[model.PV01](hist.ServiceRisk, loaded.ResultDir, hist.PV01Adapter{}, arch))
	histExecutions := hist.New[model.ExecutionOrder](hist.ServiceExecutions, hist.ExecutionAdapter{},
		hist.NewFileConnector[model.ExecutionOrder](hist.ServiceExecutions, loaded.ResultDir, hist.ExecutionAdapter{}, arch))
	histStreams := hist.New[model.PriceStream](hist.ServiceStreaming, hist.StreamAdapter{},
		hist.NewFileConnector[model.PriceStream](hist.ServiceStreaming, loaded.ResultDir, hist.StreamAdapter{}, arch))
	histInquiries := hist.New[model.Inquiry](hist.ServiceInquiries, hist.InquiryAdapter{},
		hist.NewFileConnector[model.Inquiry](hist.ServiceInquiries, loaded.ResultDir, hist.InquiryAdapter{}, arch))

	// listener wiring, registration order is fan-out order
	pricingSvc.AddListener(algoStreamSvc.PriceListener())
	if loaded.Features.EnableGUI {
		pricingSvc.AddListener(guiSvc.PriceListener())
	}
	marketSvc.AddListener(algoExecSvc.BookListener())
	algoStreamSvc.AddListener(streamingSvc.AlgoListener())
	algoExecSvc.AddListener(executionSvc.AlgoListener())
	executionSvc.AddListener(histExecutions.Listener())
	executionSvc.AddListener(tradebookSvc.ExecutionListener())
	tradebookSvc.AddListener(positionSvc.TradeListener())
	positionSvc.AddListener(riskSvc.PositionListener())
	positionSvc.AddListener(histPositions.Listener())
	riskSvc.AddListener(histRisk.Listener())
	streamingSvc.AddListener(histStreams.Listener())
	inquirySvc.AddListener(histInquiries.Listener())

	// inbound connectors
	priceConn, err := feed.NewPriceConnector(loaded.Addr(loaded.Ports.Price), pricingSvc, metrics)
	if err != nil {
		return err
	}
	marketConn, err := feed.NewMarketConnector(loaded.Addr(loaded.Ports.Market), marketSvc, metrics)
	if err != nil {
		return err
	}
	tradeConn, err := feed.NewTradeConnector(loaded.Addr(loaded.Ports.Trade), tradebookSvc, metrics)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var servers sync.WaitGroup
	subscribe := func(name string, fn func(context.Context) error) {
		servers.Add(1)
		go func() {
			defer servers.Done()
			if err := fn(ctx); err != nil {
				logs.Errorf("%s server failed: %+v", name, err)
			}
		}()
	}
	subscribe("price", priceConn.Subscribe)
	subscribe("market", marketConn.Subscribe)
	subscribe("trade", tradeConn.Subscribe)
	subscribe("inquiry", inquiryConn.Subscribe)
	subscribe("streaming publish", streamConn.Run)
	subscribe("execution publish", execConn.Run)

	// replay the data files through the feed sockets
	var streamers sync.WaitGroup
	stream := func(path string, port int) {
		streamers.Add(1)
		go func() {
			defer streamers.Done()
			streamer, err := feed.NewFileStreamer(path, loaded.Addr(port))
			if err != nil {
				logs.Errorf("streamer %s: %+v", path, err)
				return
			}
			if err := streamer.Stream(ctx); err != nil {
				logs.Errorf("streamer %s: %+v", path, err)
			}
		}()
	}
	stream(paths.prices, loaded.Ports.Price)
	stream(paths.books, loaded.Ports.Market)
	stream(paths.trades, loaded.Ports.Trade)
	stream(paths.inquiries, loaded.Ports.Inquiry)
	streamers.Wait()

	// let the last connection drain through its chain before shutdown
	time.Sleep(drainDelay)
	streamConn.Close()
	execConn.Close()
	cancel()
	servers.Wait()

	for _, sector := range refdata.Sectors() {
		logs.Infof("bucketed risk: %s", riskSvc.BucketedRisk(sector).Text())
	}
	snap := metrics.Snapshot()
	logs.Infof("metrics: records=%v drops=%v notifications=%d publish_drops=%d chain=%+v",
		snap.RecordsIn, snap.ParseDrops, snap.Notifications, snap.PublishDrops, snap.ChainLatency)
	logs.Info("trading system stopped")
	return nil
}

type feedFiles struct {
	prices    string
	books     string
	trades    string
	inquiries string
}

func feedPaths(dir string) feedFiles {
	return feedFiles{
		prices:    filepath.Join(dir, "prices.txt"),
		books:     filepath.Join(dir, "marketdata.txt"),
		trades:    filepath.Join(dir, "trades.txt"),
		inquiries: filepath.Join(dir, "inquiries.txt"),
	}
}

func generateFeeds(loaded ops.Loaded, paths feedFiles, regenerate bool) error {
	if !regenerate && allExist(paths.prices, paths.books, paths.trades, paths.inquiries) {
		logs.Info("feed files present, skipping generation")
		return nil
	}
	cusips := refdata.CUSIPs()
	gen := loaded.Generator
	if err := mdg.GenPricesAndBooks(cusips, paths.prices, paths.books, gen.Seed, gen.TicksPerProduct); err != nil {
		return err
	}
	if err := mdg.GenTrades(cusips, paths.trades, gen.Seed, gen.TradesPerProduct); err != nil {
		return err
	}
	return mdg.GenInquiries(cusips, paths.inquiries, gen.Seed, gen.InquiriesPerProduct)
}

func allExist(paths ...string) bool {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

func openArchive(loaded ops.Loaded) *archive.Store {
	if !loaded.Features.EnableArchive {
		return nil
	}
	option := loaded.Archive
	if option.Driver == "" || option.Driver == conn.DriverSQLite {
		if option.Path == "" {
			option.Path = filepath.Join(loaded.ResultDir, "archive.db")
		}
	}
	arch, err := archive.Open(option)
	if err != nil {
		logs.Errorf("archive disabled: %+v", err)
		return nil
	}
	return arch
}
