package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/algoexec"
	"main/internal/algostream"
	"main/internal/execution"
	"main/internal/hist"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/refdata"
	"main/internal/risk"
	"main/internal/streaming"
	"main/internal/tradebook"
)

// pipeline wires the full listener graph the way the composition root
// does, with file persistence into a temp dir and no sockets.
type pipeline struct {
	dir        string
	pricing    *pricing.Service
	market     *marketdata.Service
	tradebook  *tradebook.Service
	position   *position.Service
	risk       *risk.Service
	algoStream *algostream.Service
	algoExec   *algoexec.Service
	streaming  *streaming.Service
	execution  *execution.Service
	inquiry    *inquiry.Service
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	dir := t.TempDir()

	p := &pipeline{
		dir:        dir,
		pricing:    pricing.New(),
		market:     marketdata.New(),
		tradebook:  tradebook.New(),
		position:   position.New(),
		risk:       risk.New(),
		algoStream: algostream.New(),
		algoExec:   algoexec.New(1),
		streaming:  streaming.New(nil),
		execution:  execution.New(nil),
		inquiry:    inquiry.New(),
	}

	inquiryConn, err := NewInquiryConnector("localhost:0", p.inquiry, obs.NewMetrics())
	require.NoError(t, err)
	p.inquiry.SetConnector(inquiryConn)

	histPositions := hist.New[model.Position](hist.ServicePositions, hist.PositionAdapter{},
		hist.NewFileConnector[model.Position](hist.ServicePositions, dir, hist.PositionAdapter{}, nil))
	histRisk := hist.New[model.PV01](hist.ServiceRisk, hist.PV01Adapter{},
		hist.NewFileConnector[model.PV01](hist.ServiceRisk, dir, hist.PV01Adapter{}, nil))
	histExecutions := hist.New[model.ExecutionOrder](hist.ServiceExecutions, hist.ExecutionAdapter{},
		hist.NewFileConnector[model.ExecutionOrder](hist.ServiceExecutions, dir, hist.ExecutionAdapter{}, nil))
	histStreams := hist.New[model.PriceStream](hist.ServiceStreaming, hist.StreamAdapter{},
		hist.NewFileConnector[model.PriceStream](hist.ServiceStreaming, dir, hist.StreamAdapter{}, nil))
	histInquiries := hist.New[model.Inquiry](hist.ServiceInquiries, hist.InquiryAdapter{},
		hist.NewFileConnector[model.Inquiry](hist.ServiceInquiries, dir, hist.InquiryAdapter{}, nil))

	p.pricing.AddListener(p.algoStream.PriceListener())
	p.market.AddListener(p.algoExec.BookListener())
	p.algoStream.AddListener(p.streaming.AlgoListener())
	p.algoExec.AddListener(p.execution.AlgoListener())
	p.execution.AddListener(histExecutions.Listener())
	p.execution.AddListener(p.tradebook.ExecutionListener())
	p.tradebook.AddListener(p.position.TradeListener())
	p.position.AddListener(p.risk.PositionListener())
	p.position.AddListener(histPositions.Listener())
	p.risk.AddListener(histRisk.Listener())
	p.streaming.AddListener(histStreams.Listener())
	p.inquiry.AddListener(histInquiries.Listener())

	return p
}

func (p *pipeline) file(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(p.dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestPriceFlowsToStreamOutput(t *testing.T) {
	p := newPipeline(t)

	price, err := ParsePriceRecord([]byte("ts,9128283H1,99-31+,100-00+,0-002"))
	require.NoError(t, err)
	p.pricing.OnMessage(price)

	stream, err := p.streaming.Get("9128283H1")
	require.NoError(t, err)
	assert.InDelta(t, 100.0-1.0/256.0, stream.Bid.Price, 1e-9)
	assert.InDelta(t, 100.0+1.0/256.0, stream.Offer.Price, 1e-9)
	assert.Equal(t, int64(1_000_000), stream.Bid.VisibleQuantity)
	assert.Equal(t, int64(2_000_000), stream.Bid.HiddenQuantity)

	assert.Contains(t, p.file(t, "streaming.txt"), stream.Text())
}

func TestTightBookFlowsToRisk(t *testing.T) {
	p := newPipeline(t)

	book := model.OrderBook{
		Product: mustProduct(t, "912828M80"),
		Bids:    []model.Order{{Price: 99.99, Quantity: 1_000_000, Side: enum.PricingSideBid}},
		Offers:  []model.Order{{Price: 99.99 + 1.0/128.0, Quantity: 1_000_000, Side: enum.PricingSideOffer}},
	}
	p.market.OnMessage(marketdata.AggregateDepth(book))

	// algo crossed the book and the execution became a booked trade
	exec, err := p.algoExec.Get("912828M80")
	require.NoError(t, err)
	require.NotEmpty(t, exec.Order.OrderID)
	assert.Equal(t, enum.PricingSideBid, exec.Order.Side)

	trade, err := p.tradebook.Get(exec.Order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, enum.TradeSideBuy, trade.Side)
	assert.Equal(t, int64(1_000_000), trade.Quantity)

	pos, err := p.position.Get("912828M80")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), pos.Aggregate())

	pv, err := p.risk.Get("912828M80")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), pv.Quantity)

	assert.Contains(t, p.file(t, "executions.txt"), exec.Order.Text())
	assert.Contains(t, p.file(t, "positions.txt"), pos.Text())
	assert.Contains(t, p.file(t, "risk.txt"), pv.Text())
}

func TestWideBookLeavesPipelineUntouched(t *testing.T) {
	p := newPipeline(t)

	book := model.OrderBook{
		Product: mustProduct(t, "912828M80"),
		Bids:    []model.Order{{Price: 99.99, Quantity: 1_000_000, Side: enum.PricingSideBid}},
		Offers:  []model.Order{{Price: 99.99 + 1.0/32.0, Quantity: 1_000_000, Side: enum.PricingSideOffer}},
	}
	p.market.OnMessage(marketdata.AggregateDepth(book))

	pos, err := p.position.Get("912828M80")
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos.Aggregate())
	_, err = os.Stat(filepath.Join(p.dir, "executions.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestInquiryLifecycleThroughLoopback(t *testing.T) {
	p := newPipeline(t)

	inq, err := ParseInquiryRecord([]byte("INQ001,9128283F5,BUY,2000000,100-000,RECEIVED"))
	require.NoError(t, err)
	p.inquiry.OnMessage(inq)

	// erased after DONE; exactly one historical record, in DONE state
	_, err = p.inquiry.Get("INQ001")
	require.Error(t, err)

	content := p.file(t, "allinquiries.txt")
	assert.Equal(t, 1, countLines(content))
	assert.Contains(t, content, "DONE")
}

func countLines(content string) int {
	count := 0
	for _, c := range content {
		if c == '\n' {
			count++
		}
	}
	return count
}

func mustProduct(t *testing.T, cusip string) model.Bond {
	t.Helper()
	bond, err := refdata.ProductFor(cusip)
	require.NoError(t, err)
	return bond
}
