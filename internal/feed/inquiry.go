package feed

import (
	"context"
	"strconv"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/inquiry"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/px"
	"main/internal/refdata"
	"main/internal/soa"
	"main/pkg/scanner"
	"main/pkg/tcp"
)

var _ soa.SubscriberConnector[model.Inquiry] = (*InquiryConnector)(nil)

// InquiryConnector is both subscriber and publisher: it ingests
// inquiry records from the socket, and quotes received inquiries by
// flipping them to QUOTED and looping them back into the service.
type InquiryConnector struct {
	svc     *inquiry.Service
	srv     *tcp.Server
	metrics *obs.Metrics
}

func NewInquiryConnector(addr string, svc *inquiry.Service, metrics *obs.Metrics) (*InquiryConnector, error) {
	srv, err := tcp.NewServer(addr)
	if err != nil {
		return nil, err
	}
	return &InquiryConnector{svc: svc, srv: srv, metrics: metrics}, nil
}

// Publish quotes a received inquiry and re-enters the service. Any
// other state is not for the connector to act on.
func (c *InquiryConnector) Publish(inq model.Inquiry) {
	if inq.State != enum.InquiryReceived {
		return
	}
	inq.State = enum.InquiryQuoted
	c.subscribeUpdate(inq)
}

func (c *InquiryConnector) subscribeUpdate(inq model.Inquiry) {
	c.svc.OnMessage(inq)
}

// Subscribe drives ingress until the source closes.
func (c *InquiryConnector) Subscribe(ctx context.Context) error {
	return serve(ctx, c.srv, inboundDelim, func(record []byte) {
		start := time.Now()
		inq, err := ParseInquiryRecord(record)
		if err != nil {
			logs.Warnf("inquiry feed: dropping record: %+v", err)
			c.metrics.IncParseDrop(obs.FeedInquiry)
			return
		}
		c.metrics.IncRecord(obs.FeedInquiry)
		c.svc.OnMessage(inq)
		c.metrics.ObserveChain(time.Since(start))
	})
}

// ParseInquiryRecord parses "inquiryId,cusip,side,quantity,price,state".
func ParseInquiryRecord(record []byte) (model.Inquiry, error) {
	fields := scanner.Fields(record)
	if len(fields) != 6 {
		return model.Inquiry{}, errors.Wrapf(ErrBadRecord, "inquiry fields: %d", len(fields))
	}

	product, err := refdata.ProductFor(fields[1])
	if err != nil {
		return model.Inquiry{}, err
	}
	side, err := enum.ParseTradeSide(fields[2])
	if err != nil {
		return model.Inquiry{}, err
	}
	quantity, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil || quantity < 0 {
		return model.Inquiry{}, errors.Wrapf(ErrBadRecord, "quantity: %q", fields[3])
	}
	price, err := px.Parse(fields[4])
	if err != nil {
		return model.Inquiry{}, errors.Wrap(err, "price")
	}
	state, err := enum.ParseInquiryState(fields[5])
	if err != nil {
		return model.Inquiry{}, err
	}

	return model.Inquiry{
		InquiryID: fields[0],
		Product:   product,
		Side:      side,
		Quantity:  quantity,
		Price:     price,
		State:     state,
	}, nil
}
