package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/soa"
)

// quoteConnector mimics the loopback half of the inquiry connector:
// flip RECEIVED to QUOTED and re-enter the service.
type quoteConnector struct {
	svc *Service
}

func (c quoteConnector) Publish(inq model.Inquiry) {
	if inq.State != enum.InquiryReceived {
		return
	}
	inq.State = enum.InquiryQuoted
	c.svc.OnMessage(inq)
}

func received(id string) model.Inquiry {
	return model.Inquiry{
		InquiryID: id,
		Product:   model.Bond{CUSIP: "9128283H1"},
		Side:      enum.TradeSideBuy,
		Quantity:  1_000_000,
		Price:     99.5,
		State:     enum.InquiryReceived,
	}
}

func TestReceivedInquiryCompletesAsDone(t *testing.T) {
	svc := New()
	svc.SetConnector(quoteConnector{svc: svc})

	var got []model.Inquiry
	svc.AddListener(soa.ListenerFuncs[model.Inquiry]{OnAdd: func(i model.Inquiry) { got = append(got, i) }})

	svc.OnMessage(received("I1"))

	// exactly one notification, carrying the DONE state
	require.Len(t, got, 1)
	assert.Equal(t, enum.InquiryDone, got[0].State)

	// completed inquiries are erased
	_, err := svc.Get("I1")
	require.ErrorIs(t, err, soa.ErrNotFound)
}

func TestTerminalStatesAreIgnored(t *testing.T) {
	svc := New()
	svc.SetConnector(quoteConnector{svc: svc})

	var got []model.Inquiry
	svc.AddListener(soa.ListenerFuncs[model.Inquiry]{OnAdd: func(i model.Inquiry) { got = append(got, i) }})

	done := received("I2")
	done.State = enum.InquiryDone
	svc.OnMessage(done)
	assert.Empty(t, got)

	rejected := received("I3")
	rejected.State = enum.InquiryCustomerRejected
	svc.OnMessage(rejected)
	assert.Empty(t, got)
}

func TestSendQuoteUpdatesPrice(t *testing.T) {
	svc := New()

	// no connector wired: the inquiry parks in RECEIVED
	svc.OnMessage(received("I4"))

	var got []model.Inquiry
	svc.AddListener(soa.ListenerFuncs[model.Inquiry]{OnAdd: func(i model.Inquiry) { got = append(got, i) }})

	require.NoError(t, svc.SendQuote("I4", 100.25))
	require.Len(t, got, 1)
	assert.Equal(t, 100.25, got[0].Price)

	stored, err := svc.Get("I4")
	require.NoError(t, err)
	assert.Equal(t, 100.25, stored.Price)

	require.ErrorIs(t, svc.SendQuote("missing", 1.0), soa.ErrNotFound)
}

func TestRejectInquiry(t *testing.T) {
	svc := New()
	svc.OnMessage(received("I5"))

	var got []model.Inquiry
	svc.AddListener(soa.ListenerFuncs[model.Inquiry]{OnAdd: func(i model.Inquiry) { got = append(got, i) }})

	require.NoError(t, svc.RejectInquiry("I5"))
	require.Len(t, got, 1)
	assert.Equal(t, enum.InquiryRejected, got[0].State)

	// rejected inquiries stay stored, and further rejects are no-ops
	stored, err := svc.Get("I5")
	require.NoError(t, err)
	assert.Equal(t, enum.InquiryRejected, stored.State)

	require.NoError(t, svc.RejectInquiry("I5"))
	assert.Len(t, got, 1)
}
