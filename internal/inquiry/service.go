// Package inquiry runs the customer inquiry state machine. Received
// inquiries are quoted through the connector loopback, completed ones
// are erased after notification.
package inquiry

import (
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/soa"
)

// Service keys inquiries on inquiryId. The service owns its connector;
// the connector holds a non-owning back-reference used for the quote
// loopback.
type Service struct {
	*soa.Store[model.Inquiry]
	connector soa.Connector[model.Inquiry]
}

var _ soa.Service[string, model.Inquiry] = (*Service)(nil)

func New() *Service {
	return &Service{Store: soa.NewStore[model.Inquiry]("inquiry")}
}

// SetConnector wires the loopback connector after construction.
func (s *Service) SetConnector(connector soa.Connector[model.Inquiry]) {
	s.connector = connector
}

// Get returns the inquiry for an id, or ErrNotFound. Completed
// inquiries are erased, so a DONE id is a miss.
func (s *Service) Get(inquiryID string) (model.Inquiry, error) {
	return s.GetStrict(inquiryID)
}

// OnMessage dispatches on the inquiry state. A received inquiry goes
// out through the connector, which flips it to QUOTED and re-enters
// here; the quoted leg completes as DONE, notifies once, and is
// erased. Anything else is a logic error and is ignored.
func (s *Service) OnMessage(inq model.Inquiry) {
	switch inq.State {
	case enum.InquiryReceived:
		s.Put(inq.InquiryID, inq)
		if s.connector != nil {
			s.connector.Publish(inq)
		}
	case enum.InquiryQuoted:
		inq.State = enum.InquiryDone
		s.Put(inq.InquiryID, inq)
		s.NotifyAdd(inq)
		s.Erase(inq.InquiryID)
	default:
		logs.Warnf("inquiry %s: ignoring message in state %s", inq.InquiryID, inq.State)
	}
}

// SendQuote updates the inquiry's quoted price and notifies listeners.
func (s *Service) SendQuote(inquiryID string, price float64) error {
	inq, err := s.GetStrict(inquiryID)
	if err != nil {
		return err
	}
	if inq.State.IsTerminal() {
		logs.Warnf("inquiry %s: quote in terminal state %s", inquiryID, inq.State)
		return nil
	}
	inq.Price = price
	s.Put(inq.InquiryID, inq)
	s.NotifyAdd(inq)
	return nil
}

// RejectInquiry moves the inquiry to REJECTED. Rejected inquiries stay
// in the store.
func (s *Service) RejectInquiry(inquiryID string) error {
	inq, err := s.GetStrict(inquiryID)
	if err != nil {
		return err
	}
	if inq.State.IsTerminal() {
		logs.Warnf("inquiry %s: reject in terminal state %s", inquiryID, inq.State)
		return nil
	}
	inq.State = enum.InquiryRejected
	s.Put(inq.InquiryID, inq)
	s.NotifyAdd(inq)
	return nil
}
