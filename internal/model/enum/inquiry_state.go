package enum

import "github.com/yanun0323/errors"

// InquiryState lifecycle of a customer inquiry
type InquiryState uint8

const (
	_inquiry_state_beg InquiryState = iota
	InquiryReceived
	InquiryQuoted
	InquiryDone
	InquiryRejected
	InquiryCustomerRejected
	_inquiry_state_end
)

func (s InquiryState) IsAvailable() bool {
	return s > _inquiry_state_beg && s < _inquiry_state_end
}

// IsTerminal reports whether no further transitions are allowed.
func (s InquiryState) IsTerminal() bool {
	switch s {
	case InquiryDone, InquiryRejected, InquiryCustomerRejected:
		return true
	default:
		return false
	}
}

func (s InquiryState) String() string {
	switch s {
	case InquiryReceived:
		return "RECEIVED"
	case InquiryQuoted:
		return "QUOTED"
	case InquiryDone:
		return "DONE"
	case InquiryRejected:
		return "REJECTED"
	case InquiryCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

func ParseInquiryState(text string) (InquiryState, error) {
	switch text {
	case "RECEIVED":
		return InquiryReceived, nil
	case "QUOTED":
		return InquiryQuoted, nil
	case "DONE":
		return InquiryDone, nil
	case "REJECTED":
		return InquiryRejected, nil
	case "CUSTOMER_REJECTED":
		return InquiryCustomerRejected, nil
	default:
		return 0, errors.Wrapf(ErrUnknownEnum, "inquiry state: %q", text)
	}
}
