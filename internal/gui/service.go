// Package gui throttles price updates into the gui output file.
package gui

import (
	"os"
	"time"

	"github.com/yanun0323/logs"

	"main/internal/hist"
	"main/internal/model"
	"main/internal/soa"
)

const defaultThrottle = 300 * time.Millisecond

// Service writes at most one price record per product per throttle
// window. It keeps no entity store; the output file is the state.
type Service struct {
	path     string
	throttle time.Duration
	last     map[string]time.Time
	now      func() time.Time
}

func New(path string, throttle time.Duration) *Service {
	if throttle <= 0 {
		throttle = defaultThrottle
	}
	return &Service{
		path:     path,
		throttle: throttle,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// OnMessage appends the price unless the product published within the
// throttle window.
func (s *Service) OnMessage(price model.Price) {
	now := s.now()
	if last, ok := s.last[price.Product.CUSIP]; ok && now.Sub(last) < s.throttle {
		return
	}
	s.last[price.Product.CUSIP] = now

	line := hist.Stamp(now) + "," + price.Text() + "\n"
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logs.Errorf("gui: open failed: %+v", err)
		return
	}
	if _, err := file.WriteString(line); err != nil {
		logs.Errorf("gui: write failed: %+v", err)
	}
	_ = file.Close()
}

// PriceListener chains this service onto the pricing service.
func (s *Service) PriceListener() soa.Listener[model.Price] {
	return soa.ListenerFuncs[model.Price]{OnAdd: s.OnMessage}
}
