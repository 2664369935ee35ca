// Package processor holds PaymentProcessor implementations.
//
// The simulated processor stands in for a real gateway: it waits a fixed delay and
// approves a configurable share of payments at random.
package processor

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

type simulated struct {
	delay       time.Duration
	successRate float64
	roll        func() float64
}

type Option func(*simulated)

// WithRoll replaces the random source; it must return values in [0, 1).
func WithRoll(roll func() float64) Option {
	return func(s *simulated) { s.roll = roll }
}

func NewSimulated(delay time.Duration, successRate float64, opts ...Option) *simulated {
	s := &simulated{
		delay:       delay,
		successRate: successRate,
		roll:        rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process approves when the roll lands above the failure share (roll > 1-successRate).
func (s *simulated) Process(ctx context.Context, draft model.PaymentDraft) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}

	approved := s.roll() > 1-s.successRate

	logger.Debug(ctx, "simulated payment processed",
		logger.String("service", string(draft.Service)),
		logger.String("card_last4", draft.CardLast4()),
		logger.Bool("approved", approved),
	)

	return approved, nil
}

func (s *simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
