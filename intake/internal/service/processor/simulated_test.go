package processor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

func TestSimulatedProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		successRate float64
		roll        float64
		want        bool
	}{
		{name: "roll above failure share approves", successRate: 0.8, roll: 0.5, want: true},
		{name: "roll below failure share declines", successRate: 0.8, roll: 0.15, want: false},
		{name: "low roll declines", successRate: 0.8, roll: 0.1, want: false},
		{name: "zero rate always declines", successRate: 0, roll: 0.999, want: false},
		{name: "full rate approves a zero roll", successRate: 1, roll: 0.0001, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewSimulated(0, tt.successRate, WithRoll(func() float64 { return tt.roll }))
			got, err := p.Process(context.Background(), model.PaymentDraft{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimulatedProcessWaitsForDelay(t *testing.T) {
	t.Parallel()

	p := NewSimulated(30*time.Millisecond, 1, WithRoll(func() float64 { return 0.5 }))

	start := time.Now()
	ok, err := p.Process(context.Background(), model.PaymentDraft{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSimulatedProcessCancelled(t *testing.T) {
	t.Parallel()

	p := NewSimulated(time.Hour, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := p.Process(ctx, model.PaymentDraft{})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
