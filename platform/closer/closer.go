package closer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

const shutdownMsg = "🛑 shutdown signal received"

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer закрывает зарегистрированные ресурсы в обратном порядке (LIFO).
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	done   chan struct{}
	funcs  []namedFunc
	logger Logger
}

var globalCloser = NewWithLogger(nopLogger{})

func AddNamed(name string, f func(context.Context) error) { globalCloser.AddNamed(name, f) }

func CloseAll(ctx context.Context) error { return globalCloser.CloseAll(ctx) }

func SetLogger(l Logger) { globalCloser.SetLogger(l) }

// Configure закрывает ресурсы при получении одного из сигналов.
func Configure(signals ...os.Signal) { go globalCloser.handleSignals(signals...) }

func New(signals ...os.Signal) *Closer {
	c := NewWithLogger(nopLogger{})
	if len(signals) > 0 {
		go c.handleSignals(signals...)
	}
	return c
}

func NewWithLogger(logger Logger) *Closer {
	return &Closer{
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) handleSignals(signals ...os.Signal) {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	defer signal.Stop(ch)

	select {
	case <-ch:
		c.logger.Info(context.Background(), shutdownMsg)
		if err := c.CloseAll(context.Background()); err != nil {
			c.logger.Error(context.Background(), "❌ close all", zap.Error(err))
		}
	case <-c.done:
	}
}

func (c *Closer) AddNamed(name string, f func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: f})
}

// CloseAll вызывает все функции закрытия один раз; повторные вызовы возвращают nil.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		defer close(c.done)

		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		logger := c.logger
		c.mu.Unlock()

		if len(funcs) == 0 {
			logger.Info(ctx, "nothing to close")
			return
		}

		logger.Info(ctx, "🚦 closing resources...", zap.Int("count", len(funcs)))

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			nf := funcs[i]

			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", nf.name, err))
				continue
			}

			if err := safeCall(ctx, nf.fn); err != nil {
				logger.Error(ctx, "❌ failed to close", zap.String("name", nf.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", nf.name, err))
				continue
			}

			logger.Info(ctx, "✅ closed", zap.String("name", nf.name))
		}

		result = errors.Join(errs...)
	})

	return result
}

func safeCall(ctx context.Context, f func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic recovered in closer: %v", r)
		}
	}()
	return f(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}
