package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mw := func(name string) Middleware {
		return func(next MessageHandler) MessageHandler {
			return func(ctx context.Context, msg Message) error {
				calls = append(calls, name)
				return next(ctx, msg)
			}
		}
	}

	h := Chain(func(context.Context, Message) error {
		calls = append(calls, "handler")
		return nil
	}, mw("outer"), mw("inner"))

	require.NoError(t, h(context.Background(), Message{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestMessageHeader(t *testing.T) {
	t.Parallel()

	m := Message{Headers: map[string][]byte{"content-type": []byte("application/x-protobuf")}}
	assert.Equal(t, "application/x-protobuf", m.Header("content-type"))
	assert.Empty(t, m.Header("missing"))
}
