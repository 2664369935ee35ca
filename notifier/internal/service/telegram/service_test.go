package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/consultancy-desk/notifier/internal/model"
	"github.com/you-humble/consultancy-desk/notifier/internal/service/mocks"
)

func event() model.PaymentResolved {
	return model.PaymentResolved{
		EventID:    uuid.New(),
		FormID:     uuid.New(),
		Service:    "consultation",
		Amount:     decimal.NewFromInt(150),
		Status:     "success",
		ResolvedAt: time.Now(),
	}
}

func TestNotifyPaymentResolved(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sends to every subscribed chat", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		sender.On("SendMessage", mock.Anything, int64(1), mock.AnythingOfType("string")).Return(nil).Once()
		sender.On("SendMessage", mock.Anything, int64(2), mock.AnythingOfType("string")).Return(nil).Once()

		svc := NewTgService(sender)
		svc.AddChatID(ctx, 1)
		svc.AddChatID(ctx, 2)
		svc.AddChatID(ctx, 2)

		require.NoError(t, svc.NotifyPaymentResolved(ctx, event()))
	})

	t.Run("no chats is not an error", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		require.NoError(t, NewTgService(sender).NotifyPaymentResolved(ctx, event()))
		sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("redelivered event is skipped after success", func(t *testing.T) {
		t.Parallel()

		sender := mocks.NewMockMessageSender(t)
		sender.On("SendMessage", mock.Anything, int64(7), mock.Anything).Return(nil).Once()

		svc := NewTgService(sender)
		svc.AddChatID(ctx, 7)

		e := event()
		require.NoError(t, svc.NotifyPaymentResolved(ctx, e))
		require.NoError(t, svc.NotifyPaymentResolved(ctx, e))
	})

	t.Run("failed delivery is retried on redelivery", func(t *testing.T) {
		t.Parallel()

		sendErr := errors.New("telegram down")
		sender := mocks.NewMockMessageSender(t)
		sender.On("SendMessage", mock.Anything, int64(7), mock.Anything).Return(sendErr).Once()
		sender.On("SendMessage", mock.Anything, int64(7), mock.Anything).Return(nil).Once()

		svc := NewTgService(sender)
		svc.AddChatID(ctx, 7)

		e := event()
		require.ErrorIs(t, svc.NotifyPaymentResolved(ctx, e), sendErr)
		require.NoError(t, svc.NotifyPaymentResolved(ctx, e))
	})

	t.Run("partial failure resends only to missed chats", func(t *testing.T) {
		t.Parallel()

		sendErr := errors.New("chat blocked")
		sender := mocks.NewMockMessageSender(t)
		sender.On("SendMessage", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
		sender.On("SendMessage", mock.Anything, int64(2), mock.Anything).Return(sendErr).Once()
		sender.On("SendMessage", mock.Anything, int64(2), mock.Anything).Return(nil).Once()

		svc := NewTgService(sender)
		svc.AddChatID(ctx, 1)
		svc.AddChatID(ctx, 2)

		e := event()
		require.ErrorIs(t, svc.NotifyPaymentResolved(ctx, e), sendErr)
		require.NoError(t, svc.NotifyPaymentResolved(ctx, e))
		require.NoError(t, svc.NotifyPaymentResolved(ctx, e))
		sender.AssertNumberOfCalls(t, "SendMessage", 3)
	})
}

func TestMarkDeliveredIsBounded(t *testing.T) {
	t.Parallel()

	svc := NewTgService(nil)
	first := uuid.New()
	svc.markDelivered(first, 1)
	svc.markDelivered(first, 2)
	require.True(t, svc.delivered(first, 2))
	for range seenLimit {
		svc.markDelivered(uuid.New(), 1)
	}

	require.False(t, svc.delivered(first, 1))
	require.Len(t, svc.seen, seenLimit)
}
