package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/consultancy-desk/notifier/internal/model"
)

type MockMessageSender struct {
	mock.Mock
}

func NewMockMessageSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageSender {
	m := &MockMessageSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMessageSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	ret := m.Called(ctx, chatID, text)
	return ret.Error(0)
}

type MockPaymentResolvedNotifier struct {
	mock.Mock
}

func NewMockPaymentResolvedNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentResolvedNotifier {
	m := &MockPaymentResolvedNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentResolvedNotifier) NotifyPaymentResolved(ctx context.Context, event model.PaymentResolved) error {
	ret := m.Called(ctx, event)
	return ret.Error(0)
}
