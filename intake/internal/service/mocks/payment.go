package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

type MockPaymentProcessor struct {
	mock.Mock
}

func NewMockPaymentProcessor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentProcessor {
	m := &MockPaymentProcessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentProcessor) Process(ctx context.Context, draft model.PaymentDraft) (bool, error) {
	ret := m.Called(ctx, draft)
	return ret.Bool(0), ret.Error(1)
}

type MockResolvedPublisher struct {
	mock.Mock
}

func NewMockResolvedPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResolvedPublisher {
	m := &MockResolvedPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockResolvedPublisher) PublishResolved(ctx context.Context, event model.PaymentResolved) error {
	ret := m.Called(ctx, event)
	return ret.Error(0)
}
