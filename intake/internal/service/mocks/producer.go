package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProducer stands in for platform/kafka.Producer.
type MockProducer struct {
	mock.Mock
}

func NewMockProducer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProducer {
	m := &MockProducer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProducer) Send(ctx context.Context, key, value []byte) error {
	ret := m.Called(ctx, key, value)
	return ret.Error(0)
}
