package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

type MockMailSender struct {
	mock.Mock
}

func NewMockMailSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailSender {
	m := &MockMailSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMailSender) Send(ctx context.Context, msg model.MailMessage) error {
	ret := m.Called(ctx, msg)
	return ret.Error(0)
}
