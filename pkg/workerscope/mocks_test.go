package workerscope_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/liekit/pkg/workerscope"
)

type MockEnvironment struct {
	mock.Mock
}

func (m *MockEnvironment) Capability(ctx context.Context, t workerscope.ContextType) (workerscope.Capability, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(workerscope.Capability), args.Error(1)
}

func (m *MockEnvironment) Exchange(ctx context.Context, t workerscope.ContextType, req workerscope.Request) (workerscope.Reply, error) {
	args := m.Called(ctx, t, req)
	return args.Get(0).(workerscope.Reply), args.Error(1)
}

type MockCapturer struct {
	mock.Mock
}

func (m *MockCapturer) Capture(err error, custom ...string) {
	m.Called(err, custom)
}
