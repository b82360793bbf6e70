package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPinger is a testify mock of repository.Pinger.
type MockPinger struct {
	mock.Mock
}

// MockPinger_Expecter builds typed expectations.
type MockPinger_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPinger) EXPECT() *MockPinger_Expecter {
	return &MockPinger_Expecter{mock: &_m.Mock}
}

// Ping provides a mock function with given fields: ctx
func (_m *MockPinger) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Ping")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPinger_Ping_Call is the typed expectation of Ping.
type MockPinger_Ping_Call struct {
	*mock.Call
}

// Ping registers an expectation; arguments may be values or mock matchers.
func (_e *MockPinger_Expecter) Ping(ctx any) *MockPinger_Ping_Call {
	return &MockPinger_Ping_Call{Call: _e.mock.On("Ping", ctx)}
}

func (_c *MockPinger_Ping_Call) Run(run func(ctx context.Context)) *MockPinger_Ping_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockPinger_Ping_Call) Return(_a0 error) *MockPinger_Ping_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPinger_Ping_Call) RunAndReturn(run func(context.Context) error) *MockPinger_Ping_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockPinger creates a mock that asserts its expectations when the test ends.
func NewMockPinger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPinger {
	m := &MockPinger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
