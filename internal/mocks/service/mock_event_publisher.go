package service

import (
	"context"

	service "indieneer/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// MockEventPublisher_Expecter builds typed expectations.
type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishJobDispatchEvent provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishJobDispatchEvent(ctx context.Context, event *service.JobDispatchEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishJobDispatchEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.JobDispatchEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_PublishJobDispatchEvent_Call is the typed expectation of PublishJobDispatchEvent.
type MockEventPublisher_PublishJobDispatchEvent_Call struct {
	*mock.Call
}

// PublishJobDispatchEvent registers an expectation; arguments may be values or mock matchers.
func (_e *MockEventPublisher_Expecter) PublishJobDispatchEvent(ctx any, event any) *MockEventPublisher_PublishJobDispatchEvent_Call {
	return &MockEventPublisher_PublishJobDispatchEvent_Call{Call: _e.mock.On("PublishJobDispatchEvent", ctx, event)}
}

func (_c *MockEventPublisher_PublishJobDispatchEvent_Call) Run(run func(ctx context.Context, event *service.JobDispatchEvent)) *MockEventPublisher_PublishJobDispatchEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.JobDispatchEvent))
	})

	return _c
}

func (_c *MockEventPublisher_PublishJobDispatchEvent_Call) Return(_a0 error) *MockEventPublisher_PublishJobDispatchEvent_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_PublishJobDispatchEvent_Call) RunAndReturn(run func(context.Context, *service.JobDispatchEvent) error) *MockEventPublisher_PublishJobDispatchEvent_Call {
	_c.Call.Return(run)

	return _c
}

// Close provides a mock function with no fields
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_Close_Call is the typed expectation of Close.
type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close registers an expectation; arguments may be values or mock matchers.
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockEventPublisher creates a mock that asserts its expectations when the test ends.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
