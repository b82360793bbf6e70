package repository

import (
	"context"

	"indieneer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPlatformRepository is a testify mock of repository.PlatformRepository.
type MockPlatformRepository struct {
	mock.Mock
}

// MockPlatformRepository_Expecter builds typed expectations.
type MockPlatformRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPlatformRepository) EXPECT() *MockPlatformRepository_Expecter {
	return &MockPlatformRepository_Expecter{mock: &_m.Mock}
}

// FindAll provides a mock function with given fields: ctx, enabled
func (_m *MockPlatformRepository) FindAll(ctx context.Context, enabled *bool) ([]*entity.Platform, error) {
	ret := _m.Called(ctx, enabled)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Platform
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *bool) ([]*entity.Platform, error)); ok {
		return rf(ctx, enabled)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Platform)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockPlatformRepository_FindAll_Call is the typed expectation of FindAll.
type MockPlatformRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll registers an expectation; arguments may be values or mock matchers.
func (_e *MockPlatformRepository_Expecter) FindAll(ctx any, enabled any) *MockPlatformRepository_FindAll_Call {
	return &MockPlatformRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx, enabled)}
}

func (_c *MockPlatformRepository_FindAll_Call) Run(run func(ctx context.Context, enabled *bool)) *MockPlatformRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*bool))
	})

	return _c
}

func (_c *MockPlatformRepository_FindAll_Call) Return(_a0 []*entity.Platform, _a1 error) *MockPlatformRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPlatformRepository_FindAll_Call) RunAndReturn(run func(context.Context, *bool) ([]*entity.Platform, error)) *MockPlatformRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockPlatformRepository creates a mock that asserts its expectations when the test ends.
func NewMockPlatformRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlatformRepository {
	m := &MockPlatformRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
