package repository

import (
	"context"

	"indieneer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// MockProductRepository_Expecter builds typed expectations.
type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

// FindBySlug provides a mock function with given fields: ctx, slug
func (_m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	ret := _m.Called(ctx, slug)

	if len(ret) == 0 {
		panic("no return value specified for FindBySlug")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Product, error)); ok {
		return rf(ctx, slug)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProductRepository_FindBySlug_Call is the typed expectation of FindBySlug.
type MockProductRepository_FindBySlug_Call struct {
	*mock.Call
}

// FindBySlug registers an expectation; arguments may be values or mock matchers.
func (_e *MockProductRepository_Expecter) FindBySlug(ctx any, slug any) *MockProductRepository_FindBySlug_Call {
	return &MockProductRepository_FindBySlug_Call{Call: _e.mock.On("FindBySlug", ctx, slug)}
}

func (_c *MockProductRepository_FindBySlug_Call) Run(run func(ctx context.Context, slug string)) *MockProductRepository_FindBySlug_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockProductRepository_FindBySlug_Call) Return(_a0 *entity.Product, _a1 error) *MockProductRepository_FindBySlug_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProductRepository_FindBySlug_Call) RunAndReturn(run func(context.Context, string) (*entity.Product, error)) *MockProductRepository_FindBySlug_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockProductRepository creates a mock that asserts its expectations when the test ends.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
