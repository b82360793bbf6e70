package usecase

import (
	"context"

	"indieneer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCatalogUsecase is a testify mock of usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

// MockCatalogUsecase_Expecter builds typed expectations.
type MockCatalogUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogUsecase) EXPECT() *MockCatalogUsecase_Expecter {
	return &MockCatalogUsecase_Expecter{mock: &_m.Mock}
}

// ListTags provides a mock function with given fields: ctx
func (_m *MockCatalogUsecase) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListTags")
	}

	var r0 []*entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Tag, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockCatalogUsecase_ListTags_Call is the typed expectation of ListTags.
type MockCatalogUsecase_ListTags_Call struct {
	*mock.Call
}

// ListTags registers an expectation; arguments may be values or mock matchers.
func (_e *MockCatalogUsecase_Expecter) ListTags(ctx any) *MockCatalogUsecase_ListTags_Call {
	return &MockCatalogUsecase_ListTags_Call{Call: _e.mock.On("ListTags", ctx)}
}

func (_c *MockCatalogUsecase_ListTags_Call) Run(run func(ctx context.Context)) *MockCatalogUsecase_ListTags_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockCatalogUsecase_ListTags_Call) Return(_a0 []*entity.Tag, _a1 error) *MockCatalogUsecase_ListTags_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCatalogUsecase_ListTags_Call) RunAndReturn(run func(context.Context) ([]*entity.Tag, error)) *MockCatalogUsecase_ListTags_Call {
	_c.Call.Return(run)

	return _c
}

// GetTag provides a mock function with given fields: ctx, id
func (_m *MockCatalogUsecase) GetTag(ctx context.Context, id string) (*entity.Tag, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetTag")
	}

	var r0 *entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Tag, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockCatalogUsecase_GetTag_Call is the typed expectation of GetTag.
type MockCatalogUsecase_GetTag_Call struct {
	*mock.Call
}

// GetTag registers an expectation; arguments may be values or mock matchers.
func (_e *MockCatalogUsecase_Expecter) GetTag(ctx any, id any) *MockCatalogUsecase_GetTag_Call {
	return &MockCatalogUsecase_GetTag_Call{Call: _e.mock.On("GetTag", ctx, id)}
}

func (_c *MockCatalogUsecase_GetTag_Call) Run(run func(ctx context.Context, id string)) *MockCatalogUsecase_GetTag_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockCatalogUsecase_GetTag_Call) Return(_a0 *entity.Tag, _a1 error) *MockCatalogUsecase_GetTag_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCatalogUsecase_GetTag_Call) RunAndReturn(run func(context.Context, string) (*entity.Tag, error)) *MockCatalogUsecase_GetTag_Call {
	_c.Call.Return(run)

	return _c
}

// CreateTag provides a mock function with given fields: ctx, name
func (_m *MockCatalogUsecase) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for CreateTag")
	}

	var r0 *entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Tag, error)); ok {
		return rf(ctx, name)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockCatalogUsecase_CreateTag_Call is the typed expectation of CreateTag.
type MockCatalogUsecase_CreateTag_Call struct {
	*mock.Call
}

// CreateTag registers an expectation; arguments may be values or mock matchers.
func (_e *MockCatalogUsecase_Expecter) CreateTag(ctx any, name any) *MockCatalogUsecase_CreateTag_Call {
	return &MockCatalogUsecase_CreateTag_Call{Call: _e.mock.On("CreateTag", ctx, name)}
}

func (_c *MockCatalogUsecase_CreateTag_Call) Run(run func(ctx context.Context, name string)) *MockCatalogUsecase_CreateTag_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockCatalogUsecase_CreateTag_Call) Return(_a0 *entity.Tag, _a1 error) *MockCatalogUsecase_CreateTag_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCatalogUsecase_CreateTag_Call) RunAndReturn(run func(context.Context, string) (*entity.Tag, error)) *MockCatalogUsecase_CreateTag_Call {
	_c.Call.Return(run)

	return _c
}

// UpdateTag provides a mock function with given fields: ctx, id, name
func (_m *MockCatalogUsecase) UpdateTag(ctx context.Context, id string, name string) (*entity.Tag, error) {
	ret := _m.Called(ctx, id, name)

	if len(ret) == 0 {
		panic("no return value specified for UpdateTag")
	}

	var r0 *entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*entity.Tag, error)); ok {
		return rf(ctx, id, name)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockCatalogUsecase_UpdateTag_Call is the typed expectation of UpdateTag.
type MockCatalogUsecase_UpdateTag_Call struct {
	*mock.Call
}

// UpdateTag registers an expectation; arguments may be values or mock matchers.
func (_e *MockCatalogUsecase_Expecter) UpdateTag(ctx any, id any, name any) *MockCatalogUsecase_UpdateTag_Call {
	return &MockCatalogUsecase_UpdateTag_Call{Call: _e.mock.On("UpdateTag", ctx, id, name)}
}

func (_c *MockCatalogUsecase_UpdateTag_Call) Run(run func(ctx context.Context, id string, name string)) *MockCatalogUsecase_UpdateTag_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockCatalogUsecase_UpdateTag_Call) Return(_a0 *entity.Tag, _a1 error) *MockCatalogUsecase_UpdateTag_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCatalogUsecase_UpdateTag_Call) RunAndReturn(run func(context.Context, string, string) (*entity.Tag, error)) *MockCatalogUsecase_UpdateTag_Call {
	_c.Call.Return(run)

	return _c
}

// DeleteTag provides a mock function with given fields: ctx, id
func (_m *MockCatalogUsecase) DeleteTag(ctx context.Context, id string) (*entity.Tag, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteTag")
	}

	var r0 *entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Tag, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockCatalogUsecase_DeleteTag_Call is the typed expectation of DeleteTag.
type MockCatalogUsecase_DeleteTag_Call struct {
	*mock.Call
}

// DeleteTag registers an expectation; arguments may be values or mock matchers.
func (_e *MockCatalogUsecase_Expecter) DeleteTag(ctx any, id any) *MockCatalogUsecase_DeleteTag_Call {
	return &MockCatalogUsecase_DeleteTag_Call{Call: _e.mock.On("DeleteTag", ctx, id)}
}

func (_c *MockCatalogUsecase_DeleteTag_Call) Run(run func(ctx context.Context, id string)) *MockCatalogUsecase_DeleteTag_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockCatalogUsecase_DeleteTag_Call) Return(_a0 *entity.Tag, _a1 error) *MockCatalogUsecase_DeleteTag_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCatalogUsecase_DeleteTag_Call) RunAndReturn(run func(context.Context, string) (*entity.Tag, error)) *MockCatalogUsecase_DeleteTag_Call {
	_c.Call.Return(run)

	return _c
}

// ListPlatforms provides a mock function with given fields: ctx, enabled
func (_m *MockCatalogUsecase) ListPlatforms(ctx context.Context, enabled *bool) ([]*entity.Platform, error) {
	ret := _m.Called(ctx, enabled)

	if len(ret) == 0 {
		panic("no return value specified for ListPlatforms")
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

// MockCatalogUsecase_ListPlatforms_Call is the typed expectation of ListPlatforms.
type MockCatalogUsecase_ListPlatforms_Call struct {
	*mock.Call
}

// ListPlatforms registers an expectation; arguments may be values or mock matchers.
func (_e *MockCatalogUsecase_Expecter) ListPlatforms(ctx any, enabled any) *MockCatalogUsecase_ListPlatforms_Call {
	return &MockCatalogUsecase_ListPlatforms_Call{Call: _e.mock.On("ListPlatforms", ctx, enabled)}
}

func (_c *MockCatalogUsecase_ListPlatforms_Call) Run(run func(ctx context.Context, enabled *bool)) *MockCatalogUsecase_ListPlatforms_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*bool))
	})

	return _c
}

func (_c *MockCatalogUsecase_ListPlatforms_Call) Return(_a0 []*entity.Platform, _a1 error) *MockCatalogUsecase_ListPlatforms_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCatalogUsecase_ListPlatforms_Call) RunAndReturn(run func(context.Context, *bool) ([]*entity.Platform, error)) *MockCatalogUsecase_ListPlatforms_Call {
	_c.Call.Return(run)

	return _c
}

// GetProduct provides a mock function with given fields: ctx, slug
func (_m *MockCatalogUsecase) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	ret := _m.Called(ctx, slug)

	if len(ret) == 0 {
		panic("no return value specified for GetProduct")
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

// MockCatalogUsecase_GetProduct_Call is the typed expectation of GetProduct.
type MockCatalogUsecase_GetProduct_Call struct {
	*mock.Call
}

// GetProduct registers an expectation; arguments may be values or mock matchers.
func (_e *MockCatalogUsecase_Expecter) GetProduct(ctx any, slug any) *MockCatalogUsecase_GetProduct_Call {
	return &MockCatalogUsecase_GetProduct_Call{Call: _e.mock.On("GetProduct", ctx, slug)}
}

func (_c *MockCatalogUsecase_GetProduct_Call) Run(run func(ctx context.Context, slug string)) *MockCatalogUsecase_GetProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockCatalogUsecase_GetProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockCatalogUsecase_GetProduct_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCatalogUsecase_GetProduct_Call) RunAndReturn(run func(context.Context, string) (*entity.Product, error)) *MockCatalogUsecase_GetProduct_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockCatalogUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCatalogUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogUsecase {
	m := &MockCatalogUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
