package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
	usecase "indieneer/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockFeaturedListUsecase is a testify mock of usecase.FeaturedListUsecase.
type MockFeaturedListUsecase struct {
	mock.Mock
}

// MockFeaturedListUsecase_Expecter builds typed expectations.
type MockFeaturedListUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFeaturedListUsecase) EXPECT() *MockFeaturedListUsecase_Expecter {
	return &MockFeaturedListUsecase_Expecter{mock: &_m.Mock}
}

// GetAll provides a mock function with given fields: ctx
func (_m *MockFeaturedListUsecase) GetAll(ctx context.Context) ([]*entity.FeaturedItem, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetAll")
	}

	var r0 []*entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.FeaturedItem, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedListUsecase_GetAll_Call is the typed expectation of GetAll.
type MockFeaturedListUsecase_GetAll_Call struct {
	*mock.Call
}

// GetAll registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedListUsecase_Expecter) GetAll(ctx any) *MockFeaturedListUsecase_GetAll_Call {
	return &MockFeaturedListUsecase_GetAll_Call{Call: _e.mock.On("GetAll", ctx)}
}

func (_c *MockFeaturedListUsecase_GetAll_Call) Run(run func(ctx context.Context)) *MockFeaturedListUsecase_GetAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockFeaturedListUsecase_GetAll_Call) Return(_a0 []*entity.FeaturedItem, _a1 error) *MockFeaturedListUsecase_GetAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedListUsecase_GetAll_Call) RunAndReturn(run func(context.Context) ([]*entity.FeaturedItem, error)) *MockFeaturedListUsecase_GetAll_Call {
	_c.Call.Return(run)

	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockFeaturedListUsecase) Get(ctx context.Context, id string) (*entity.FeaturedItem, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.FeaturedItem, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedListUsecase_Get_Call is the typed expectation of Get.
type MockFeaturedListUsecase_Get_Call struct {
	*mock.Call
}

// Get registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedListUsecase_Expecter) Get(ctx any, id any) *MockFeaturedListUsecase_Get_Call {
	return &MockFeaturedListUsecase_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockFeaturedListUsecase_Get_Call) Run(run func(ctx context.Context, id string)) *MockFeaturedListUsecase_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockFeaturedListUsecase_Get_Call) Return(_a0 *entity.FeaturedItem, _a1 error) *MockFeaturedListUsecase_Get_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedListUsecase_Get_Call) RunAndReturn(run func(context.Context, string) (*entity.FeaturedItem, error)) *MockFeaturedListUsecase_Get_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, input
func (_m *MockFeaturedListUsecase) Create(ctx context.Context, input usecase.CreateFeaturedItemInput) (*entity.FeaturedItem, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.CreateFeaturedItemInput) (*entity.FeaturedItem, error)); ok {
		return rf(ctx, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedListUsecase_Create_Call is the typed expectation of Create.
type MockFeaturedListUsecase_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedListUsecase_Expecter) Create(ctx any, input any) *MockFeaturedListUsecase_Create_Call {
	return &MockFeaturedListUsecase_Create_Call{Call: _e.mock.On("Create", ctx, input)}
}

func (_c *MockFeaturedListUsecase_Create_Call) Run(run func(ctx context.Context, input usecase.CreateFeaturedItemInput)) *MockFeaturedListUsecase_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.CreateFeaturedItemInput))
	})

	return _c
}

func (_c *MockFeaturedListUsecase_Create_Call) Return(_a0 *entity.FeaturedItem, _a1 error) *MockFeaturedListUsecase_Create_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedListUsecase_Create_Call) RunAndReturn(run func(context.Context, usecase.CreateFeaturedItemInput) (*entity.FeaturedItem, error)) *MockFeaturedListUsecase_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Patch provides a mock function with given fields: ctx, id, input
func (_m *MockFeaturedListUsecase) Patch(ctx context.Context, id string, input usecase.PatchFeaturedItemInput) (*entity.FeaturedItem, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for Patch")
	}

	var r0 *entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, usecase.PatchFeaturedItemInput) (*entity.FeaturedItem, error)); ok {
		return rf(ctx, id, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedListUsecase_Patch_Call is the typed expectation of Patch.
type MockFeaturedListUsecase_Patch_Call struct {
	*mock.Call
}

// Patch registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedListUsecase_Expecter) Patch(ctx any, id any, input any) *MockFeaturedListUsecase_Patch_Call {
	return &MockFeaturedListUsecase_Patch_Call{Call: _e.mock.On("Patch", ctx, id, input)}
}

func (_c *MockFeaturedListUsecase_Patch_Call) Run(run func(ctx context.Context, id string, input usecase.PatchFeaturedItemInput)) *MockFeaturedListUsecase_Patch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(usecase.PatchFeaturedItemInput))
	})

	return _c
}

func (_c *MockFeaturedListUsecase_Patch_Call) Return(_a0 *entity.FeaturedItem, _a1 error) *MockFeaturedListUsecase_Patch_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedListUsecase_Patch_Call) RunAndReturn(run func(context.Context, string, usecase.PatchFeaturedItemInput) (*entity.FeaturedItem, error)) *MockFeaturedListUsecase_Patch_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockFeaturedListUsecase) Delete(ctx context.Context, id string) (*entity.FeaturedItem, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.FeaturedItem, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedListUsecase_Delete_Call is the typed expectation of Delete.
type MockFeaturedListUsecase_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedListUsecase_Expecter) Delete(ctx any, id any) *MockFeaturedListUsecase_Delete_Call {
	return &MockFeaturedListUsecase_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockFeaturedListUsecase_Delete_Call) Run(run func(ctx context.Context, id string)) *MockFeaturedListUsecase_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockFeaturedListUsecase_Delete_Call) Return(_a0 *entity.FeaturedItem, _a1 error) *MockFeaturedListUsecase_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedListUsecase_Delete_Call) RunAndReturn(run func(context.Context, string) (*entity.FeaturedItem, error)) *MockFeaturedListUsecase_Delete_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockFeaturedListUsecase creates a mock that asserts its expectations when the test ends.
func NewMockFeaturedListUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeaturedListUsecase {
	m := &MockFeaturedListUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
