package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
	usecase "indieneer/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockBackgroundJobUsecase is a testify mock of usecase.BackgroundJobUsecase.
type MockBackgroundJobUsecase struct {
	mock.Mock
}

// MockBackgroundJobUsecase_Expecter builds typed expectations.
type MockBackgroundJobUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBackgroundJobUsecase) EXPECT() *MockBackgroundJobUsecase_Expecter {
	return &MockBackgroundJobUsecase_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockBackgroundJobUsecase) Get(ctx context.Context, id string) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobUsecase_Get_Call is the typed expectation of Get.
type MockBackgroundJobUsecase_Get_Call struct {
	*mock.Call
}

// Get registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobUsecase_Expecter) Get(ctx any, id any) *MockBackgroundJobUsecase_Get_Call {
	return &MockBackgroundJobUsecase_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockBackgroundJobUsecase_Get_Call) Run(run func(ctx context.Context, id string)) *MockBackgroundJobUsecase_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockBackgroundJobUsecase_Get_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobUsecase_Get_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobUsecase_Get_Call) RunAndReturn(run func(context.Context, string) (*entity.BackgroundJob, error)) *MockBackgroundJobUsecase_Get_Call {
	_c.Call.Return(run)

	return _c
}

// GetAll provides a mock function with given fields: ctx
func (_m *MockBackgroundJobUsecase) GetAll(ctx context.Context) ([]*entity.BackgroundJob, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetAll")
	}

	var r0 []*entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.BackgroundJob, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobUsecase_GetAll_Call is the typed expectation of GetAll.
type MockBackgroundJobUsecase_GetAll_Call struct {
	*mock.Call
}

// GetAll registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobUsecase_Expecter) GetAll(ctx any) *MockBackgroundJobUsecase_GetAll_Call {
	return &MockBackgroundJobUsecase_GetAll_Call{Call: _e.mock.On("GetAll", ctx)}
}

func (_c *MockBackgroundJobUsecase_GetAll_Call) Run(run func(ctx context.Context)) *MockBackgroundJobUsecase_GetAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockBackgroundJobUsecase_GetAll_Call) Return(_a0 []*entity.BackgroundJob, _a1 error) *MockBackgroundJobUsecase_GetAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobUsecase_GetAll_Call) RunAndReturn(run func(context.Context) ([]*entity.BackgroundJob, error)) *MockBackgroundJobUsecase_GetAll_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, actor, input
func (_m *MockBackgroundJobUsecase) Create(ctx context.Context, actor string, input usecase.CreateBackgroundJobInput) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, actor, input)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, usecase.CreateBackgroundJobInput) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, actor, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobUsecase_Create_Call is the typed expectation of Create.
type MockBackgroundJobUsecase_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobUsecase_Expecter) Create(ctx any, actor any, input any) *MockBackgroundJobUsecase_Create_Call {
	return &MockBackgroundJobUsecase_Create_Call{Call: _e.mock.On("Create", ctx, actor, input)}
}

func (_c *MockBackgroundJobUsecase_Create_Call) Run(run func(ctx context.Context, actor string, input usecase.CreateBackgroundJobInput)) *MockBackgroundJobUsecase_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(usecase.CreateBackgroundJobInput))
	})

	return _c
}

func (_c *MockBackgroundJobUsecase_Create_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobUsecase_Create_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobUsecase_Create_Call) RunAndReturn(run func(context.Context, string, usecase.CreateBackgroundJobInput) (*entity.BackgroundJob, error)) *MockBackgroundJobUsecase_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Patch provides a mock function with given fields: ctx, actor, id, input
func (_m *MockBackgroundJobUsecase) Patch(ctx context.Context, actor string, id string, input usecase.PatchBackgroundJobInput) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, actor, id, input)

	if len(ret) == 0 {
		panic("no return value specified for Patch")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, usecase.PatchBackgroundJobInput) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, actor, id, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobUsecase_Patch_Call is the typed expectation of Patch.
type MockBackgroundJobUsecase_Patch_Call struct {
	*mock.Call
}

// Patch registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobUsecase_Expecter) Patch(ctx any, actor any, id any, input any) *MockBackgroundJobUsecase_Patch_Call {
	return &MockBackgroundJobUsecase_Patch_Call{Call: _e.mock.On("Patch", ctx, actor, id, input)}
}

func (_c *MockBackgroundJobUsecase_Patch_Call) Run(run func(ctx context.Context, actor string, id string, input usecase.PatchBackgroundJobInput)) *MockBackgroundJobUsecase_Patch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(usecase.PatchBackgroundJobInput))
	})

	return _c
}

func (_c *MockBackgroundJobUsecase_Patch_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobUsecase_Patch_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobUsecase_Patch_Call) RunAndReturn(run func(context.Context, string, string, usecase.PatchBackgroundJobInput) (*entity.BackgroundJob, error)) *MockBackgroundJobUsecase_Patch_Call {
	_c.Call.Return(run)

	return _c
}

// AddEvent provides a mock function with given fields: ctx, actor, id, input
func (_m *MockBackgroundJobUsecase) AddEvent(ctx context.Context, actor string, id string, input usecase.AddJobEventInput) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, actor, id, input)

	if len(ret) == 0 {
		panic("no return value specified for AddEvent")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, usecase.AddJobEventInput) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, actor, id, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobUsecase_AddEvent_Call is the typed expectation of AddEvent.
type MockBackgroundJobUsecase_AddEvent_Call struct {
	*mock.Call
}

// AddEvent registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobUsecase_Expecter) AddEvent(ctx any, actor any, id any, input any) *MockBackgroundJobUsecase_AddEvent_Call {
	return &MockBackgroundJobUsecase_AddEvent_Call{Call: _e.mock.On("AddEvent", ctx, actor, id, input)}
}

func (_c *MockBackgroundJobUsecase_AddEvent_Call) Run(run func(ctx context.Context, actor string, id string, input usecase.AddJobEventInput)) *MockBackgroundJobUsecase_AddEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(usecase.AddJobEventInput))
	})

	return _c
}

func (_c *MockBackgroundJobUsecase_AddEvent_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobUsecase_AddEvent_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobUsecase_AddEvent_Call) RunAndReturn(run func(context.Context, string, string, usecase.AddJobEventInput) (*entity.BackgroundJob, error)) *MockBackgroundJobUsecase_AddEvent_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, actor, id
func (_m *MockBackgroundJobUsecase) Delete(ctx context.Context, actor string, id string) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, actor, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, actor, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobUsecase_Delete_Call is the typed expectation of Delete.
type MockBackgroundJobUsecase_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobUsecase_Expecter) Delete(ctx any, actor any, id any) *MockBackgroundJobUsecase_Delete_Call {
	return &MockBackgroundJobUsecase_Delete_Call{Call: _e.mock.On("Delete", ctx, actor, id)}
}

func (_c *MockBackgroundJobUsecase_Delete_Call) Run(run func(ctx context.Context, actor string, id string)) *MockBackgroundJobUsecase_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockBackgroundJobUsecase_Delete_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobUsecase_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobUsecase_Delete_Call) RunAndReturn(run func(context.Context, string, string) (*entity.BackgroundJob, error)) *MockBackgroundJobUsecase_Delete_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockBackgroundJobUsecase creates a mock that asserts its expectations when the test ends.
func NewMockBackgroundJobUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBackgroundJobUsecase {
	m := &MockBackgroundJobUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
