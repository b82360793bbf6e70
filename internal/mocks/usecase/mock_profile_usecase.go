package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
	usecase "indieneer/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockProfileUsecase is a testify mock of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

// MockProfileUsecase_Expecter builds typed expectations.
type MockProfileUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileUsecase) EXPECT() *MockProfileUsecase_Expecter {
	return &MockProfileUsecase_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, input
func (_m *MockProfileUsecase) Create(ctx context.Context, input usecase.CreateProfileInput) (*entity.Profile, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.CreateProfileInput) (*entity.Profile, error)); ok {
		return rf(ctx, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_Create_Call is the typed expectation of Create.
type MockProfileUsecase_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) Create(ctx any, input any) *MockProfileUsecase_Create_Call {
	return &MockProfileUsecase_Create_Call{Call: _e.mock.On("Create", ctx, input)}
}

func (_c *MockProfileUsecase_Create_Call) Run(run func(ctx context.Context, input usecase.CreateProfileInput)) *MockProfileUsecase_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.CreateProfileInput))
	})

	return _c
}

func (_c *MockProfileUsecase_Create_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_Create_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_Create_Call) RunAndReturn(run func(context.Context, usecase.CreateProfileInput) (*entity.Profile, error)) *MockProfileUsecase_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockProfileUsecase) Get(ctx context.Context, id string) (*entity.Profile, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Profile, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_Get_Call is the typed expectation of Get.
type MockProfileUsecase_Get_Call struct {
	*mock.Call
}

// Get registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) Get(ctx any, id any) *MockProfileUsecase_Get_Call {
	return &MockProfileUsecase_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockProfileUsecase_Get_Call) Run(run func(ctx context.Context, id string)) *MockProfileUsecase_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockProfileUsecase_Get_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_Get_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_Get_Call) RunAndReturn(run func(context.Context, string) (*entity.Profile, error)) *MockProfileUsecase_Get_Call {
	_c.Call.Return(run)

	return _c
}

// FindByEmail provides a mock function with given fields: ctx, email
func (_m *MockProfileUsecase) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for FindByEmail")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Profile, error)); ok {
		return rf(ctx, email)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_FindByEmail_Call is the typed expectation of FindByEmail.
type MockProfileUsecase_FindByEmail_Call struct {
	*mock.Call
}

// FindByEmail registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) FindByEmail(ctx any, email any) *MockProfileUsecase_FindByEmail_Call {
	return &MockProfileUsecase_FindByEmail_Call{Call: _e.mock.On("FindByEmail", ctx, email)}
}

func (_c *MockProfileUsecase_FindByEmail_Call) Run(run func(ctx context.Context, email string)) *MockProfileUsecase_FindByEmail_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockProfileUsecase_FindByEmail_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_FindByEmail_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_FindByEmail_Call) RunAndReturn(run func(context.Context, string) (*entity.Profile, error)) *MockProfileUsecase_FindByEmail_Call {
	_c.Call.Return(run)

	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockProfileUsecase) List(ctx context.Context) ([]*entity.Profile, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Profile, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_List_Call is the typed expectation of List.
type MockProfileUsecase_List_Call struct {
	*mock.Call
}

// List registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) List(ctx any) *MockProfileUsecase_List_Call {
	return &MockProfileUsecase_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockProfileUsecase_List_Call) Run(run func(ctx context.Context)) *MockProfileUsecase_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockProfileUsecase_List_Call) Return(_a0 []*entity.Profile, _a1 error) *MockProfileUsecase_List_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_List_Call) RunAndReturn(run func(context.Context) ([]*entity.Profile, error)) *MockProfileUsecase_List_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function with given fields: ctx, id, input
func (_m *MockProfileUsecase) Update(ctx context.Context, id string, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, usecase.UpdateProfileInput) (*entity.Profile, error)); ok {
		return rf(ctx, id, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_Update_Call is the typed expectation of Update.
type MockProfileUsecase_Update_Call struct {
	*mock.Call
}

// Update registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) Update(ctx any, id any, input any) *MockProfileUsecase_Update_Call {
	return &MockProfileUsecase_Update_Call{Call: _e.mock.On("Update", ctx, id, input)}
}

func (_c *MockProfileUsecase_Update_Call) Run(run func(ctx context.Context, id string, input usecase.UpdateProfileInput)) *MockProfileUsecase_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(usecase.UpdateProfileInput))
	})

	return _c
}

func (_c *MockProfileUsecase_Update_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_Update_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_Update_Call) RunAndReturn(run func(context.Context, string, usecase.UpdateProfileInput) (*entity.Profile, error)) *MockProfileUsecase_Update_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProfileUsecase) Delete(ctx context.Context, id string) (*entity.Profile, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Profile, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_Delete_Call is the typed expectation of Delete.
type MockProfileUsecase_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) Delete(ctx any, id any) *MockProfileUsecase_Delete_Call {
	return &MockProfileUsecase_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockProfileUsecase_Delete_Call) Run(run func(ctx context.Context, id string)) *MockProfileUsecase_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockProfileUsecase_Delete_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_Delete_Call) RunAndReturn(run func(context.Context, string) (*entity.Profile, error)) *MockProfileUsecase_Delete_Call {
	_c.Call.Return(run)

	return _c
}

// SetRoles provides a mock function with given fields: ctx, id, roles
func (_m *MockProfileUsecase) SetRoles(ctx context.Context, id string, roles entity.Roles) (*entity.Profile, error) {
	ret := _m.Called(ctx, id, roles)

	if len(ret) == 0 {
		panic("no return value specified for SetRoles")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.Roles) (*entity.Profile, error)); ok {
		return rf(ctx, id, roles)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_SetRoles_Call is the typed expectation of SetRoles.
type MockProfileUsecase_SetRoles_Call struct {
	*mock.Call
}

// SetRoles registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) SetRoles(ctx any, id any, roles any) *MockProfileUsecase_SetRoles_Call {
	return &MockProfileUsecase_SetRoles_Call{Call: _e.mock.On("SetRoles", ctx, id, roles)}
}

func (_c *MockProfileUsecase_SetRoles_Call) Run(run func(ctx context.Context, id string, roles entity.Roles)) *MockProfileUsecase_SetRoles_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.Roles))
	})

	return _c
}

func (_c *MockProfileUsecase_SetRoles_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_SetRoles_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_SetRoles_Call) RunAndReturn(run func(context.Context, string, entity.Roles) (*entity.Profile, error)) *MockProfileUsecase_SetRoles_Call {
	_c.Call.Return(run)

	return _c
}

// CreateServiceProfile provides a mock function with given fields: ctx, input
func (_m *MockProfileUsecase) CreateServiceProfile(ctx context.Context, input usecase.CreateServiceProfileInput) (*usecase.ServiceProfileOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateServiceProfile")
	}

	var r0 *usecase.ServiceProfileOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.CreateServiceProfileInput) (*usecase.ServiceProfileOutput, error)); ok {
		return rf(ctx, input)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ServiceProfileOutput)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_CreateServiceProfile_Call is the typed expectation of CreateServiceProfile.
type MockProfileUsecase_CreateServiceProfile_Call struct {
	*mock.Call
}

// CreateServiceProfile registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileUsecase_Expecter) CreateServiceProfile(ctx any, input any) *MockProfileUsecase_CreateServiceProfile_Call {
	return &MockProfileUsecase_CreateServiceProfile_Call{Call: _e.mock.On("CreateServiceProfile", ctx, input)}
}

func (_c *MockProfileUsecase_CreateServiceProfile_Call) Run(run func(ctx context.Context, input usecase.CreateServiceProfileInput)) *MockProfileUsecase_CreateServiceProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.CreateServiceProfileInput))
	})

	return _c
}

func (_c *MockProfileUsecase_CreateServiceProfile_Call) Return(_a0 *usecase.ServiceProfileOutput, _a1 error) *MockProfileUsecase_CreateServiceProfile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_CreateServiceProfile_Call) RunAndReturn(run func(context.Context, usecase.CreateServiceProfileInput) (*usecase.ServiceProfileOutput, error)) *MockProfileUsecase_CreateServiceProfile_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockProfileUsecase creates a mock that asserts its expectations when the test ends.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
