package service

import (
	"context"

	service "indieneer/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider is a testify mock of service.IdentityProvider.
type MockIdentityProvider struct {
	mock.Mock
}

// MockIdentityProvider_Expecter builds typed expectations.
type MockIdentityProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityProvider) EXPECT() *MockIdentityProvider_Expecter {
	return &MockIdentityProvider_Expecter{mock: &_m.Mock}
}

// SignIn provides a mock function with given fields: ctx, email, password
func (_m *MockIdentityProvider) SignIn(ctx context.Context, email string, password string) (*service.SignInResult, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for SignIn")
	}

	var r0 *service.SignInResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*service.SignInResult, error)); ok {
		return rf(ctx, email, password)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SignInResult)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockIdentityProvider_SignIn_Call is the typed expectation of SignIn.
type MockIdentityProvider_SignIn_Call struct {
	*mock.Call
}

// SignIn registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) SignIn(ctx any, email any, password any) *MockIdentityProvider_SignIn_Call {
	return &MockIdentityProvider_SignIn_Call{Call: _e.mock.On("SignIn", ctx, email, password)}
}

func (_c *MockIdentityProvider_SignIn_Call) Run(run func(ctx context.Context, email string, password string)) *MockIdentityProvider_SignIn_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockIdentityProvider_SignIn_Call) Return(_a0 *service.SignInResult, _a1 error) *MockIdentityProvider_SignIn_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityProvider_SignIn_Call) RunAndReturn(run func(context.Context, string, string) (*service.SignInResult, error)) *MockIdentityProvider_SignIn_Call {
	_c.Call.Return(run)

	return _c
}

// ExchangeRefreshToken provides a mock function with given fields: ctx, refreshToken
func (_m *MockIdentityProvider) ExchangeRefreshToken(ctx context.Context, refreshToken string) (*service.RefreshResult, error) {
	ret := _m.Called(ctx, refreshToken)

	if len(ret) == 0 {
		panic("no return value specified for ExchangeRefreshToken")
	}

	var r0 *service.RefreshResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.RefreshResult, error)); ok {
		return rf(ctx, refreshToken)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.RefreshResult)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockIdentityProvider_ExchangeRefreshToken_Call is the typed expectation of ExchangeRefreshToken.
type MockIdentityProvider_ExchangeRefreshToken_Call struct {
	*mock.Call
}

// ExchangeRefreshToken registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) ExchangeRefreshToken(ctx any, refreshToken any) *MockIdentityProvider_ExchangeRefreshToken_Call {
	return &MockIdentityProvider_ExchangeRefreshToken_Call{Call: _e.mock.On("ExchangeRefreshToken", ctx, refreshToken)}
}

func (_c *MockIdentityProvider_ExchangeRefreshToken_Call) Run(run func(ctx context.Context, refreshToken string)) *MockIdentityProvider_ExchangeRefreshToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockIdentityProvider_ExchangeRefreshToken_Call) Return(_a0 *service.RefreshResult, _a1 error) *MockIdentityProvider_ExchangeRefreshToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityProvider_ExchangeRefreshToken_Call) RunAndReturn(run func(context.Context, string) (*service.RefreshResult, error)) *MockIdentityProvider_ExchangeRefreshToken_Call {
	_c.Call.Return(run)

	return _c
}

// SignInWithCustomToken provides a mock function with given fields: ctx, customToken
func (_m *MockIdentityProvider) SignInWithCustomToken(ctx context.Context, customToken string) (*service.SignInResult, error) {
	ret := _m.Called(ctx, customToken)

	if len(ret) == 0 {
		panic("no return value specified for SignInWithCustomToken")
	}

	var r0 *service.SignInResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.SignInResult, error)); ok {
		return rf(ctx, customToken)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SignInResult)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockIdentityProvider_SignInWithCustomToken_Call is the typed expectation of SignInWithCustomToken.
type MockIdentityProvider_SignInWithCustomToken_Call struct {
	*mock.Call
}

// SignInWithCustomToken registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) SignInWithCustomToken(ctx any, customToken any) *MockIdentityProvider_SignInWithCustomToken_Call {
	return &MockIdentityProvider_SignInWithCustomToken_Call{Call: _e.mock.On("SignInWithCustomToken", ctx, customToken)}
}

func (_c *MockIdentityProvider_SignInWithCustomToken_Call) Run(run func(ctx context.Context, customToken string)) *MockIdentityProvider_SignInWithCustomToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockIdentityProvider_SignInWithCustomToken_Call) Return(_a0 *service.SignInResult, _a1 error) *MockIdentityProvider_SignInWithCustomToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityProvider_SignInWithCustomToken_Call) RunAndReturn(run func(context.Context, string) (*service.SignInResult, error)) *MockIdentityProvider_SignInWithCustomToken_Call {
	_c.Call.Return(run)

	return _c
}

// CreateUser provides a mock function with given fields: ctx, params
func (_m *MockIdentityProvider) CreateUser(ctx context.Context, params service.CreateUserParams) (*service.IdPUser, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for CreateUser")
	}

	var r0 *service.IdPUser
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, service.CreateUserParams) (*service.IdPUser, error)); ok {
		return rf(ctx, params)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.IdPUser)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockIdentityProvider_CreateUser_Call is the typed expectation of CreateUser.
type MockIdentityProvider_CreateUser_Call struct {
	*mock.Call
}

// CreateUser registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) CreateUser(ctx any, params any) *MockIdentityProvider_CreateUser_Call {
	return &MockIdentityProvider_CreateUser_Call{Call: _e.mock.On("CreateUser", ctx, params)}
}

func (_c *MockIdentityProvider_CreateUser_Call) Run(run func(ctx context.Context, params service.CreateUserParams)) *MockIdentityProvider_CreateUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(service.CreateUserParams))
	})

	return _c
}

func (_c *MockIdentityProvider_CreateUser_Call) Return(_a0 *service.IdPUser, _a1 error) *MockIdentityProvider_CreateUser_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityProvider_CreateUser_Call) RunAndReturn(run func(context.Context, service.CreateUserParams) (*service.IdPUser, error)) *MockIdentityProvider_CreateUser_Call {
	_c.Call.Return(run)

	return _c
}

// GetUser provides a mock function with given fields: ctx, uid
func (_m *MockIdentityProvider) GetUser(ctx context.Context, uid string) (*service.IdPUser, error) {
	ret := _m.Called(ctx, uid)

	if len(ret) == 0 {
		panic("no return value specified for GetUser")
	}

	var r0 *service.IdPUser
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.IdPUser, error)); ok {
		return rf(ctx, uid)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.IdPUser)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockIdentityProvider_GetUser_Call is the typed expectation of GetUser.
type MockIdentityProvider_GetUser_Call struct {
	*mock.Call
}

// GetUser registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) GetUser(ctx any, uid any) *MockIdentityProvider_GetUser_Call {
	return &MockIdentityProvider_GetUser_Call{Call: _e.mock.On("GetUser", ctx, uid)}
}

func (_c *MockIdentityProvider_GetUser_Call) Run(run func(ctx context.Context, uid string)) *MockIdentityProvider_GetUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockIdentityProvider_GetUser_Call) Return(_a0 *service.IdPUser, _a1 error) *MockIdentityProvider_GetUser_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityProvider_GetUser_Call) RunAndReturn(run func(context.Context, string) (*service.IdPUser, error)) *MockIdentityProvider_GetUser_Call {
	_c.Call.Return(run)

	return _c
}

// GetUserByEmail provides a mock function with given fields: ctx, email
func (_m *MockIdentityProvider) GetUserByEmail(ctx context.Context, email string) (*service.IdPUser, error) {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for GetUserByEmail")
	}

	var r0 *service.IdPUser
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*service.IdPUser, error)); ok {
		return rf(ctx, email)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.IdPUser)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockIdentityProvider_GetUserByEmail_Call is the typed expectation of GetUserByEmail.
type MockIdentityProvider_GetUserByEmail_Call struct {
	*mock.Call
}

// GetUserByEmail registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) GetUserByEmail(ctx any, email any) *MockIdentityProvider_GetUserByEmail_Call {
	return &MockIdentityProvider_GetUserByEmail_Call{Call: _e.mock.On("GetUserByEmail", ctx, email)}
}

func (_c *MockIdentityProvider_GetUserByEmail_Call) Run(run func(ctx context.Context, email string)) *MockIdentityProvider_GetUserByEmail_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockIdentityProvider_GetUserByEmail_Call) Return(_a0 *service.IdPUser, _a1 error) *MockIdentityProvider_GetUserByEmail_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityProvider_GetUserByEmail_Call) RunAndReturn(run func(context.Context, string) (*service.IdPUser, error)) *MockIdentityProvider_GetUserByEmail_Call {
	_c.Call.Return(run)

	return _c
}

// DeleteUser provides a mock function with given fields: ctx, uid
func (_m *MockIdentityProvider) DeleteUser(ctx context.Context, uid string) error {
	ret := _m.Called(ctx, uid)

	if len(ret) == 0 {
		panic("no return value specified for DeleteUser")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, uid)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockIdentityProvider_DeleteUser_Call is the typed expectation of DeleteUser.
type MockIdentityProvider_DeleteUser_Call struct {
	*mock.Call
}

// DeleteUser registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) DeleteUser(ctx any, uid any) *MockIdentityProvider_DeleteUser_Call {
	return &MockIdentityProvider_DeleteUser_Call{Call: _e.mock.On("DeleteUser", ctx, uid)}
}

func (_c *MockIdentityProvider_DeleteUser_Call) Run(run func(ctx context.Context, uid string)) *MockIdentityProvider_DeleteUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockIdentityProvider_DeleteUser_Call) Return(_a0 error) *MockIdentityProvider_DeleteUser_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockIdentityProvider_DeleteUser_Call) RunAndReturn(run func(context.Context, string) error) *MockIdentityProvider_DeleteUser_Call {
	_c.Call.Return(run)

	return _c
}

// SetCustomUserClaims provides a mock function with given fields: ctx, uid, claims
func (_m *MockIdentityProvider) SetCustomUserClaims(ctx context.Context, uid string, claims map[string]any) error {
	ret := _m.Called(ctx, uid, claims)

	if len(ret) == 0 {
		panic("no return value specified for SetCustomUserClaims")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, map[string]any) error); ok {
		r0 = rf(ctx, uid, claims)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockIdentityProvider_SetCustomUserClaims_Call is the typed expectation of SetCustomUserClaims.
type MockIdentityProvider_SetCustomUserClaims_Call struct {
	*mock.Call
}

// SetCustomUserClaims registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) SetCustomUserClaims(ctx any, uid any, claims any) *MockIdentityProvider_SetCustomUserClaims_Call {
	return &MockIdentityProvider_SetCustomUserClaims_Call{Call: _e.mock.On("SetCustomUserClaims", ctx, uid, claims)}
}

func (_c *MockIdentityProvider_SetCustomUserClaims_Call) Run(run func(ctx context.Context, uid string, claims map[string]any)) *MockIdentityProvider_SetCustomUserClaims_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(map[string]any))
	})

	return _c
}

func (_c *MockIdentityProvider_SetCustomUserClaims_Call) Return(_a0 error) *MockIdentityProvider_SetCustomUserClaims_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockIdentityProvider_SetCustomUserClaims_Call) RunAndReturn(run func(context.Context, string, map[string]any) error) *MockIdentityProvider_SetCustomUserClaims_Call {
	_c.Call.Return(run)

	return _c
}

// CustomToken provides a mock function with given fields: ctx, uid, claims
func (_m *MockIdentityProvider) CustomToken(ctx context.Context, uid string, claims map[string]any) (string, error) {
	ret := _m.Called(ctx, uid, claims)

	if len(ret) == 0 {
		panic("no return value specified for CustomToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, map[string]any) (string, error)); ok {
		return rf(ctx, uid, claims)
	}
	r0 = ret.Get(0).(string)

	r1 = ret.Error(1)

	return r0, r1
}

// MockIdentityProvider_CustomToken_Call is the typed expectation of CustomToken.
type MockIdentityProvider_CustomToken_Call struct {
	*mock.Call
}

// CustomToken registers an expectation; arguments may be values or mock matchers.
func (_e *MockIdentityProvider_Expecter) CustomToken(ctx any, uid any, claims any) *MockIdentityProvider_CustomToken_Call {
	return &MockIdentityProvider_CustomToken_Call{Call: _e.mock.On("CustomToken", ctx, uid, claims)}
}

func (_c *MockIdentityProvider_CustomToken_Call) Run(run func(ctx context.Context, uid string, claims map[string]any)) *MockIdentityProvider_CustomToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(map[string]any))
	})

	return _c
}

func (_c *MockIdentityProvider_CustomToken_Call) Return(_a0 string, _a1 error) *MockIdentityProvider_CustomToken_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockIdentityProvider_CustomToken_Call) RunAndReturn(run func(context.Context, string, map[string]any) (string, error)) *MockIdentityProvider_CustomToken_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockIdentityProvider creates a mock that asserts its expectations when the test ends.
func NewMockIdentityProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityProvider {
	m := &MockIdentityProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
