package usecase

import (
	"context"

	"indieneer/internal/domain/service"
	usecase "indieneer/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockLoginUsecase is a testify mock of usecase.LoginUsecase.
type MockLoginUsecase struct {
	mock.Mock
}

// MockLoginUsecase_Expecter builds typed expectations.
type MockLoginUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLoginUsecase) EXPECT() *MockLoginUsecase_Expecter {
	return &MockLoginUsecase_Expecter{mock: &_m.Mock}
}

// Login provides a mock function with given fields: ctx, email, password
func (_m *MockLoginUsecase) Login(ctx context.Context, email string, password string) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *usecase.LoginOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, email, password)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.LoginOutput)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockLoginUsecase_Login_Call is the typed expectation of Login.
type MockLoginUsecase_Login_Call struct {
	*mock.Call
}

// Login registers an expectation; arguments may be values or mock matchers.
func (_e *MockLoginUsecase_Expecter) Login(ctx any, email any, password any) *MockLoginUsecase_Login_Call {
	return &MockLoginUsecase_Login_Call{Call: _e.mock.On("Login", ctx, email, password)}
}

func (_c *MockLoginUsecase_Login_Call) Run(run func(ctx context.Context, email string, password string)) *MockLoginUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockLoginUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockLoginUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockLoginUsecase_Login_Call) RunAndReturn(run func(context.Context, string, string) (*usecase.LoginOutput, error)) *MockLoginUsecase_Login_Call {
	_c.Call.Return(run)

	return _c
}

// Refresh provides a mock function with given fields: ctx, refreshToken
func (_m *MockLoginUsecase) Refresh(ctx context.Context, refreshToken string) (*service.RefreshResult, error) {
	ret := _m.Called(ctx, refreshToken)

	if len(ret) == 0 {
		panic("no return value specified for Refresh")
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

// MockLoginUsecase_Refresh_Call is the typed expectation of Refresh.
type MockLoginUsecase_Refresh_Call struct {
	*mock.Call
}

// Refresh registers an expectation; arguments may be values or mock matchers.
func (_e *MockLoginUsecase_Expecter) Refresh(ctx any, refreshToken any) *MockLoginUsecase_Refresh_Call {
	return &MockLoginUsecase_Refresh_Call{Call: _e.mock.On("Refresh", ctx, refreshToken)}
}

func (_c *MockLoginUsecase_Refresh_Call) Run(run func(ctx context.Context, refreshToken string)) *MockLoginUsecase_Refresh_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockLoginUsecase_Refresh_Call) Return(_a0 *service.RefreshResult, _a1 error) *MockLoginUsecase_Refresh_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockLoginUsecase_Refresh_Call) RunAndReturn(run func(context.Context, string) (*service.RefreshResult, error)) *MockLoginUsecase_Refresh_Call {
	_c.Call.Return(run)

	return _c
}

// LoginM2M provides a mock function with given fields: ctx, clientID, clientSecret
func (_m *MockLoginUsecase) LoginM2M(ctx context.Context, clientID string, clientSecret string) (*service.SignInResult, error) {
	ret := _m.Called(ctx, clientID, clientSecret)

	if len(ret) == 0 {
		panic("no return value specified for LoginM2M")
	}

	var r0 *service.SignInResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*service.SignInResult, error)); ok {
		return rf(ctx, clientID, clientSecret)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SignInResult)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockLoginUsecase_LoginM2M_Call is the typed expectation of LoginM2M.
type MockLoginUsecase_LoginM2M_Call struct {
	*mock.Call
}

// LoginM2M registers an expectation; arguments may be values or mock matchers.
func (_e *MockLoginUsecase_Expecter) LoginM2M(ctx any, clientID any, clientSecret any) *MockLoginUsecase_LoginM2M_Call {
	return &MockLoginUsecase_LoginM2M_Call{Call: _e.mock.On("LoginM2M", ctx, clientID, clientSecret)}
}

func (_c *MockLoginUsecase_LoginM2M_Call) Run(run func(ctx context.Context, clientID string, clientSecret string)) *MockLoginUsecase_LoginM2M_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockLoginUsecase_LoginM2M_Call) Return(_a0 *service.SignInResult, _a1 error) *MockLoginUsecase_LoginM2M_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockLoginUsecase_LoginM2M_Call) RunAndReturn(run func(context.Context, string, string) (*service.SignInResult, error)) *MockLoginUsecase_LoginM2M_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockLoginUsecase creates a mock that asserts its expectations when the test ends.
func NewMockLoginUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLoginUsecase {
	m := &MockLoginUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
