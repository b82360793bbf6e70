package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// MockTokenVerifier is a testify mock of service.TokenVerifier.
type MockTokenVerifier struct {
	mock.Mock
}

// MockTokenVerifier_Expecter builds typed expectations.
type MockTokenVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenVerifier) EXPECT() *MockTokenVerifier_Expecter {
	return &MockTokenVerifier_Expecter{mock: &_m.Mock}
}

// Verify provides a mock function with given fields: ctx, token
func (_m *MockTokenVerifier) Verify(ctx context.Context, token string) (jwt.MapClaims, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 jwt.MapClaims
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (jwt.MapClaims, error)); ok {
		return rf(ctx, token)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(jwt.MapClaims)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockTokenVerifier_Verify_Call is the typed expectation of Verify.
type MockTokenVerifier_Verify_Call struct {
	*mock.Call
}

// Verify registers an expectation; arguments may be values or mock matchers.
func (_e *MockTokenVerifier_Expecter) Verify(ctx any, token any) *MockTokenVerifier_Verify_Call {
	return &MockTokenVerifier_Verify_Call{Call: _e.mock.On("Verify", ctx, token)}
}

func (_c *MockTokenVerifier_Verify_Call) Run(run func(ctx context.Context, token string)) *MockTokenVerifier_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockTokenVerifier_Verify_Call) Return(_a0 jwt.MapClaims, _a1 error) *MockTokenVerifier_Verify_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenVerifier_Verify_Call) RunAndReturn(run func(context.Context, string) (jwt.MapClaims, error)) *MockTokenVerifier_Verify_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockTokenVerifier creates a mock that asserts its expectations when the test ends.
func NewMockTokenVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenVerifier {
	m := &MockTokenVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
