package service

import (
	"github.com/stretchr/testify/mock"
)

// MockClientSecretService is a testify mock of service.ClientSecretService.
type MockClientSecretService struct {
	mock.Mock
}

// MockClientSecretService_Expecter builds typed expectations.
type MockClientSecretService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClientSecretService) EXPECT() *MockClientSecretService_Expecter {
	return &MockClientSecretService_Expecter{mock: &_m.Mock}
}

// Generate provides a mock function with given fields: clientID
func (_m *MockClientSecretService) Generate(clientID string) string {
	ret := _m.Called(clientID)

	if len(ret) == 0 {
		panic("no return value specified for Generate")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(clientID)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockClientSecretService_Generate_Call is the typed expectation of Generate.
type MockClientSecretService_Generate_Call struct {
	*mock.Call
}

// Generate registers an expectation; arguments may be values or mock matchers.
func (_e *MockClientSecretService_Expecter) Generate(clientID any) *MockClientSecretService_Generate_Call {
	return &MockClientSecretService_Generate_Call{Call: _e.mock.On("Generate", clientID)}
}

func (_c *MockClientSecretService_Generate_Call) Run(run func(clientID string)) *MockClientSecretService_Generate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockClientSecretService_Generate_Call) Return(_a0 string) *MockClientSecretService_Generate_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockClientSecretService_Generate_Call) RunAndReturn(run func(string) string) *MockClientSecretService_Generate_Call {
	_c.Call.Return(run)

	return _c
}

// Verify provides a mock function with given fields: clientID, secret
func (_m *MockClientSecretService) Verify(clientID string, secret string) bool {
	ret := _m.Called(clientID, secret)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(string, string) bool); ok {
		r0 = rf(clientID, secret)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockClientSecretService_Verify_Call is the typed expectation of Verify.
type MockClientSecretService_Verify_Call struct {
	*mock.Call
}

// Verify registers an expectation; arguments may be values or mock matchers.
func (_e *MockClientSecretService_Expecter) Verify(clientID any, secret any) *MockClientSecretService_Verify_Call {
	return &MockClientSecretService_Verify_Call{Call: _e.mock.On("Verify", clientID, secret)}
}

func (_c *MockClientSecretService_Verify_Call) Run(run func(clientID string, secret string)) *MockClientSecretService_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})

	return _c
}

func (_c *MockClientSecretService_Verify_Call) Return(_a0 bool) *MockClientSecretService_Verify_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockClientSecretService_Verify_Call) RunAndReturn(run func(string, string) bool) *MockClientSecretService_Verify_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockClientSecretService creates a mock that asserts its expectations when the test ends.
func NewMockClientSecretService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClientSecretService {
	m := &MockClientSecretService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
