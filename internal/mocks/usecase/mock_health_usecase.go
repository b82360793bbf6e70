package usecase

import (
	"context"

	usecase "indieneer/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockHealthUsecase is a testify mock of usecase.HealthUsecase.
type MockHealthUsecase struct {
	mock.Mock
}

// MockHealthUsecase_Expecter builds typed expectations.
type MockHealthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHealthUsecase) EXPECT() *MockHealthUsecase_Expecter {
	return &MockHealthUsecase_Expecter{mock: &_m.Mock}
}

// Check provides a mock function with given fields: ctx
func (_m *MockHealthUsecase) Check(ctx context.Context) *usecase.HealthOutput {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Check")
	}

	var r0 *usecase.HealthOutput
	if rf, ok := ret.Get(0).(func(context.Context) *usecase.HealthOutput); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.HealthOutput)
	}

	return r0
}

// MockHealthUsecase_Check_Call is the typed expectation of Check.
type MockHealthUsecase_Check_Call struct {
	*mock.Call
}

// Check registers an expectation; arguments may be values or mock matchers.
func (_e *MockHealthUsecase_Expecter) Check(ctx any) *MockHealthUsecase_Check_Call {
	return &MockHealthUsecase_Check_Call{Call: _e.mock.On("Check", ctx)}
}

func (_c *MockHealthUsecase_Check_Call) Run(run func(ctx context.Context)) *MockHealthUsecase_Check_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockHealthUsecase_Check_Call) Return(_a0 *usecase.HealthOutput) *MockHealthUsecase_Check_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockHealthUsecase_Check_Call) RunAndReturn(run func(context.Context) *usecase.HealthOutput) *MockHealthUsecase_Check_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockHealthUsecase creates a mock that asserts its expectations when the test ends.
func NewMockHealthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthUsecase {
	m := &MockHealthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
