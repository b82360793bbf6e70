package repository

import (
	repository "indieneer/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// MockRepositoryFactory_Expecter builds typed expectations.
type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// ProfileRepo provides a mock function with no fields
func (_m *MockRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ProfileRepo")
	}

	var r0 repository.ProfileRepository
	if rf, ok := ret.Get(0).(func() repository.ProfileRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.ProfileRepository)
	}

	return r0
}

// MockRepositoryFactory_ProfileRepo_Call is the typed expectation of ProfileRepo.
type MockRepositoryFactory_ProfileRepo_Call struct {
	*mock.Call
}

// ProfileRepo registers an expectation; arguments may be values or mock matchers.
func (_e *MockRepositoryFactory_Expecter) ProfileRepo() *MockRepositoryFactory_ProfileRepo_Call {
	return &MockRepositoryFactory_ProfileRepo_Call{Call: _e.mock.On("ProfileRepo")}
}

func (_c *MockRepositoryFactory_ProfileRepo_Call) Run(run func()) *MockRepositoryFactory_ProfileRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_ProfileRepo_Call) Return(_a0 repository.ProfileRepository) *MockRepositoryFactory_ProfileRepo_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_ProfileRepo_Call) RunAndReturn(run func() repository.ProfileRepository) *MockRepositoryFactory_ProfileRepo_Call {
	_c.Call.Return(run)

	return _c
}

// FeaturedItemRepo provides a mock function with no fields
func (_m *MockRepositoryFactory) FeaturedItemRepo() repository.FeaturedItemRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for FeaturedItemRepo")
	}

	var r0 repository.FeaturedItemRepository
	if rf, ok := ret.Get(0).(func() repository.FeaturedItemRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.FeaturedItemRepository)
	}

	return r0
}

// MockRepositoryFactory_FeaturedItemRepo_Call is the typed expectation of FeaturedItemRepo.
type MockRepositoryFactory_FeaturedItemRepo_Call struct {
	*mock.Call
}

// FeaturedItemRepo registers an expectation; arguments may be values or mock matchers.
func (_e *MockRepositoryFactory_Expecter) FeaturedItemRepo() *MockRepositoryFactory_FeaturedItemRepo_Call {
	return &MockRepositoryFactory_FeaturedItemRepo_Call{Call: _e.mock.On("FeaturedItemRepo")}
}

func (_c *MockRepositoryFactory_FeaturedItemRepo_Call) Run(run func()) *MockRepositoryFactory_FeaturedItemRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockRepositoryFactory_FeaturedItemRepo_Call) Return(_a0 repository.FeaturedItemRepository) *MockRepositoryFactory_FeaturedItemRepo_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRepositoryFactory_FeaturedItemRepo_Call) RunAndReturn(run func() repository.FeaturedItemRepository) *MockRepositoryFactory_FeaturedItemRepo_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockRepositoryFactory creates a mock that asserts its expectations when the test ends.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
