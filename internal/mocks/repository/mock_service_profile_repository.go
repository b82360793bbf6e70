package repository

import (
	"context"

	"indieneer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockServiceProfileRepository is a testify mock of repository.ServiceProfileRepository.
type MockServiceProfileRepository struct {
	mock.Mock
}

// MockServiceProfileRepository_Expecter builds typed expectations.
type MockServiceProfileRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockServiceProfileRepository) EXPECT() *MockServiceProfileRepository_Expecter {
	return &MockServiceProfileRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockServiceProfileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.ServiceProfile, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.ServiceProfile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.ServiceProfile, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ServiceProfile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockServiceProfileRepository_FindByID_Call is the typed expectation of FindByID.
type MockServiceProfileRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID registers an expectation; arguments may be values or mock matchers.
func (_e *MockServiceProfileRepository_Expecter) FindByID(ctx any, id any) *MockServiceProfileRepository_FindByID_Call {
	return &MockServiceProfileRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockServiceProfileRepository_FindByID_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockServiceProfileRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockServiceProfileRepository_FindByID_Call) Return(_a0 *entity.ServiceProfile, _a1 error) *MockServiceProfileRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockServiceProfileRepository_FindByID_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.ServiceProfile, error)) *MockServiceProfileRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// FindByClientID provides a mock function with given fields: ctx, clientID
func (_m *MockServiceProfileRepository) FindByClientID(ctx context.Context, clientID string) (*entity.ServiceProfile, error) {
	ret := _m.Called(ctx, clientID)

	if len(ret) == 0 {
		panic("no return value specified for FindByClientID")
	}

	var r0 *entity.ServiceProfile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.ServiceProfile, error)); ok {
		return rf(ctx, clientID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ServiceProfile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockServiceProfileRepository_FindByClientID_Call is the typed expectation of FindByClientID.
type MockServiceProfileRepository_FindByClientID_Call struct {
	*mock.Call
}

// FindByClientID registers an expectation; arguments may be values or mock matchers.
func (_e *MockServiceProfileRepository_Expecter) FindByClientID(ctx any, clientID any) *MockServiceProfileRepository_FindByClientID_Call {
	return &MockServiceProfileRepository_FindByClientID_Call{Call: _e.mock.On("FindByClientID", ctx, clientID)}
}

func (_c *MockServiceProfileRepository_FindByClientID_Call) Run(run func(ctx context.Context, clientID string)) *MockServiceProfileRepository_FindByClientID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockServiceProfileRepository_FindByClientID_Call) Return(_a0 *entity.ServiceProfile, _a1 error) *MockServiceProfileRepository_FindByClientID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockServiceProfileRepository_FindByClientID_Call) RunAndReturn(run func(context.Context, string) (*entity.ServiceProfile, error)) *MockServiceProfileRepository_FindByClientID_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, profile
func (_m *MockServiceProfileRepository) Create(ctx context.Context, profile *entity.ServiceProfile) error {
	ret := _m.Called(ctx, profile)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.ServiceProfile) error); ok {
		r0 = rf(ctx, profile)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockServiceProfileRepository_Create_Call is the typed expectation of Create.
type MockServiceProfileRepository_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockServiceProfileRepository_Expecter) Create(ctx any, profile any) *MockServiceProfileRepository_Create_Call {
	return &MockServiceProfileRepository_Create_Call{Call: _e.mock.On("Create", ctx, profile)}
}

func (_c *MockServiceProfileRepository_Create_Call) Run(run func(ctx context.Context, profile *entity.ServiceProfile)) *MockServiceProfileRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.ServiceProfile))
	})

	return _c
}

func (_c *MockServiceProfileRepository_Create_Call) Return(_a0 error) *MockServiceProfileRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockServiceProfileRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.ServiceProfile) error) *MockServiceProfileRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockServiceProfileRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.ServiceProfile, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.ServiceProfile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.ServiceProfile, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ServiceProfile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockServiceProfileRepository_Delete_Call is the typed expectation of Delete.
type MockServiceProfileRepository_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockServiceProfileRepository_Expecter) Delete(ctx any, id any) *MockServiceProfileRepository_Delete_Call {
	return &MockServiceProfileRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockServiceProfileRepository_Delete_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockServiceProfileRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockServiceProfileRepository_Delete_Call) Return(_a0 *entity.ServiceProfile, _a1 error) *MockServiceProfileRepository_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockServiceProfileRepository_Delete_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.ServiceProfile, error)) *MockServiceProfileRepository_Delete_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockServiceProfileRepository creates a mock that asserts its expectations when the test ends.
func NewMockServiceProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockServiceProfileRepository {
	m := &MockServiceProfileRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
