package repository

import (
	"context"

	"indieneer/internal/domain/entity"
	repository "indieneer/internal/domain/repository"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProfileRepository is a testify mock of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// MockProfileRepository_Expecter builds typed expectations.
type MockProfileRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileRepository) EXPECT() *MockProfileRepository_Expecter {
	return &MockProfileRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockProfileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.Profile, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileRepository_FindByID_Call is the typed expectation of FindByID.
type MockProfileRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileRepository_Expecter) FindByID(ctx any, id any) *MockProfileRepository_FindByID_Call {
	return &MockProfileRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockProfileRepository_FindByID_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockProfileRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockProfileRepository_FindByID_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileRepository_FindByID_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.Profile, error)) *MockProfileRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// FindByEmail provides a mock function with given fields: ctx, email
func (_m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
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

// MockProfileRepository_FindByEmail_Call is the typed expectation of FindByEmail.
type MockProfileRepository_FindByEmail_Call struct {
	*mock.Call
}

// FindByEmail registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileRepository_Expecter) FindByEmail(ctx any, email any) *MockProfileRepository_FindByEmail_Call {
	return &MockProfileRepository_FindByEmail_Call{Call: _e.mock.On("FindByEmail", ctx, email)}
}

func (_c *MockProfileRepository_FindByEmail_Call) Run(run func(ctx context.Context, email string)) *MockProfileRepository_FindByEmail_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockProfileRepository_FindByEmail_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileRepository_FindByEmail_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileRepository_FindByEmail_Call) RunAndReturn(run func(context.Context, string) (*entity.Profile, error)) *MockProfileRepository_FindByEmail_Call {
	_c.Call.Return(run)

	return _c
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockProfileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
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

// MockProfileRepository_FindAll_Call is the typed expectation of FindAll.
type MockProfileRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileRepository_Expecter) FindAll(ctx any) *MockProfileRepository_FindAll_Call {
	return &MockProfileRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockProfileRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockProfileRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockProfileRepository_FindAll_Call) Return(_a0 []*entity.Profile, _a1 error) *MockProfileRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Profile, error)) *MockProfileRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, profile
func (_m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	ret := _m.Called(ctx, profile)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Profile) error); ok {
		r0 = rf(ctx, profile)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProfileRepository_Create_Call is the typed expectation of Create.
type MockProfileRepository_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileRepository_Expecter) Create(ctx any, profile any) *MockProfileRepository_Create_Call {
	return &MockProfileRepository_Create_Call{Call: _e.mock.On("Create", ctx, profile)}
}

func (_c *MockProfileRepository_Create_Call) Run(run func(ctx context.Context, profile *entity.Profile)) *MockProfileRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Profile))
	})

	return _c
}

func (_c *MockProfileRepository_Create_Call) Return(_a0 error) *MockProfileRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockProfileRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Profile) error) *MockProfileRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function with given fields: ctx, id, update
func (_m *MockProfileRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.ProfileUpdate) (*entity.Profile, error) {
	ret := _m.Called(ctx, id, update)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, repository.ProfileUpdate) (*entity.Profile, error)); ok {
		return rf(ctx, id, update)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileRepository_Update_Call is the typed expectation of Update.
type MockProfileRepository_Update_Call struct {
	*mock.Call
}

// Update registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileRepository_Expecter) Update(ctx any, id any, update any) *MockProfileRepository_Update_Call {
	return &MockProfileRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, update)}
}

func (_c *MockProfileRepository_Update_Call) Run(run func(ctx context.Context, id primitive.ObjectID, update repository.ProfileUpdate)) *MockProfileRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID), args[2].(repository.ProfileUpdate))
	})

	return _c
}

func (_c *MockProfileRepository_Update_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileRepository_Update_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileRepository_Update_Call) RunAndReturn(run func(context.Context, primitive.ObjectID, repository.ProfileUpdate) (*entity.Profile, error)) *MockProfileRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProfileRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.Profile, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Profile)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileRepository_Delete_Call is the typed expectation of Delete.
type MockProfileRepository_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockProfileRepository_Expecter) Delete(ctx any, id any) *MockProfileRepository_Delete_Call {
	return &MockProfileRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockProfileRepository_Delete_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockProfileRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockProfileRepository_Delete_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileRepository_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileRepository_Delete_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.Profile, error)) *MockProfileRepository_Delete_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockProfileRepository creates a mock that asserts its expectations when the test ends.
func NewMockProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
