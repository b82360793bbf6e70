package repository

import (
	"context"

	"indieneer/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTagRepository is a testify mock of repository.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

// MockTagRepository_Expecter builds typed expectations.
type MockTagRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTagRepository) EXPECT() *MockTagRepository_Expecter {
	return &MockTagRepository_Expecter{mock: &_m.Mock}
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockTagRepository) FindAll(ctx context.Context) ([]*entity.Tag, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Tag, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockTagRepository_FindAll_Call is the typed expectation of FindAll.
type MockTagRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll registers an expectation; arguments may be values or mock matchers.
func (_e *MockTagRepository_Expecter) FindAll(ctx any) *MockTagRepository_FindAll_Call {
	return &MockTagRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockTagRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockTagRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockTagRepository_FindAll_Call) Return(_a0 []*entity.Tag, _a1 error) *MockTagRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTagRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Tag, error)) *MockTagRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockTagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tag, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.Tag, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockTagRepository_FindByID_Call is the typed expectation of FindByID.
type MockTagRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID registers an expectation; arguments may be values or mock matchers.
func (_e *MockTagRepository_Expecter) FindByID(ctx any, id any) *MockTagRepository_FindByID_Call {
	return &MockTagRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockTagRepository_FindByID_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockTagRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockTagRepository_FindByID_Call) Return(_a0 *entity.Tag, _a1 error) *MockTagRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTagRepository_FindByID_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.Tag, error)) *MockTagRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, tag
func (_m *MockTagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	ret := _m.Called(ctx, tag)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Tag) error); ok {
		r0 = rf(ctx, tag)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTagRepository_Create_Call is the typed expectation of Create.
type MockTagRepository_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockTagRepository_Expecter) Create(ctx any, tag any) *MockTagRepository_Create_Call {
	return &MockTagRepository_Create_Call{Call: _e.mock.On("Create", ctx, tag)}
}

func (_c *MockTagRepository_Create_Call) Run(run func(ctx context.Context, tag *entity.Tag)) *MockTagRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Tag))
	})

	return _c
}

func (_c *MockTagRepository_Create_Call) Return(_a0 error) *MockTagRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockTagRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Tag) error) *MockTagRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function with given fields: ctx, id, name
func (_m *MockTagRepository) Update(ctx context.Context, id primitive.ObjectID, name string) (*entity.Tag, error) {
	ret := _m.Called(ctx, id, name)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, string) (*entity.Tag, error)); ok {
		return rf(ctx, id, name)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockTagRepository_Update_Call is the typed expectation of Update.
type MockTagRepository_Update_Call struct {
	*mock.Call
}

// Update registers an expectation; arguments may be values or mock matchers.
func (_e *MockTagRepository_Expecter) Update(ctx any, id any, name any) *MockTagRepository_Update_Call {
	return &MockTagRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, name)}
}

func (_c *MockTagRepository_Update_Call) Run(run func(ctx context.Context, id primitive.ObjectID, name string)) *MockTagRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID), args[2].(string))
	})

	return _c
}

func (_c *MockTagRepository_Update_Call) Return(_a0 *entity.Tag, _a1 error) *MockTagRepository_Update_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTagRepository_Update_Call) RunAndReturn(run func(context.Context, primitive.ObjectID, string) (*entity.Tag, error)) *MockTagRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockTagRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Tag, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.Tag
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.Tag, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Tag)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockTagRepository_Delete_Call is the typed expectation of Delete.
type MockTagRepository_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockTagRepository_Expecter) Delete(ctx any, id any) *MockTagRepository_Delete_Call {
	return &MockTagRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockTagRepository_Delete_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockTagRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockTagRepository_Delete_Call) Return(_a0 *entity.Tag, _a1 error) *MockTagRepository_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTagRepository_Delete_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.Tag, error)) *MockTagRepository_Delete_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockTagRepository creates a mock that asserts its expectations when the test ends.
func NewMockTagRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTagRepository {
	m := &MockTagRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
