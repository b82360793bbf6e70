package repository

import (
	"context"

	"indieneer/internal/domain/entity"
	repository "indieneer/internal/domain/repository"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockFeaturedItemRepository is a testify mock of repository.FeaturedItemRepository.
type MockFeaturedItemRepository struct {
	mock.Mock
}

// MockFeaturedItemRepository_Expecter builds typed expectations.
type MockFeaturedItemRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFeaturedItemRepository) EXPECT() *MockFeaturedItemRepository_Expecter {
	return &MockFeaturedItemRepository_Expecter{mock: &_m.Mock}
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockFeaturedItemRepository) FindAll(ctx context.Context) ([]*entity.FeaturedItem, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.FeaturedItem, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedItemRepository_FindAll_Call is the typed expectation of FindAll.
type MockFeaturedItemRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) FindAll(ctx any) *MockFeaturedItemRepository_FindAll_Call {
	return &MockFeaturedItemRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockFeaturedItemRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockFeaturedItemRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_FindAll_Call) Return(_a0 []*entity.FeaturedItem, _a1 error) *MockFeaturedItemRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedItemRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.FeaturedItem, error)) *MockFeaturedItemRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockFeaturedItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.FeaturedItem, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.FeaturedItem, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedItemRepository_FindByID_Call is the typed expectation of FindByID.
type MockFeaturedItemRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) FindByID(ctx any, id any) *MockFeaturedItemRepository_FindByID_Call {
	return &MockFeaturedItemRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockFeaturedItemRepository_FindByID_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockFeaturedItemRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_FindByID_Call) Return(_a0 *entity.FeaturedItem, _a1 error) *MockFeaturedItemRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedItemRepository_FindByID_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.FeaturedItem, error)) *MockFeaturedItemRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// ExistsAtIndex provides a mock function with given fields: ctx, orderIndex
func (_m *MockFeaturedItemRepository) ExistsAtIndex(ctx context.Context, orderIndex int) (bool, error) {
	ret := _m.Called(ctx, orderIndex)

	if len(ret) == 0 {
		panic("no return value specified for ExistsAtIndex")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (bool, error)); ok {
		return rf(ctx, orderIndex)
	}
	r0 = ret.Get(0).(bool)

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedItemRepository_ExistsAtIndex_Call is the typed expectation of ExistsAtIndex.
type MockFeaturedItemRepository_ExistsAtIndex_Call struct {
	*mock.Call
}

// ExistsAtIndex registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) ExistsAtIndex(ctx any, orderIndex any) *MockFeaturedItemRepository_ExistsAtIndex_Call {
	return &MockFeaturedItemRepository_ExistsAtIndex_Call{Call: _e.mock.On("ExistsAtIndex", ctx, orderIndex)}
}

func (_c *MockFeaturedItemRepository_ExistsAtIndex_Call) Run(run func(ctx context.Context, orderIndex int)) *MockFeaturedItemRepository_ExistsAtIndex_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_ExistsAtIndex_Call) Return(_a0 bool, _a1 error) *MockFeaturedItemRepository_ExistsAtIndex_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedItemRepository_ExistsAtIndex_Call) RunAndReturn(run func(context.Context, int) (bool, error)) *MockFeaturedItemRepository_ExistsAtIndex_Call {
	_c.Call.Return(run)

	return _c
}

// LockList provides a mock function with given fields: ctx
func (_m *MockFeaturedItemRepository) LockList(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for LockList")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFeaturedItemRepository_LockList_Call is the typed expectation of LockList.
type MockFeaturedItemRepository_LockList_Call struct {
	*mock.Call
}

// LockList registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) LockList(ctx any) *MockFeaturedItemRepository_LockList_Call {
	return &MockFeaturedItemRepository_LockList_Call{Call: _e.mock.On("LockList", ctx)}
}

func (_c *MockFeaturedItemRepository_LockList_Call) Run(run func(ctx context.Context)) *MockFeaturedItemRepository_LockList_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_LockList_Call) Return(_a0 error) *MockFeaturedItemRepository_LockList_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFeaturedItemRepository_LockList_Call) RunAndReturn(run func(context.Context) error) *MockFeaturedItemRepository_LockList_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, item
func (_m *MockFeaturedItemRepository) Create(ctx context.Context, item *entity.FeaturedItem) error {
	ret := _m.Called(ctx, item)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.FeaturedItem) error); ok {
		r0 = rf(ctx, item)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFeaturedItemRepository_Create_Call is the typed expectation of Create.
type MockFeaturedItemRepository_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) Create(ctx any, item any) *MockFeaturedItemRepository_Create_Call {
	return &MockFeaturedItemRepository_Create_Call{Call: _e.mock.On("Create", ctx, item)}
}

func (_c *MockFeaturedItemRepository_Create_Call) Run(run func(ctx context.Context, item *entity.FeaturedItem)) *MockFeaturedItemRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.FeaturedItem))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_Create_Call) Return(_a0 error) *MockFeaturedItemRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFeaturedItemRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.FeaturedItem) error) *MockFeaturedItemRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// ShiftRange provides a mock function with given fields: ctx, from, to, delta
func (_m *MockFeaturedItemRepository) ShiftRange(ctx context.Context, from int, to int, delta int) error {
	ret := _m.Called(ctx, from, to, delta)

	if len(ret) == 0 {
		panic("no return value specified for ShiftRange")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int, int) error); ok {
		r0 = rf(ctx, from, to, delta)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFeaturedItemRepository_ShiftRange_Call is the typed expectation of ShiftRange.
type MockFeaturedItemRepository_ShiftRange_Call struct {
	*mock.Call
}

// ShiftRange registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) ShiftRange(ctx any, from any, to any, delta any) *MockFeaturedItemRepository_ShiftRange_Call {
	return &MockFeaturedItemRepository_ShiftRange_Call{Call: _e.mock.On("ShiftRange", ctx, from, to, delta)}
}

func (_c *MockFeaturedItemRepository_ShiftRange_Call) Run(run func(ctx context.Context, from int, to int, delta int)) *MockFeaturedItemRepository_ShiftRange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(int), args[3].(int))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_ShiftRange_Call) Return(_a0 error) *MockFeaturedItemRepository_ShiftRange_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockFeaturedItemRepository_ShiftRange_Call) RunAndReturn(run func(context.Context, int, int, int) error) *MockFeaturedItemRepository_ShiftRange_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function with given fields: ctx, id, update
func (_m *MockFeaturedItemRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.FeaturedItemUpdate) (*entity.FeaturedItem, error) {
	ret := _m.Called(ctx, id, update)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, repository.FeaturedItemUpdate) (*entity.FeaturedItem, error)); ok {
		return rf(ctx, id, update)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedItemRepository_Update_Call is the typed expectation of Update.
type MockFeaturedItemRepository_Update_Call struct {
	*mock.Call
}

// Update registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) Update(ctx any, id any, update any) *MockFeaturedItemRepository_Update_Call {
	return &MockFeaturedItemRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, update)}
}

func (_c *MockFeaturedItemRepository_Update_Call) Run(run func(ctx context.Context, id primitive.ObjectID, update repository.FeaturedItemUpdate)) *MockFeaturedItemRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID), args[2].(repository.FeaturedItemUpdate))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_Update_Call) Return(_a0 *entity.FeaturedItem, _a1 error) *MockFeaturedItemRepository_Update_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedItemRepository_Update_Call) RunAndReturn(run func(context.Context, primitive.ObjectID, repository.FeaturedItemUpdate) (*entity.FeaturedItem, error)) *MockFeaturedItemRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockFeaturedItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.FeaturedItem, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.FeaturedItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.FeaturedItem, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.FeaturedItem)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockFeaturedItemRepository_Delete_Call is the typed expectation of Delete.
type MockFeaturedItemRepository_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockFeaturedItemRepository_Expecter) Delete(ctx any, id any) *MockFeaturedItemRepository_Delete_Call {
	return &MockFeaturedItemRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockFeaturedItemRepository_Delete_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockFeaturedItemRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockFeaturedItemRepository_Delete_Call) Return(_a0 *entity.FeaturedItem, _a1 error) *MockFeaturedItemRepository_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockFeaturedItemRepository_Delete_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.FeaturedItem, error)) *MockFeaturedItemRepository_Delete_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockFeaturedItemRepository creates a mock that asserts its expectations when the test ends.
func NewMockFeaturedItemRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeaturedItemRepository {
	m := &MockFeaturedItemRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
