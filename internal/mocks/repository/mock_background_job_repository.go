package repository

import (
	"context"

	"indieneer/internal/domain/entity"
	repository "indieneer/internal/domain/repository"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockBackgroundJobRepository is a testify mock of repository.BackgroundJobRepository.
type MockBackgroundJobRepository struct {
	mock.Mock
}

// MockBackgroundJobRepository_Expecter builds typed expectations.
type MockBackgroundJobRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBackgroundJobRepository) EXPECT() *MockBackgroundJobRepository_Expecter {
	return &MockBackgroundJobRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockBackgroundJobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobRepository_FindByID_Call is the typed expectation of FindByID.
type MockBackgroundJobRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobRepository_Expecter) FindByID(ctx any, id any) *MockBackgroundJobRepository_FindByID_Call {
	return &MockBackgroundJobRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockBackgroundJobRepository_FindByID_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockBackgroundJobRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockBackgroundJobRepository_FindByID_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobRepository_FindByID_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.BackgroundJob, error)) *MockBackgroundJobRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockBackgroundJobRepository) FindAll(ctx context.Context) ([]*entity.BackgroundJob, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.BackgroundJob, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobRepository_FindAll_Call is the typed expectation of FindAll.
type MockBackgroundJobRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobRepository_Expecter) FindAll(ctx any) *MockBackgroundJobRepository_FindAll_Call {
	return &MockBackgroundJobRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockBackgroundJobRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockBackgroundJobRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockBackgroundJobRepository_FindAll_Call) Return(_a0 []*entity.BackgroundJob, _a1 error) *MockBackgroundJobRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.BackgroundJob, error)) *MockBackgroundJobRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function with given fields: ctx, job
func (_m *MockBackgroundJobRepository) Create(ctx context.Context, job *entity.BackgroundJob) error {
	ret := _m.Called(ctx, job)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.BackgroundJob) error); ok {
		r0 = rf(ctx, job)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBackgroundJobRepository_Create_Call is the typed expectation of Create.
type MockBackgroundJobRepository_Create_Call struct {
	*mock.Call
}

// Create registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobRepository_Expecter) Create(ctx any, job any) *MockBackgroundJobRepository_Create_Call {
	return &MockBackgroundJobRepository_Create_Call{Call: _e.mock.On("Create", ctx, job)}
}

func (_c *MockBackgroundJobRepository_Create_Call) Run(run func(ctx context.Context, job *entity.BackgroundJob)) *MockBackgroundJobRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.BackgroundJob))
	})

	return _c
}

func (_c *MockBackgroundJobRepository_Create_Call) Return(_a0 error) *MockBackgroundJobRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockBackgroundJobRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.BackgroundJob) error) *MockBackgroundJobRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function with given fields: ctx, id, expectedStatus, update
func (_m *MockBackgroundJobRepository) Update(ctx context.Context, id primitive.ObjectID, expectedStatus entity.JobStatus, update repository.BackgroundJobUpdate) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, id, expectedStatus, update)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, entity.JobStatus, repository.BackgroundJobUpdate) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, id, expectedStatus, update)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobRepository_Update_Call is the typed expectation of Update.
type MockBackgroundJobRepository_Update_Call struct {
	*mock.Call
}

// Update registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobRepository_Expecter) Update(ctx any, id any, expectedStatus any, update any) *MockBackgroundJobRepository_Update_Call {
	return &MockBackgroundJobRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, expectedStatus, update)}
}

func (_c *MockBackgroundJobRepository_Update_Call) Run(run func(ctx context.Context, id primitive.ObjectID, expectedStatus entity.JobStatus, update repository.BackgroundJobUpdate)) *MockBackgroundJobRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID), args[2].(entity.JobStatus), args[3].(repository.BackgroundJobUpdate))
	})

	return _c
}

func (_c *MockBackgroundJobRepository_Update_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobRepository_Update_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobRepository_Update_Call) RunAndReturn(run func(context.Context, primitive.ObjectID, entity.JobStatus, repository.BackgroundJobUpdate) (*entity.BackgroundJob, error)) *MockBackgroundJobRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// AppendEvent provides a mock function with given fields: ctx, id, event
func (_m *MockBackgroundJobRepository) AppendEvent(ctx context.Context, id primitive.ObjectID, event entity.JobEvent) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, id, event)

	if len(ret) == 0 {
		panic("no return value specified for AppendEvent")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, entity.JobEvent) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, id, event)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobRepository_AppendEvent_Call is the typed expectation of AppendEvent.
type MockBackgroundJobRepository_AppendEvent_Call struct {
	*mock.Call
}

// AppendEvent registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobRepository_Expecter) AppendEvent(ctx any, id any, event any) *MockBackgroundJobRepository_AppendEvent_Call {
	return &MockBackgroundJobRepository_AppendEvent_Call{Call: _e.mock.On("AppendEvent", ctx, id, event)}
}

func (_c *MockBackgroundJobRepository_AppendEvent_Call) Run(run func(ctx context.Context, id primitive.ObjectID, event entity.JobEvent)) *MockBackgroundJobRepository_AppendEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID), args[2].(entity.JobEvent))
	})

	return _c
}

func (_c *MockBackgroundJobRepository_AppendEvent_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobRepository_AppendEvent_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobRepository_AppendEvent_Call) RunAndReturn(run func(context.Context, primitive.ObjectID, entity.JobEvent) (*entity.BackgroundJob, error)) *MockBackgroundJobRepository_AppendEvent_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockBackgroundJobRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.BackgroundJob, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *entity.BackgroundJob
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) (*entity.BackgroundJob, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BackgroundJob)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// MockBackgroundJobRepository_Delete_Call is the typed expectation of Delete.
type MockBackgroundJobRepository_Delete_Call struct {
	*mock.Call
}

// Delete registers an expectation; arguments may be values or mock matchers.
func (_e *MockBackgroundJobRepository_Expecter) Delete(ctx any, id any) *MockBackgroundJobRepository_Delete_Call {
	return &MockBackgroundJobRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockBackgroundJobRepository_Delete_Call) Run(run func(ctx context.Context, id primitive.ObjectID)) *MockBackgroundJobRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(primitive.ObjectID))
	})

	return _c
}

func (_c *MockBackgroundJobRepository_Delete_Call) Return(_a0 *entity.BackgroundJob, _a1 error) *MockBackgroundJobRepository_Delete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBackgroundJobRepository_Delete_Call) RunAndReturn(run func(context.Context, primitive.ObjectID) (*entity.BackgroundJob, error)) *MockBackgroundJobRepository_Delete_Call {
	_c.Call.Return(run)

	return _c
}
// NewMockBackgroundJobRepository creates a mock that asserts its expectations when the test ends.
func NewMockBackgroundJobRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBackgroundJobRepository {
	m := &MockBackgroundJobRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
