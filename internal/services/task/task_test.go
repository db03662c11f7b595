package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}
func (m *RepoMock) GetTask(ctx context.Context, id int) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}
func (m *RepoMock) ListTasks(ctx context.Context) ([]*models.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}
func (m *RepoMock) UpdateTask(ctx context.Context, task *models.Task) error {
	return m.Called(ctx, task).Error(0)
}
func (m *RepoMock) DeleteTask(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RepoMock) GetProject(ctx context.Context, id int) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}
func (m *RepoMock) ListTasksByProject(ctx context.Context, projectID int) ([]*models.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		req        models.DummyTask
		wantErr    bool
	}{
		{
			name: "success with defaults",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(&models.Project{ID: 7, UserID: 1}, nil).Once()
				r.On("CreateTask", mock.Anything, mock.MatchedBy(func(task models.Task) bool {
					return task.Title == "Design" && task.Description == "" && !task.Completed
				})).Return(&models.Task{ID: 1, Title: "Design", ProjectID: 7}, nil).Once()
			},
			req: models.DummyTask{Title: "Design", ProjectID: 7},
		},
		{
			name: "parent project missing",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 99).Return(nil, apperr.NotFound("Project with id %d not found", 99)).Once()
			},
			req:     models.DummyTask{Title: "Design", ProjectID: 99},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo)

			tt.setupMocks(repo)

			got, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	stored := func() *models.Task {
		return &models.Task{ID: 3, Title: "Design", Description: "mockups", ProjectID: 7}
	}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		req        models.UpdateTask
		actorID    int
		check      func(t *testing.T, got *models.Task, err error)
	}{
		{
			name: "owner of parent project can update",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, 3).Return(stored(), nil).Once()
				r.On("GetProject", mock.Anything, 7).Return(&models.Project{ID: 7, UserID: 1}, nil).Once()
				r.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *models.Task) bool {
					return task.Completed && task.Title == "Design" && task.Description == "mockups"
				})).Return(nil).Once()
			},
			req:     models.UpdateTask{Completed: boolPtr(true)},
			actorID: 1,
			check: func(t *testing.T, got *models.Task, err error) {
				assert.NoError(t, err)
				assert.True(t, got.Completed)
			},
		},
		{
			name: "someone else's project",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, 3).Return(stored(), nil).Once()
				r.On("GetProject", mock.Anything, 7).Return(&models.Project{ID: 7, UserID: 1}, nil).Once()
			},
			req:     models.UpdateTask{Title: strPtr("Hack")},
			actorID: 2,
			check: func(t *testing.T, got *models.Task, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
				assert.Contains(t, err.Error(), "You can only update tasks in your own projects")
			},
		},
		{
			name: "task not found",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, 3).Return(nil, apperr.NotFound("Task with id %d not found", 3)).Once()
			},
			req:     models.UpdateTask{Completed: boolPtr(true)},
			actorID: 1,
			check: func(t *testing.T, got *models.Task, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo)

			tt.setupMocks(repo)

			got, err := svc.Update(context.Background(), 3, tt.req, tt.actorID)
			tt.check(t, got, err)

			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Delete(t *testing.T) {
	stored := &models.Task{ID: 3, Title: "Design", ProjectID: 7}
	remaining := []*models.Task{{ID: 4, Title: "Deploy", ProjectID: 7}}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		actorID    int
		want       []*models.Task
		wantErr    bool
	}{
		{
			name: "success returns remaining project tasks",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, 3).Return(stored, nil).Once()
				r.On("GetProject", mock.Anything, 7).Return(&models.Project{ID: 7, UserID: 1}, nil).Once()
				r.On("DeleteTask", mock.Anything, 3).Return(nil).Once()
				r.On("ListTasksByProject", mock.Anything, 7).Return(remaining, nil).Once()
			},
			actorID: 1,
			want:    remaining,
		},
		{
			name: "someone else's project",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, 3).Return(stored, nil).Once()
				r.On("GetProject", mock.Anything, 7).Return(&models.Project{ID: 7, UserID: 1}, nil).Once()
			},
			actorID: 2,
			wantErr: true,
		},
		{
			name: "repo delete error",
			setupMocks: func(r *RepoMock) {
				r.On("GetTask", mock.Anything, 3).Return(stored, nil).Once()
				r.On("GetProject", mock.Anything, 7).Return(&models.Project{ID: 7, UserID: 1}, nil).Once()
				r.On("DeleteTask", mock.Anything, 3).Return(errors.New("db error")).Once()
			},
			actorID: 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo)

			tt.setupMocks(repo)

			got, err := svc.Delete(context.Background(), 3, tt.actorID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			repo.AssertExpectations(t)
		})
	}
}
