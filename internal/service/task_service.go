package service

import (
	"context"
	"time"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/pkg/store"

	"github.com/google/uuid"
)

type ITaskService interface {
	Create(ctx context.Context, request *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(ctx context.Context) []*dto.TaskResponse
	Toggle(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	store *store.Store
}

func NewTaskService(st *store.Store) ITaskService {
	return &taskService{store: st}
}

func (ts *taskService) Create(ctx context.Context, request *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := entity.Task{
		Id:        uuid.New(),
		Title:     request.Title,
		Completed: false,
		Date:      request.Date,
		Category:  request.Category,
		CreatedAt: time.Now(),
	}
	if err := ts.store.AddTask(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func (ts *taskService) List(ctx context.Context) []*dto.TaskResponse {
	tasks := ts.store.Snapshot().Tasks
	response := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, toTaskResponse(t))
	}
	return response
}

func (ts *taskService) Toggle(ctx context.Context, id uuid.UUID) error {
	return ts.store.ToggleTask(ctx, id)
}

func (ts *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	return ts.store.DeleteTask(ctx, id)
}

func toTaskResponse(t entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:        t.Id,
		Title:     t.Title,
		Completed: t.Completed,
		Date:      t.Date,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
	}
}
