package ports

import (
	"context"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"
)

// TaskRepository loads and saves the whole task collection at once.
type TaskRepository interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

type TaskService interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasksByPriority(ctx context.Context, level string) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) (domain.Task, error)
}
