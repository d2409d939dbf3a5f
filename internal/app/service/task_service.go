package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time

	// mu serializes load-modify-save sequences against the repository.
	mu sync.Mutex
}

type Option func(*TaskService)

// WithClock overrides the time source used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func NewTaskService(taskRepository ports.TaskRepository, opts ...Option) *TaskService {
	s := &TaskService{
		taskRepository: taskRepository,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		filtered = append(filtered, task)
	}

	slices.SortStableFunc(filtered, func(a, b domain.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return filtered, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	index := findTask(tasks, id)
	if index < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return tasks[index], nil
}

func (s *TaskService) ListTasksByPriority(ctx context.Context, level string) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	priority, ok := domain.ParsePriority(level)
	if !ok {
		return nil, domain.ErrInvalidPriorityLevel
	}

	matching := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Priority == priority {
			matching = append(matching, task)
		}
	}
	return matching, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	if err := validateCreateInput(input); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          domain.NextTaskID(tasks),
		Title:       trimText(input.Title.Value),
		Description: trimText(input.Description.Value),
		Completed:   input.Completed.Value,
		Priority:    domain.Priority(input.Priority.Value),
		CreatedAt:   domain.NewTimestamp(s.now()),
	}

	tasks = append(tasks, task)
	if err := s.taskRepository.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	index := findTask(tasks, id)
	if index < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if err := validateUpdateInput(input); err != nil {
		return domain.Task{}, err
	}

	task := &tasks[index]
	if input.Title.IsSet() {
		task.Title = trimText(input.Title.Value)
	}
	if input.Description.IsSet() {
		task.Description = trimText(input.Description.Value)
	}
	if input.Completed.IsSet() {
		task.Completed = input.Completed.Value
	}
	if input.Priority.IsSet() {
		task.Priority = domain.Priority(input.Priority.Value)
	}

	if err := s.taskRepository.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}

	return *task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.taskRepository.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	index := findTask(tasks, id)
	if index < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	deleted := tasks[index]
	tasks = slices.Delete(tasks, index, index+1)
	if err := s.taskRepository.Save(ctx, tasks); err != nil {
		return domain.Task{}, err
	}

	return deleted, nil
}

func findTask(tasks []domain.Task, id uint64) int {
	return slices.IndexFunc(tasks, func(task domain.Task) bool {
		return task.ID == id
	})
}

var _ ports.TaskService = (*TaskService)(nil)
