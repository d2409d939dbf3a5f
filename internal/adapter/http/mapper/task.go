package mapper

import (
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/dto"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt.String(),
	}
}
