package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/ports"
)

type TaskRepository struct {
	file *File
}

type document struct {
	Tasks []taskRecord `json:"tasks"`
}

type taskRecord struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"createdAt"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(file *File) *TaskRepository {
	return &TaskRepository{file: file}
}

func (r *TaskRepository) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.file.path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}

	tasks := make([]domain.Task, 0, len(doc.Tasks))
	for _, record := range doc.Tasks {
		tasks = append(tasks, mapTaskRecordToDomainTask(record))
	}

	return tasks, nil
}

func (r *TaskRepository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, mapDomainTaskToTaskRecord(task))
	}

	return writeDocument(r.file.path, document{Tasks: records})
}

// writeDocument replaces the file through a temp file in the same directory
// so readers never observe a partial write.
func writeDocument(path string, doc document) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("marshal tasks file: %w", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("create temp tasks file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write tasks file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod tasks file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close tasks file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace tasks file: %w", err)
	}
	return nil
}

func mapTaskRecordToDomainTask(record taskRecord) domain.Task {
	return domain.Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Completed:   record.Completed,
		Priority:    domain.Priority(record.Priority),
		CreatedAt:   domain.ParseTimestamp(record.CreatedAt),
	}
}

func mapDomainTaskToTaskRecord(task domain.Task) taskRecord {
	return taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt.String(),
	}
}
