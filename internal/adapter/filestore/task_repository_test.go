package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/config"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func openTestFile(t *testing.T) *File {
	t.Helper()

	file, err := OpenFile(&config.Config{TasksFile: filepath.Join(t.TempDir(), "data", "task.json")})
	require.NoError(t, err)
	return file
}

func TestOpenFile_CreatesEmptyCollection(t *testing.T) {
	file := openTestFile(t)

	data, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	require.Equal(t, "{\n  \"tasks\": []\n}", string(data))

	tasks, err := NewTaskRepository(file).Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestOpenFile_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	content := `{"tasks":[{"id":3,"title":"t","description":"d","completed":true,"priority":"medium","createdAt":"2025-01-02T03:04:05.678Z"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	file, err := OpenFile(&config.Config{TasksFile: path})
	require.NoError(t, err)

	tasks, err := NewTaskRepository(file).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.Task{{
		ID:          3,
		Title:       "t",
		Description: "d",
		Completed:   true,
		Priority:    domain.PriorityMedium,
		CreatedAt:   domain.NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 678000000, time.UTC)),
	}}, tasks)
}

func TestTaskRepository_SaveWritesIndentedDocument(t *testing.T) {
	file := openTestFile(t)
	repo := NewTaskRepository(file)

	err := repo.Save(context.Background(), []domain.Task{{
		ID:          1,
		Title:       "A & <B>",
		Description: "d",
		Completed:   false,
		Priority:    domain.PriorityLow,
		CreatedAt:   domain.NewTimestamp(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)),
	}})
	require.NoError(t, err)

	data, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	require.Equal(t, `{
  "tasks": [
    {
      "id": 1,
      "title": "A & <B>",
      "description": "d",
      "completed": false,
      "priority": "low",
      "createdAt": "2026-01-01T12:00:00.000Z"
    }
  ]
}`, string(data))
}

func TestTaskRepository_SaveThenLoadKeepsOrder(t *testing.T) {
	repo := NewTaskRepository(openTestFile(t))
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		{ID: 5, Title: "five", Description: "d", Priority: domain.PriorityHigh, CreatedAt: domain.NewTimestamp(createdAt)},
		{ID: 2, Title: "two", Description: "d", Priority: domain.PriorityLow, CreatedAt: domain.NewTimestamp(createdAt.Add(time.Minute))},
	}
	require.NoError(t, repo.Save(context.Background(), tasks))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, tasks, loaded)
}

func TestTaskRepository_SaveLeavesNoTempFiles(t *testing.T) {
	file := openTestFile(t)
	repo := NewTaskRepository(file)

	require.NoError(t, repo.Save(context.Background(), nil))

	entries, err := os.ReadDir(filepath.Dir(file.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "task.json", entries[0].Name())
}

func TestTaskRepository_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	missing := NewTaskRepository(&File{path: filepath.Join(dir, "missing.json")})
	_, err := missing.Load(context.Background())
	require.ErrorContains(t, err, "read tasks file")

	brokenPath := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(brokenPath, []byte(`{"tasks":[`), 0o644))
	_, err = NewTaskRepository(&File{path: brokenPath}).Load(context.Background())
	require.ErrorContains(t, err, "parse tasks file")
}

func TestTaskRepository_LoadAcceptsAnyCreatedAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	content := `{"tasks":[
		{"id":1,"title":"a","description":"d","completed":false,"priority":"low","createdAt":"2024-01-01"},
		{"id":2,"title":"b","description":"d","completed":false,"priority":"low","createdAt":"2024-01-01T10:00:00+02:00"},
		{"id":3,"title":"c","description":"d","completed":false,"priority":"low","createdAt":"yesterday"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := NewTaskRepository(&File{path: path}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	require.True(t, tasks[0].CreatedAt.Valid())
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tasks[0].CreatedAt.Time)
	require.Equal(t, "2024-01-01", tasks[0].CreatedAt.String())

	require.True(t, tasks[1].CreatedAt.Valid())
	require.True(t, tasks[1].CreatedAt.Time.Equal(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	require.False(t, tasks[2].CreatedAt.Valid())
	require.Equal(t, "yesterday", tasks[2].CreatedAt.String())
}

func TestTaskRepository_SaveKeepsStoredCreatedAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	content := `{"tasks":[
		{"id":1,"title":"a","description":"d","completed":false,"priority":"low","createdAt":"2024-01-01T10:00:00+02:00"},
		{"id":2,"title":"b","description":"d","completed":false,"priority":"low","createdAt":"2024-01-02T00:00:00.123456Z"},
		{"id":3,"title":"c","description":"d","completed":false,"priority":"low","createdAt":"2024-01-03"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	repo := NewTaskRepository(&File{path: path})

	tasks, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tasks[:2]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"createdAt": "2024-01-01T10:00:00+02:00"`)
	require.Contains(t, string(data), `"createdAt": "2024-01-02T00:00:00.123456Z"`)
	require.NotContains(t, string(data), `"id": 3`)
}

func TestTaskRepository_HonoursCancelledContext(t *testing.T) {
	repo := NewTaskRepository(openTestFile(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.Save(ctx, nil), context.Canceled)
}

func TestFile_Ping(t *testing.T) {
	file := openTestFile(t)
	require.NoError(t, file.Ping(context.Background()))

	require.NoError(t, os.Remove(file.Path()))
	require.Error(t, file.Ping(context.Background()))
}
