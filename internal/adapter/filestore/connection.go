package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/config"
)

const defaultTasksFile = "task.json"

// File is a handle on the JSON document holding the task collection.
type File struct {
	path string
}

// OpenFile resolves the tasks file from config and creates it with an empty
// collection when it does not exist yet.
func OpenFile(conf *config.Config) (*File, error) {
	path := conf.TasksFile
	if path == "" {
		path = defaultTasksFile
	}

	f := &File{path: path}
	if err := f.ensure(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Path() string {
	return f.path
}

// Ping reports whether the tasks file can be read.
func (f *File) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	handle, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("open tasks file: %w", err)
	}
	return handle.Close()
}

func (f *File) ensure() error {
	_, err := os.Stat(f.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat tasks file: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create tasks directory: %w", err)
		}
	}
	return writeDocument(f.path, document{Tasks: []taskRecord{}})
}
