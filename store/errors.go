package store

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when no row matches a composite key.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmptyBatch is returned by Add and Update for empty input.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrUnsupportedFormat is returned for file extensions with no codec.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// StorageError reports a failure to read or write the backing store.
type StorageError struct {
	Op     string // load, append, update, create
	Target string // file path or spreadsheet range
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, target string, err error) error {
	return &StorageError{Op: op, Target: target, Err: err}
}

// NotFound wraps ErrTaskNotFound with the key that was looked up.
func NotFound(project, taskID string) error {
	return fmt.Errorf("%w: '%s' in project '%s'", ErrTaskNotFound, taskID, project)
}
