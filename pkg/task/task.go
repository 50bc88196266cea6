package task

import (
	"context"
	"errors"
	"strings"
)

// TimeLayout is the format of CreatedAt.
const TimeLayout = "2006-01-02 15:04:05"

// Task is a unit of to-do text with a completion flag.
type Task struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"` // local time, TimeLayout
}

// Stats summarizes the current collection.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

var (
	// ErrInvalidInput is matched by every validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")
)

// ValidationError carries the client-facing reason for rejected input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is reports ErrInvalidInput as a match so callers can use errors.Is.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// ParseText validates the text field of a create request.
// A nil pointer means the field was absent.
func ParseText(text *string) (string, error) {
	if text == nil {
		return "", &ValidationError{Msg: "Task text is required"}
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return "", &ValidationError{Msg: "Task text cannot be empty"}
	}
	return trimmed, nil
}

// Store is the contract for task storage.
type Store interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, text *string) (*Task, error)
	Toggle(ctx context.Context, id int) (*Task, error)
	Delete(ctx context.Context, id int) (*Task, error)
	Stats(ctx context.Context) (Stats, error)
}
