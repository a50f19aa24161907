package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimestampLayout is the format of the creation and resolution dates.
const TimestampLayout = "2006-01-02 15:04:05"

// Row is one task keyed by display column name ("Nome Projeto", "Task ID", ...).
type Row map[string]string

// Task is a single kanban card. JSON names are the external field names.
type Task struct {
	Project     string       `json:"project" validate:"required"`
	TaskID      string       `json:"task_id" validate:"required"`
	TaskIDRoot  string       `json:"task_id_root,omitempty"`
	Sprint      string       `json:"sprint,omitempty"`
	Context     string       `json:"contexto" validate:"required"`
	Description string       `json:"descricao" validate:"required"`
	Detail      string       `json:"detalhado,omitempty"`
	Priority    TaskPriority `json:"prioridade" validate:"required,task_priority"`
	Status      TaskStatus   `json:"status" validate:"required,task_status"`
	CreatedAt   string       `json:"data_criacao,omitempty"`
	ResolvedAt  string       `json:"data_solucao,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = newValidator()
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return TaskStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
		return TaskPriority(fl.Field().String()).IsValid()
	})
	return v
}

// Validator exposes the shared validator so other packages can register
// their structs against the same custom tags.
func Validator() *validator.Validate {
	return validate
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// Validate checks a task and reports enum failures as *ValidationError so
// callers can list the legal values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Project) == "" {
		return &ValidationError{Field: ColProject.Field()}
	}
	if strings.TrimSpace(t.TaskID) == "" {
		return &ValidationError{Field: ColTaskID.Field()}
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return ValidateStruct(t)
}

// Stamp sets the creation date to now and clears the resolution date.
func (t *Task) Stamp(now time.Time) {
	t.CreatedAt = now.Format(TimestampLayout)
	t.ResolvedAt = ""
}

// Values returns the task as a physical row in schema column order.
func (t *Task) Values() []string {
	return []string{
		t.Project,
		t.TaskID,
		t.TaskIDRoot,
		t.Sprint,
		t.Context,
		t.Description,
		t.Detail,
		string(t.Priority),
		string(t.Status),
		t.CreatedAt,
		t.ResolvedAt,
	}
}

// Get returns the value of a column.
func (r Row) Get(c Column) string {
	return r[c.Display()]
}

// TaskFromRow builds a Task from a display-keyed row. Enum values are
// copied as stored; no validation is applied.
func TaskFromRow(r Row) Task {
	return Task{
		Project:     r.Get(ColProject),
		TaskID:      r.Get(ColTaskID),
		TaskIDRoot:  r.Get(ColTaskIDRoot),
		Sprint:      r.Get(ColSprint),
		Context:     r.Get(ColContext),
		Description: r.Get(ColDescription),
		Detail:      r.Get(ColDetail),
		Priority:    TaskPriority(r.Get(ColPriority)),
		Status:      TaskStatus(r.Get(ColStatus)),
		CreatedAt:   r.Get(ColCreatedAt),
		ResolvedAt:  r.Get(ColResolvedAt),
	}
}

// Now returns the current local time formatted as a timestamp.
func Now() string {
	return time.Now().Format(TimestampLayout)
}
