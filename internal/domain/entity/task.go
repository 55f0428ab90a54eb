package entity

import "time"

// TaskStatus estado de ejecución de una tarea.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Task tarea de ejecución dentro de un proyecto.
type Task struct {
	ID              string
	ProjectID       string
	Name            string
	Description     string
	AssignedTo      *string
	Status          TaskStatus
	ProgressPercent int
	StartDate       *time.Time
	EndDate         *time.Time
	CreatedAt       time.Time
}
