package dto

import "time"

// CreateTaskRequest entrada para agregar una tarea a un proyecto.
type CreateTaskRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to" validate:"omitempty,uuid"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	AssignedTo      *string   `json:"assigned_to"`
	Status          string    `json:"status"`
	ProgressPercent int       `json:"progress_percent"`
	StartDate       *string   `json:"start_date"`
	EndDate         *string   `json:"end_date"`
	CreatedAt       time.Time `json:"created_at"`
}
