package entity

import "time"

// Comment comentario de solo-agregado sobre un proyecto.
type Comment struct {
	ID          string
	ProjectID   string
	UserID      string
	CommentText string
	CreatedAt   time.Time
}
