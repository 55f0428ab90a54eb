package dto

import "time"

// CreateCommentRequest entrada para comentar un proyecto. Texto en blanco no genera comentario.
type CreateCommentRequest struct {
	CommentText string `json:"comment_text"`
}

// CommentResponse salida de un comentario.
type CommentResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	UserID      string    `json:"user_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}
