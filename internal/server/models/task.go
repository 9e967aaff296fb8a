package models

import "time"

// Task belongs to exactly one user and is reachable only through that user's
// identity. Description is a pointer so that a missing description serializes
// as JSON null.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskPatch is a partial update: nil fields keep their stored values.
type TaskPatch struct {
	Title       *string
	Description *string
	Done        *bool
}
