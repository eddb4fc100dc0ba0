package domain

import "time"

// Comment is a note attached to exactly one task by the task's owner.
type Comment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is populated on reads so clients can render the comment
	// without a second lookup.
	Author *CommentAuthor `json:"author,omitempty"`
}

// CommentAuthor carries the display fields of the commenting user.
type CommentAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
