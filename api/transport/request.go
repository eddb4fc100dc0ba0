package transport

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TaskCreateRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ParentTaskID *string `json:"parent_task_id"`
}

type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type TaskStatusRequest struct {
	Status string `json:"status"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

// SessionResponse is returned by register and login: the opaque bearer token
// plus the profile it authenticates.
type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"`
	User      interface{} `json:"user"`
}
