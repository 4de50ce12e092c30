package api

import "github.com/taskvault/taskvault-api/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Only presence is enforced; password policy is deliberately out of scope.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse is the public identity of an account: never the
// password digest, never the session token.
type AccountResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    AccountResponse `json:"user"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskRequest defines the payload for task creation and update.
// Priority and status accept arbitrary strings; empty values fall back to
// the domain defaults.
type TaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// DeleteTaskResponse confirms a deletion and carries the removed task.
type DeleteTaskResponse struct {
	Message string       `json:"message"`
	Task    *domain.Task `json:"task"`
}

// HealthResponse defines the health endpoint payload.
type HealthResponse struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	TotalUsers int    `json:"total_users"`
	TotalTasks int    `json:"total_tasks"`
}
