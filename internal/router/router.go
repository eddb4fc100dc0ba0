package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/tasknest/backend/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Task    *apiHandler.TaskHandler
	Comment *apiHandler.CommentHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))
	r.GET("/api/v1/auth/me", authMiddleware(handlers.Auth.Me))
	r.GET("/api/v1/auth/validate", authMiddleware(handlers.Auth.Validate))

	// Task routes
	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.GET("/api/v1/tasks/{id}", authMiddleware(handlers.Task.GetTask))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.PUT("/api/v1/tasks/{id}/status", authMiddleware(handlers.Task.UpdateTaskStatus))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))
	r.GET("/api/v1/tasks/{id}/subtasks", authMiddleware(handlers.Task.GetSubtasks))
	r.POST("/api/v1/tasks/{id}/subtasks", authMiddleware(handlers.Task.CreateSubtask))

	// Comments are nested under their task; direct access goes by comment id.
	r.GET("/api/v1/tasks/{id}/comments", authMiddleware(handlers.Comment.GetComments))
	r.POST("/api/v1/tasks/{id}/comments", authMiddleware(handlers.Comment.CreateComment))
	r.GET("/api/v1/tasks/{id}/comments/count", authMiddleware(handlers.Comment.GetCommentCount))
	r.GET("/api/v1/comments/{id}", authMiddleware(handlers.Comment.GetComment))
	r.PUT("/api/v1/comments/{id}", authMiddleware(handlers.Comment.UpdateComment))
	r.DELETE("/api/v1/comments/{id}", authMiddleware(handlers.Comment.DeleteComment))

	return r
}
