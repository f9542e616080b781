package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/task-api/internal/api"
	apiMiddleware "github.com/phrazzld/task-api/internal/api/middleware"
)

// taskPath is the single-task route; non-numeric ids fall through to NotFound.
const taskPath = "/api/tasks/{id:[0-9]+}"

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer)

	metaHandler := api.NewMetaHandler(app.config.API, app.now)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.NotFound(metaHandler.NotFound)
	r.MethodNotAllowed(metaHandler.MethodNotAllowed)

	r.Get("/", metaHandler.Index)
	r.Get("/health", metaHandler.Health)

	r.Get("/api/tasks", taskHandler.ListTasks)
	r.Post("/api/tasks", taskHandler.CreateTask)
	r.Get(taskPath, taskHandler.GetTask)
	r.Put(taskPath, taskHandler.UpdateTask)
	r.Delete(taskPath, taskHandler.DeleteTask)

	return r
}
