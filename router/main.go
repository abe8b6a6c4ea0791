package router

import (
	"github.com/biosecret/go-crud/handlers"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/healthcheck", h.HandleHealthCheck)

	api := app.Group("/api")

	todos := api.Group("/todos")
	todos.Get("/", h.HandleAllTodos)
	todos.Post("/", h.HandleCreateTodo)
	todos.Get("/:id", h.HandleGetOneTodo)

	// posts và users cần PostgreSQL
	if !h.HasDatabase() {
		return
	}

	v1 := api.Group("/v1")

	v1.Get("/post", h.HandleAllPosts)
	v1.Post("/post", h.HandleCreatePost)
	v1.Get("/post/:id", h.HandleGetOnePost)
	v1.Patch("/post/:id", h.HandleEditPost)
	v1.Delete("/post/:id", h.HandleDeletePost)

	v1.Post("/user", h.HandleCreateUser)
	v1.Post("/user/login", h.HandleLogin)
	v1.Get("/user/:id", h.HandleGetOneUser)
}
