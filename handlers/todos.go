package handlers

import (
	"fmt"

	"github.com/biosecret/go-crud/models"
	"github.com/gofiber/fiber/v2"
)

// HandleAllTodos godoc
// @Summary  List todos
// @Tags     todos
// @Produce  json
// @Param    offset query int false "number of todos to skip" default(0)
// @Param    limit  query int false "maximum number of todos (unbounded when omitted)"
// @Success  200 {array}  models.Todo
// @Failure  400 {string} string
// @Router   /api/todos [get]
func (h *Handler) HandleAllTodos(c *fiber.Ctx) error {
	offset, limit, err := pagination(c)
	if err != nil {
		return err
	}

	from, n, err := models.TodoListQuery{Offset: offset, Limit: limit}.Resolve()
	if err != nil {
		return validationError(err)
	}

	return c.Status(fiber.StatusOK).JSON(h.todos.List(from, n))
}

// HandleCreateTodo godoc
// @Summary  Create a todo
// @Tags     todos
// @Accept   json
// @Produce  json
// @Param    todo body     models.CreateTodoRequest true "todo text"
// @Success  201  {object} models.Todo
// @Failure  400  {string} string
// @Router   /api/todos [post]
func (h *Handler) HandleCreateTodo(c *fiber.Ctx) error {
	var input models.CreateTodoRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return validationError(err)
	}

	todo := h.todos.Create(input.Text)
	return c.Status(fiber.StatusCreated).JSON(todo)
}

// HandleGetOneTodo godoc
// @Summary  Get a todo
// @Tags     todos
// @Produce  json
// @Param    id  path     string true "todo id (uuid)"
// @Success  200 {object} models.Todo
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Router   /api/todos/{id} [get]
func (h *Handler) HandleGetOneTodo(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	todo, ok := h.todos.Get(id)
	if !ok {
		return notFound(fmt.Sprintf("Todo with ID: %s not found", id))
	}
	return c.Status(fiber.StatusOK).JSON(todo)
}
