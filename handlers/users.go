package handlers

import (
	"errors"

	"github.com/biosecret/go-crud/events"
	"github.com/biosecret/go-crud/models"
	"github.com/biosecret/go-crud/repository"
	"github.com/gofiber/fiber/v2"
)

const resourceUsers = "users"

// HandleCreateUser godoc
// @Summary  Register a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    user body     models.CreateUserRequest true "email and password (6-128 chars)"
// @Success  201  {object} Envelope{data=models.User}
// @Failure  400  {string} string
// @Failure  409  {string} string
// @Failure  500  {string} string
// @Router   /api/v1/user [post]
func (h *Handler) HandleCreateUser(c *fiber.Ctx) error {
	var input models.CreateUserRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return validationError(err)
	}

	// Hash mật khẩu trước khi lưu
	hash, err := h.hasher.Hash(input.Password)
	if err != nil {
		return internal("Failed to hash password", err)
	}

	user, err := h.users.Create(c.UserContext(), input.Email, hash)
	if errors.Is(err, repository.ErrDuplicate) {
		return conflict("User with email already exists")
	} else if err != nil {
		return internal("Failed to create user", err)
	}

	h.publish(events.ActionCreated, resourceUsers, user.ID)
	return success(c, fiber.StatusCreated, user)
}

// HandleGetOneUser godoc
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    id  path     string true "user id (uuid)"
// @Success  200 {object} Envelope{data=models.User}
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Router   /api/v1/user/{id} [get]
func (h *Handler) HandleGetOneUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("The requested user could not be found")
	} else if err != nil {
		return internal("Failed to fetch user", err)
	}
	return success(c, fiber.StatusOK, user)
}

// HandleLogin godoc
// @Summary  Check a user's credentials
// @Description No token is issued; the status code carries the result.
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    credentials body     models.LoginRequest true "email and password"
// @Success  200         {object} Envelope
// @Failure  400         {string} string
// @Failure  401         {string} string
// @Failure  404         {string} string
// @Failure  500         {string} string
// @Router   /api/v1/user/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var input models.LoginRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return validationError(err)
	}

	user, err := h.users.GetByEmail(c.UserContext(), input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("User with email does not exist")
	} else if err != nil {
		return internal("Failed to fetch user", err)
	}

	// So khớp mật khẩu
	ok, err := h.hasher.Verify(input.Password, user.Password)
	if err != nil {
		return internal("Failed to verify password", err)
	}
	if !ok {
		return unauthorized("Invalid password")
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{Status: statusSuccess})
}
