package handlers

import (
	"errors"
	"fmt"

	"github.com/biosecret/go-crud/events"
	"github.com/biosecret/go-crud/models"
	"github.com/biosecret/go-crud/repository"
	"github.com/gofiber/fiber/v2"
)

const resourcePosts = "posts"

const postNotFoundMessage = "The requested post could not be found"

// HandleAllPosts godoc
// @Summary  List posts
// @Tags     posts
// @Produce  json
// @Param    offset query int false "page number, starting at 1" default(1)
// @Param    limit  query int false "posts per page (max 100)"   default(10)
// @Success  200 {object} Envelope{data=[]models.Post}
// @Failure  400 {string} string
// @Failure  500 {string} string
// @Router   /api/v1/post [get]
func (h *Handler) HandleAllPosts(c *fiber.Ctx) error {
	offset, limit, err := pagination(c)
	if err != nil {
		return err
	}

	n, skip, err := models.PostListQuery{Offset: offset, Limit: limit}.Resolve()
	if err != nil {
		return validationError(err)
	}

	posts, err := h.posts.List(c.UserContext(), n, skip)
	if err != nil {
		return internal("Failed to fetch posts", err)
	}
	return success(c, fiber.StatusOK, posts)
}

// HandleCreatePost godoc
// @Summary  Create a post
// @Tags     posts
// @Accept   json
// @Produce  json
// @Param    post body     models.CreatePostRequest true "title (1-100 chars) and body (1-1000 chars)"
// @Success  201  {object} Envelope{data=models.Post}
// @Failure  400  {string} string
// @Failure  500  {string} string
// @Router   /api/v1/post [post]
func (h *Handler) HandleCreatePost(c *fiber.Ctx) error {
	var input models.CreatePostRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return validationError(err)
	}

	post, err := h.posts.Create(c.UserContext(), input.Title, input.Body)
	if err != nil {
		return internal("Failed to create post", err)
	}

	h.publish(events.ActionCreated, resourcePosts, post.ID)
	return success(c, fiber.StatusCreated, post)
}

// HandleGetOnePost godoc
// @Summary  Get a post
// @Tags     posts
// @Produce  json
// @Param    id  path     string true "post id (uuid)"
// @Success  200 {object} Envelope{data=models.Post}
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Router   /api/v1/post/{id} [get]
func (h *Handler) HandleGetOnePost(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.posts.Get(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(postNotFoundMessage)
	} else if err != nil {
		return internal("Failed to fetch post", err)
	}
	return success(c, fiber.StatusOK, post)
}

// HandleEditPost godoc
// @Summary  Edit a post
// @Description Fields left out of the body keep their current value.
// @Tags     posts
// @Accept   json
// @Produce  json
// @Param    id   path     string                 true "post id (uuid)"
// @Param    post body     models.EditPostRequest true "fields to change"
// @Success  200  {object} Envelope{data=models.Post}
// @Failure  400  {string} string
// @Failure  404  {string} string
// @Failure  500  {string} string
// @Router   /api/v1/post/{id} [patch]
func (h *Handler) HandleEditPost(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input models.EditPostRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return validationError(err)
	}

	ctx := c.UserContext()
	current, err := h.posts.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(postNotFoundMessage)
	} else if err != nil {
		return internal("Failed to fetch post", err)
	}

	title, body := input.Apply(current)
	post, err := h.posts.Update(ctx, id, title, body, h.now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		// bài viết bị xóa giữa lúc đọc và lúc cập nhật
		return notFound(postNotFoundMessage)
	} else if err != nil {
		return internal("Failed to update post", err)
	}

	h.publish(events.ActionUpdated, resourcePosts, post.ID)
	return success(c, fiber.StatusOK, post)
}

// HandleDeletePost godoc
// @Summary  Delete a post
// @Tags     posts
// @Produce  json
// @Param    id  path     string true "post id (uuid)"
// @Success  200 {object} Envelope
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Failure  500 {string} string
// @Router   /api/v1/post/{id} [delete]
func (h *Handler) HandleDeletePost(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.posts.Delete(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(fmt.Sprintf("Post with ID: %s not found", id))
	} else if err != nil {
		return internal(genericInternalMessage, err)
	}

	h.publish(events.ActionDeleted, resourcePosts, id)
	return successMessage(c, "Post deleted")
}
