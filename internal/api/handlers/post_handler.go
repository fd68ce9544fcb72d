package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-pipeline/internal/service"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context(), c.Query("view", service.ViewAll))
	if err != nil {
		return failWith(c, "Failed to fetch posts", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"posts":   posts,
		"count":   len(posts),
	})
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return failWith(c, "Failed to fetch post", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	fields := new(transfer.PostFields)
	if err := c.BodyParser(fields); err != nil {
		return invalidBody(c, err)
	}

	postID, err := h.s.Create(c.Context(), fields)
	if err != nil {
		return failWith(c, "Failed to create post", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Manual post created successfully!",
		"postId":  postID,
	})
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	fields := new(transfer.PostFields)
	if err := c.BodyParser(fields); err != nil {
		return invalidBody(c, err)
	}

	if err := h.s.Update(c.Context(), c.Params("id"), fields); err != nil {
		return failWith(c, "Failed to update post", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Post updated successfully!",
	})
}

func (h *PostHandler) UpdateStatus(c *fiber.Ctx) error {
	update := new(transfer.StatusUpdate)
	if err := c.BodyParser(update); err != nil {
		return invalidBody(c, err)
	}

	if err := h.s.SetStatus(c.Context(), c.Params("id"), update.Status); err != nil {
		return failWith(c, "Failed to update post status", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Post status updated to: %s", update.Status),
	})
}

// ArchivePost backs DELETE. Records are never removed from the store.
func (h *PostHandler) ArchivePost(c *fiber.Ctx) error {
	if err := h.s.Archive(c.Context(), c.Params("id")); err != nil {
		return failWith(c, "Failed to archive post", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Post archived successfully!",
	})
}

func (h *PostHandler) DuplicatePost(c *fiber.Ctx) error {
	postID, err := h.s.Duplicate(c.Context(), c.Params("id"))
	if err != nil {
		return failWith(c, "Failed to duplicate post", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Post duplicated as a new draft!",
		"postId":  postID,
	})
}

func (h *PostHandler) PostHistory(c *fiber.Ctx) error {
	history, err := h.s.History(c.Context(), c.Params("id"))
	if err != nil {
		return failWith(c, "Failed to fetch posting history", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"history": history,
		"count":   len(history),
	})
}
