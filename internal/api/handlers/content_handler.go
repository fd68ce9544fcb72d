package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/queue"
	"github.com/maheshrc27/content-pipeline/internal/service"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

type ContentHandler struct {
	cfg config.Config
	cs  service.ContentService
	ps  service.PublishService
	enq queue.Enqueuer
}

// NewContentHandler wires the worker endpoints. enq may be nil when Redis is
// not configured, in which case autopilot runs are refused.
func NewContentHandler(cfg config.Config, cs service.ContentService, ps service.PublishService, enq queue.Enqueuer) *ContentHandler {
	return &ContentHandler{cfg: cfg, cs: cs, ps: ps, enq: enq}
}

func (h *ContentHandler) GeneratePosts(c *fiber.Ctx) error {
	req := transfer.GenerateRequest{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c, err)
		}
	}

	count, err := h.cs.Generate(c.Context(), req)
	if err != nil {
		return failWith(c, "Failed to generate posts", err)
	}

	message := fmt.Sprintf("Successfully generated %d new post(s)!", count)
	if count == 0 {
		message = "No content was generated."
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"count":   count,
	})
}

func (h *ContentHandler) PublishPosts(c *fiber.Ctx) error {
	summary, err := h.ps.PublishReady(c.Context(), c.QueryInt("max", h.cfg.PublishMaxBatch))
	if err != nil {
		return failWith(c, "Failed to publish posts", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Publishing process completed!",
		"summary": summary,
	})
}

func (h *ContentHandler) RegenerateImage(c *fiber.Ctx) error {
	post, err := h.cs.RegenerateImages(c.Context(), c.Params("id"))
	if err != nil {
		return failWith(c, "Failed to regenerate images", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "New image options generated!",
		"post":    post,
	})
}

func (h *ContentHandler) RunAutopilot(c *fiber.Ctx) error {
	if h.enq == nil {
		return Fail(c, fiber.StatusServiceUnavailable, "Background queue is not configured", nil)
	}

	err := queue.EnqueueGeneratePosts(h.enq, queue.GeneratePostsPayload{
		Topic:    h.cfg.TargetTopic,
		Audience: h.cfg.TargetAudience,
		Count:    h.cfg.PostsPerRun,
	})
	if err != nil {
		return failWith(c, "Error scheduling generation", err)
	}

	err = queue.EnqueuePublishPosts(h.enq, queue.PublishPostsPayload{MaxBatch: h.cfg.PublishMaxBatch})
	if err != nil {
		return failWith(c, "Error scheduling publishing", err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"message": "Autopilot run scheduled",
	})
}
