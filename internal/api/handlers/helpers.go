package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/service"
)

var badRequestErrors = []error{
	models.ErrMissingPostID,
	models.ErrInvalidStatus,
	models.ErrInvalidPlatform,
	models.ErrInvalidPostType,
	models.ErrInvalidRepeatDay,
	models.ErrPublishedByWorkerOnly,
	models.ErrImageNotInOptions,
	service.ErrInvalidView,
}

func statusFor(err error) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return fiber.StatusBadRequest
		}
	}
	switch {
	case errors.Is(err, models.ErrPostNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrAlreadyPublished):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// Fail writes the failure envelope shared by every endpoint.
func Fail(c *fiber.Ctx, status int, message string, err error) error {
	detail := message
	if err != nil {
		detail = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   detail,
	})
}

func failWith(c *fiber.Ctx, message string, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		slog.Error(message, "error", err)
	}
	return Fail(c, status, message, err)
}

func invalidBody(c *fiber.Ctx, err error) error {
	slog.Info(err.Error())
	return Fail(c, fiber.StatusBadRequest, "Invalid request body", err)
}
