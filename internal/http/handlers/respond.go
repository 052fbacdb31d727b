package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
)

// respondError maps a service error to a response. Internal errors are logged
// with the request id and masked from the client.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := apperr.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:     apperr.Message(err),
		RequestID: middleware.GetRequestID(c),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
