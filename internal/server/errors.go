package server

import (
	"catalog/pkg/envelope"
	"catalog/pkg/httperror"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the single boundary that turns any handler error into a
// status code and an error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		if httpErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("Handler returned server error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		} else {
			zap.L().Warn("Handler returned client error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		}

		if httpErr.Details != nil {
			return c.Status(httpErr.Status).JSON(envelope.ErrorWithData(httpErr.Message, httpErr.Details))
		}
		return c.Status(httpErr.Status).JSON(envelope.Error(httpErr.Message))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		zap.L().Warn("Fiber error", zap.Int("status", fiberErr.Code), zap.String("message", fiberErr.Message))
		return c.Status(fiberErr.Code).JSON(envelope.Error(fiberErr.Message))
	}

	zap.L().Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(
		envelope.Error("An unexpected error occurred: " + err.Error()),
	)
}
