package server

import (
	"catalog/pkg/envelope"
	"catalog/pkg/httperror"
	"catalog/pkg/validation"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (Res, error)
}

// handle adapts an orchestration handler to fiber: it binds the request,
// validates it, runs the handler and wraps the result in an envelope.
// Errors are returned to the app's error handler.
func handle[R Request, Res Response](handler HandlerInterface[R, Res], status int, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return httperror.BadRequest(
				"request.invalid_body",
				"Invalid body",
				fiber.Map{"error": err.Error()},
			)
		}

		if err := c.ParamsParser(&req); err != nil {
			return httperror.BadRequest(
				"request.invalid_path_params",
				"Invalid path params",
				fiber.Map{"error": err.Error()},
			)
		}

		if err := c.QueryParser(&req); err != nil {
			return httperror.BadRequest(
				"request.invalid_query_params",
				"Invalid query params",
				fiber.Map{"error": err.Error()},
			)
		}

		fields, err := validation.Struct(&req)
		if err != nil {
			return err
		}
		if fields != nil {
			return httperror.ValidationFailed(fields)
		}

		res, err := handler.Handle(c.UserContext(), &req)
		if err != nil {
			return err
		}

		return c.Status(status).JSON(envelope.SuccessWithMessage(message, res))
	}
}
