package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kopi/pkg/failure"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	err := response(ctx, code, Data[any]{Data: payload})
	if err != nil {
		return err
	}

	return nil
}

func WithMessage(ctx *fiber.Ctx, code int, message string) error {
	return response(ctx, code, Message{Message: message})
}

func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)
	errMsg := err.Error()

	return response(ctx, code, Error{Error: &errMsg})
}

// WithText writes a bare text/plain body, for peers that match on the literal reply.
func WithText(ctx *fiber.Ctx, code int, body string) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	return ctx.Status(code).SendString(body)
}

func WithRedirect(ctx *fiber.Ctx, location string) error {
	return ctx.Redirect(location, fiber.StatusSeeOther)
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
