package handler

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

var errPaymentConfig = errors.New("failed to get payment configuration")

func argsToValues(args *fasthttp.Args) url.Values {
	values := make(url.Values, args.Len())

	args.VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})

	return values
}

// formValues reads a urlencoded or multipart body into url.Values.
func formValues(ctx *fiber.Ctx) (url.Values, error) {
	if strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := ctx.MultipartForm()
		if err != nil {
			return nil, err
		}

		return url.Values(form.Value), nil
	}

	return argsToValues(ctx.Request().PostArgs()), nil
}

func queryValues(ctx *fiber.Ctx) url.Values {
	return argsToValues(ctx.Request().URI().QueryArgs())
}
