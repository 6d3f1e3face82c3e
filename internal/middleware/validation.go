package middleware

import (
	"strconv"

	"quizmaster/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const paramLocalPrefix = "validated_param_"

// ValidateIDParams checks that each named route parameter is a positive
// integer id and stores the parsed value for ParamID.
func ValidateIDParams(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors
		for _, name := range names {
			raw := c.Params(name)
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				errs = append(errs, domain.NewInvalidFormatError(name, raw))
				continue
			}
			c.Locals(paramLocalPrefix+name, id)
		}
		if len(errs) > 0 {
			return errs // handled by ErrorHandler
		}
		return c.Next()
	}
}

// ParamID returns a route parameter validated by ValidateIDParams, or 0.
func ParamID(c *fiber.Ctx, name string) int64 {
	id, _ := c.Locals(paramLocalPrefix + name).(int64)
	return id
}
