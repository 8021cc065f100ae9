package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-service/internal/api/validation"
	"github.com/spec-kit/healthcare-service/internal/auth"
	"github.com/spec-kit/healthcare-service/internal/domain"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

// bindJSON decodes the body into req and validates it. An empty body decodes as {}.
func bindJSON(c *fiber.Ctx, req any) error {
	return validation.Decode(c.Body(), req)
}

// pathID parses a positive integer path parameter. Anything else is reported as
// a missing resource so malformed and unknown ids look the same.
func pathID(c *fiber.Ctx, param, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewNotFound(resource)
	}
	return id, nil
}

func caller(c *fiber.Ctx) (domain.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, apperrors.NewUnauthorized(apperrors.CodeTokenMissing, "no token, authorization denied")
	}
	return identity, nil
}

func removed(c *fiber.Ctx, resource string) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"message": resource + " removed successfully"}})
}
