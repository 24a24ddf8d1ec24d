package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func parseUUIDParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(key))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, badRequest(ReasonInvalidInput, "Invalid "+key, err)
	}
	return id, nil
}
