// internals/helpers/get_user.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ===============================
   Ambil identitas dari Locals
   (diisi oleh middleware AuthJWT)
=================================*/

// GetUserIDFromToken membaca user_id dari Locals dan parse ke UUID.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid")
	}
	return id, nil
}

// GetRoleFromToken membaca role dari Locals; kosong kalau tidak ada.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
