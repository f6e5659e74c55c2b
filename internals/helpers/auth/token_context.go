// file: internals/helpers/auth/token_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

/* ============================================
   Locals Keys (diisi middleware AuthJWT)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocSchoolID = "school_id" // string UUID (tenant aktif dari token)
	LocRoles    = "roles"     // []string
)

// GetSchoolIDFromToken: tenant aktif dari locals. Semua endpoint
// tenant-scoped WAJIB lewat sini — school_id tidak pernah dibaca dari body.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocSchoolID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id di token tidak valid")
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id di token tidak valid")
	}
	return id, nil
}

func RolesFromToken(c *fiber.Ctx) []string {
	switch v := c.Locals(LocRoles).(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func HasRole(c *fiber.Ctx, role string) bool {
	for _, r := range RolesFromToken(c) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

func IsOwner(c *fiber.Ctx) bool { return HasRole(c, constants.RoleOwner) }

func IsSchoolAdmin(c *fiber.Ctx) bool {
	return HasRole(c, constants.RoleAdmin) || IsOwner(c)
}

func IsTreasurer(c *fiber.Ctx) bool {
	return HasRole(c, constants.RoleTreasurer) || IsSchoolAdmin(c)
}
