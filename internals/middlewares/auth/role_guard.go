// file: internals/middlewares/auth/role_guard.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequireSchoolAdmin: hanya admin/owner sekolah yang lolos.
func RequireSchoolAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsSchoolAdmin(c) {
			return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// RequireTreasurer: bendahara (atau admin/owner) — gerbang fitur keuangan.
func RequireTreasurer(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsTreasurer(c) {
			return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorTreasurer(feature))
		}
		return c.Next()
	}
}
