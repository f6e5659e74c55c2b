// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	PeriodRoute "sekolahku_backend/internals/features/academics/periods/route"
)

func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	PeriodRoute.PeriodAdminRoutes(r, db)
}
