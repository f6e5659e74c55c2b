// file: internals/route/details/people_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	EmployeeRoute "sekolahku_backend/internals/features/people/employees/route"
	StudentRoute "sekolahku_backend/internals/features/people/students/route"
)

func PeopleAdminRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentAdminRoutes(r, db)
	EmployeeRoute.EmployeeAdminRoutes(r, db)
}
