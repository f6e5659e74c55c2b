// file: internals/features/people/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "sekolahku_backend/internals/features/finance/ledger/service"
	storage "sekolahku_backend/internals/features/finance/ledger/storage"
	studentController "sekolahku_backend/internals/features/people/students/controller"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ledger := service.New(storage.NewGormStore(db), storage.NewGormDirectory(db))

	ctl := studentController.NewStudentController(db, ledger)
	students := r.Group("/students", authmw.RequireSchoolAdmin("data siswa"))
	{
		students.Post("/", ctl.Create)
		students.Get("/", ctl.List)
		students.Patch("/:id", ctl.Patch)
		students.Delete("/:id", ctl.Delete)
	}
}
