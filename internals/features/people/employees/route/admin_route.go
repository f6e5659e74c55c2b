// file: internals/features/people/employees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "sekolahku_backend/internals/features/finance/ledger/service"
	storage "sekolahku_backend/internals/features/finance/ledger/storage"
	employeeController "sekolahku_backend/internals/features/people/employees/controller"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func EmployeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ledger := service.New(storage.NewGormStore(db), storage.NewGormDirectory(db))

	ctl := employeeController.NewEmployeeController(db, ledger)
	employees := r.Group("/employees", authmw.RequireSchoolAdmin("data pegawai"))
	{
		employees.Post("/", ctl.Create)
		employees.Get("/", ctl.List)
		employees.Patch("/:id", ctl.Patch)
		employees.Delete("/:id", ctl.Delete)
	}
}
