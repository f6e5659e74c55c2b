// file: internals/features/academics/periods/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodController "sekolahku_backend/internals/features/academics/periods/controller"
	service "sekolahku_backend/internals/features/finance/ledger/service"
	storage "sekolahku_backend/internals/features/finance/ledger/storage"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

func PeriodAdminRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.New(storage.NewGormStore(db), storage.NewGormDirectory(db))

	ctl := periodController.NewAcademicPeriodController(svc)
	periods := r.Group("/academic-periods", authmw.RequireSchoolAdmin("periode akademik"))
	{
		periods.Post("/", ctl.Create)
		periods.Get("/", ctl.List)
		periods.Post("/:id/activate", ctl.Activate)
	}
}
