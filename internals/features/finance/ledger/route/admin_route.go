// file: internals/features/finance/ledger/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ledgerController "sekolahku_backend/internals/features/finance/ledger/controller"
	service "sekolahku_backend/internals/features/finance/ledger/service"
	storage "sekolahku_backend/internals/features/finance/ledger/storage"
	"sekolahku_backend/internals/middlewares"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

// LedgerAdminRoutes: seluruh operasi iuran & pembayaran, tenant dari token.
func LedgerAdminRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.New(storage.NewGormStore(db), storage.NewGormDirectory(db))

	guard := authmw.RequireTreasurer("keuangan")

	catCtl := ledgerController.NewDueCategoryController(svc)
	cats := r.Group("/due-categories", guard)
	{
		cats.Post("/", catCtl.Create)
		cats.Get("/", catCtl.List)
		cats.Patch("/:id", catCtl.Update)
		cats.Delete("/:id", catCtl.Delete)
	}

	itemCtl := ledgerController.NewDueItemController(svc)
	items := r.Group("/due-items", guard)
	{
		items.Post("/", itemCtl.Create)
		items.Get("/", itemCtl.List)
		items.Get("/:id", itemCtl.Detail)
		items.Patch("/:id/amount", itemCtl.UpdateAmount)
	}

	genCtl := ledgerController.NewGenerateController(svc)
	dues := r.Group("/dues", guard)
	{
		dues.Post("/generate", genCtl.Generate)
		dues.Get("/summary", genCtl.Summary)
	}

	payCtl := ledgerController.NewPaymentController(svc)
	pays := r.Group("/payments", guard, middlewares.PaymentRateLimiter())
	{
		pays.Post("/", payCtl.Record)
		pays.Patch("/:id", payCtl.Edit)
		pays.Post("/:id/void", payCtl.Void)
		pays.Get("/account/:account_id", payCtl.ListByAccount)
	}
}
