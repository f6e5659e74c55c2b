// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	LedgerRoute "sekolahku_backend/internals/features/finance/ledger/route"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	LedgerRoute.LedgerAdminRoutes(r, db)
}
