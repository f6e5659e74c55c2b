// file: internals/features/finance/ledger/controller/generate_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "sekolahku_backend/internals/features/finance/ledger/dto"
	service "sekolahku_backend/internals/features/finance/ledger/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type GenerateController struct {
	Service   *service.Service
	Validator *validator.Validate
}

func NewGenerateController(svc *service.Service) *GenerateController {
	return &GenerateController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// ========== Generate ==========
// Bulk-apply satu kategori ke seluruh scope (mis. iuran asrama bulanan untuk
// semua penghuni aktif). Idempotent: run ulang hanya menambah skipped.
func (ctl *GenerateController) Generate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.GenerateDuesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	dueDate, err := dto.ParseDatePtr(req.GenerateDueDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "generate_due_date invalid")
	}

	report, err := ctl.Service.GeneratePeriodicDues(c.UserContext(), schoolID, service.GenerateRequest{
		CategoryID: req.GenerateCategoryID,
		PeriodKey:  req.GeneratePeriodKey,
		AmountIDR:  req.GenerateAmountIDR,
		Title:      req.GenerateTitle,
		DueDate:    dueDate,
		Scope: service.AccountScope{
			SubjectType: req.GenerateSubjectType,
			PeriodID:    req.GeneratePeriodID,
			SubjectIDs:  req.GenerateSubjectIDs,
			HostelOnly:  req.GenerateHostelOnly,
			ActiveOnly:  true,
		},
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Generate selesai", report)
}

// ========== Summary ==========
// Agregat expected/collected/pending untuk dashboard bendahara.
func (ctl *GenerateController) Summary(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	f, err := filterFromQuery(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	agg, err := ctl.Service.Aggregate(c.UserContext(), schoolID, f)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", agg)
}
