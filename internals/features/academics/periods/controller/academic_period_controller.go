// file: internals/features/academics/periods/controller/academic_period_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/academics/periods/dto"
	ledgerservice "sekolahku_backend/internals/features/finance/ledger/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AcademicPeriodController struct {
	Service   *ledgerservice.Service
	Validator *validator.Validate
}

func NewAcademicPeriodController(svc *ledgerservice.Service) *AcademicPeriodController {
	return &AcademicPeriodController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *AcademicPeriodController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.CreateAcademicPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := time.Parse("2006-01-02", req.AcademicPeriodStartDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "academic_period_start_date invalid")
	}
	end, err := time.Parse("2006-01-02", req.AcademicPeriodEndDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "academic_period_end_date invalid")
	}

	p, err := ctl.Service.CreatePeriod(c.UserContext(), schoolID, ledgerservice.NewPeriod{
		Label:     req.AcademicPeriodLabel,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Periode akademik dibuat", dto.FromModelAcademicPeriod(p))
}

// ========== List ==========
func (ctl *AcademicPeriodController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	list, err := ctl.Service.ListPeriods(c.UserContext(), schoolID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", dto.FromModelAcademicPeriods(list))
}

// ========== Activate ==========
// Periode aktif lama otomatis completed — maksimal satu aktif per sekolah.
func (ctl *AcademicPeriodController) Activate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "academic_period_id invalid")
	}

	p, err := ctl.Service.ActivatePeriod(c.UserContext(), schoolID, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Periode diaktifkan", dto.FromModelAcademicPeriod(p))
}
