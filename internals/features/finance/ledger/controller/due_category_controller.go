// file: internals/features/finance/ledger/controller/due_category_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/finance/ledger/dto"
	service "sekolahku_backend/internals/features/finance/ledger/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type DueCategoryController struct {
	Service   *service.Service
	Validator *validator.Validate
}

func NewDueCategoryController(svc *service.Service) *DueCategoryController {
	return &DueCategoryController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *DueCategoryController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.CreateDueCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cat, err := ctl.Service.CreateCategory(c.UserContext(), schoolID, req.ToInput())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kategori iuran dibuat", dto.FromModelDueCategory(cat))
}

// ========== List ==========
func (ctl *DueCategoryController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	list, err := ctl.Service.ListCategories(c.UserContext(), schoolID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", dto.FromModelDueCategories(list))
}

// ========== Update (PATCH) ==========
func (ctl *DueCategoryController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "due_category_id invalid")
	}

	var req dto.UpdateDueCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cat, err := ctl.Service.UpdateCategory(c.UserContext(), schoolID, id, req.ToInput())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Kategori iuran diperbarui", dto.FromModelDueCategory(cat))
}

// ========== Delete ==========
// Ditolak 409 selama masih ada due item yang menunjuk kategori ini.
func (ctl *DueCategoryController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "due_category_id invalid")
	}

	if err := ctl.Service.DeleteCategory(c.UserContext(), schoolID, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Kategori iuran dihapus", nil)
}
