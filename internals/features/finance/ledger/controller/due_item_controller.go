// file: internals/features/finance/ledger/controller/due_item_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/finance/ledger/dto"
	model "sekolahku_backend/internals/features/finance/ledger/model"
	service "sekolahku_backend/internals/features/finance/ledger/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type DueItemController struct {
	Service   *service.Service
	Validator *validator.Validate
}

func NewDueItemController(svc *service.Service) *DueItemController {
	return &DueItemController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// ========== Create ==========
// Account subject di-resolve otomatis (dibuat bila belum ada) pada periode
// yang diminta, default periode aktif.
func (ctl *DueItemController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.CreateDueItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	dueDate, err := dto.ParseDatePtr(req.DueItemDueDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "due_item_due_date invalid")
	}

	ctx := c.UserContext()

	periodID := req.DueItemPeriodID
	if periodID == nil {
		active, err := ctl.Service.ActivePeriod(ctx, schoolID)
		if err != nil {
			return helper.FromServiceError(c, err)
		}
		periodID = &active.AcademicPeriodID
	}

	acc, err := ctl.Service.EnsureAccount(ctx, schoolID, req.DueItemSubjectType, req.DueItemSubjectID, *periodID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	item, err := ctl.Service.CreateDueItem(ctx, schoolID, service.NewDueItem{
		AccountID:  acc.AccountID,
		CategoryID: req.DueItemCategoryID,
		Title:      req.DueItemTitle,
		AmountIDR:  req.DueItemAmountIDR,
		PeriodKey:  req.DueItemPeriodKey,
		DueDate:    dueDate,
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tagihan dibuat",
		dto.FromDueItemWithPaid(&model.DueItemWithPaid{DueItem: *item}))
}

// ========== Detail ==========
func (ctl *DueItemController) Detail(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "due_item_id invalid")
	}

	d, err := ctl.Service.GetDueItemDetail(c.UserContext(), schoolID, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", dto.FromDueItemDetail(d))
}

// ========== List ==========
// Filter via query: category_id, account_id, period_id, period_key,
// subject_type, kind, status (status difilter setelah derivasi).
func (ctl *DueItemController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	f, err := filterFromQuery(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := ctl.Service.ListDueItems(c.UserContext(), schoolID, f)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	resp := dto.FromDueItemsWithPaid(rows)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		filtered := resp[:0]
		for _, it := range resp {
			if string(it.Status) == status {
				filtered = append(filtered, it)
			}
		}
		resp = filtered
	}
	return helper.Success(c, "OK", resp)
}

// ========== Update nominal ==========
// Nominal baru tidak boleh di bawah total yang sudah terbayar.
func (ctl *DueItemController) UpdateAmount(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "due_item_id invalid")
	}

	var req dto.UpdateDueItemAmountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	item, err := ctl.Service.UpdateDueItemAmount(c.UserContext(), schoolID, id, req.DueItemAmountIDR)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Nominal tagihan diperbarui",
		dto.FromDueItemWithPaid(&model.DueItemWithPaid{DueItem: *item}))
}

/* ===================== helpers ===================== */

func filterFromQuery(c *fiber.Ctx) (service.Filter, error) {
	var f service.Filter

	if v := strings.TrimSpace(c.Query("category_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "category_id invalid")
		}
		f.CategoryID = &id
	}
	if v := strings.TrimSpace(c.Query("account_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "account_id invalid")
		}
		f.AccountID = &id
	}
	if v := strings.TrimSpace(c.Query("period_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "period_id invalid")
		}
		f.PeriodID = &id
	}
	if v := strings.TrimSpace(c.Query("period_key")); v != "" {
		f.PeriodKey = &v
	}
	if v := strings.TrimSpace(c.Query("subject_type")); v != "" {
		st := model.SubjectType(v)
		if !st.Valid() {
			return f, fiber.NewError(fiber.StatusBadRequest, "subject_type invalid")
		}
		f.SubjectType = &st
	}
	if v := strings.TrimSpace(c.Query("kind")); v != "" {
		k := model.DueKind(v)
		if !k.Valid() {
			return f, fiber.NewError(fiber.StatusBadRequest, "kind invalid")
		}
		f.Kind = &k
	}
	return f, nil
}
