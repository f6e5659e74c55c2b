// file: internals/features/finance/ledger/controller/payment_controller.go
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

type PaymentController struct {
	Service   *service.Service
	Validator *validator.Validate
}

func NewPaymentController(svc *service.Service) *PaymentController {
	return &PaymentController{
		Service:   svc,
		Validator: validator.New(),
	}
}

// ========== Record ==========
// Respons membawa payment + nilai kwitansi (receipt_no monoton per sekolah).
func (ctl *PaymentController) Record(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	payDate, err := dto.ParseDatePtr(req.PaymentDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "payment_date invalid")
	}

	p, receipt, err := ctl.Service.RecordPayment(c.UserContext(), schoolID, service.RecordPaymentInput{
		DueItemID:   req.PaymentDueItemID,
		AmountIDR:   req.PaymentAmountIDR,
		Method:      req.PaymentMethod,
		Reference:   req.PaymentReference,
		CreatedBy:   userID,
		PaymentDate: payDate,
		Meta:        req.PaymentMeta,
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pembayaran dicatat", dto.RecordPaymentResponse{
		Payment: dto.FromModelPayment(p),
		Receipt: *receipt,
	})
}

// ========== Edit ==========
// Koreksi salah input; divalidasi ulang terhadap payment lain di item yg sama.
func (ctl *PaymentController) Edit(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "payment_id invalid")
	}

	var req dto.EditPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	p, err := ctl.Service.EditPayment(c.UserContext(), schoolID, id, service.EditPaymentInput{
		AmountIDR: req.PaymentAmountIDR,
		Method:    req.PaymentMethod,
		Reference: req.PaymentReference,
	})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Pembayaran diperbarui", dto.FromModelPayment(p))
}

// ========== Void ==========
// Append-only: baris tetap ada (nomor kwitansi tidak pernah dipakai ulang),
// hanya flag voided yang berubah.
func (ctl *PaymentController) Void(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "payment_id invalid")
	}

	p, err := ctl.Service.VoidPayment(c.UserContext(), schoolID, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Pembayaran dibatalkan", dto.FromModelPayment(p))
}

// ========== History per account ==========
func (ctl *PaymentController) ListByAccount(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	accountID, err := uuid.Parse(strings.TrimSpace(c.Params("account_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "account_id invalid")
	}

	list, err := ctl.Service.ListAccountPayments(c.UserContext(), schoolID, accountID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", dto.FromModelPayments(list))
}
