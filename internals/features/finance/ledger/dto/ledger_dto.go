// file: internals/features/finance/ledger/dto/ledger_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/finance/ledger/model"
	service "sekolahku_backend/internals/features/finance/ledger/service"
)

/* =========================================================
   REQUEST: Due Category
   ========================================================= */

type CreateDueCategoryRequest struct {
	DueCategoryCode             string        `json:"due_category_code"  validate:"required,max=40"`
	DueCategoryLabel            string        `json:"due_category_label" validate:"required,max=80"`
	DueCategoryKind             model.DueKind `json:"due_category_kind"  validate:"required,oneof=binary cumulative"`
	DueCategoryDefaultAmountIDR int64         `json:"due_category_default_amount_idr" validate:"omitempty,min=0"`
}

func (r *CreateDueCategoryRequest) ToInput() service.NewDueCategory {
	return service.NewDueCategory{
		Code:             r.DueCategoryCode,
		Label:            r.DueCategoryLabel,
		Kind:             r.DueCategoryKind,
		DefaultAmountIDR: r.DueCategoryDefaultAmountIDR,
	}
}

type UpdateDueCategoryRequest struct {
	DueCategoryLabel            *string `json:"due_category_label" validate:"omitempty,max=80"`
	DueCategoryDefaultAmountIDR *int64  `json:"due_category_default_amount_idr" validate:"omitempty,min=0"`
	DueCategoryIsActive         *bool   `json:"due_category_is_active"`
}

func (r *UpdateDueCategoryRequest) ToInput() service.UpdateDueCategory {
	return service.UpdateDueCategory{
		Label:            r.DueCategoryLabel,
		DefaultAmountIDR: r.DueCategoryDefaultAmountIDR,
		IsActive:         r.DueCategoryIsActive,
	}
}

type DueCategoryResponse struct {
	DueCategoryID               uuid.UUID     `json:"due_category_id"`
	DueCategoryCode             string        `json:"due_category_code"`
	DueCategoryLabel            string        `json:"due_category_label"`
	DueCategoryKind             model.DueKind `json:"due_category_kind"`
	DueCategoryDefaultAmountIDR int64         `json:"due_category_default_amount_idr"`
	DueCategoryIsActive         bool          `json:"due_category_is_active"`
	DueCategoryCreatedAt        time.Time     `json:"due_category_created_at"`
}

func FromModelDueCategory(c *model.DueCategory) DueCategoryResponse {
	return DueCategoryResponse{
		DueCategoryID:               c.DueCategoryID,
		DueCategoryCode:             c.DueCategoryCode,
		DueCategoryLabel:            c.DueCategoryLabel,
		DueCategoryKind:             c.DueCategoryKind,
		DueCategoryDefaultAmountIDR: c.DueCategoryDefaultAmountIDR,
		DueCategoryIsActive:         c.DueCategoryIsActive,
		DueCategoryCreatedAt:        c.DueCategoryCreatedAt,
	}
}

func FromModelDueCategories(list []model.DueCategory) []DueCategoryResponse {
	out := make([]DueCategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelDueCategory(&list[i]))
	}
	return out
}

/* =========================================================
   REQUEST: Due Item
   ========================================================= */

type CreateDueItemRequest struct {
	DueItemSubjectType model.SubjectType `json:"due_item_subject_type" validate:"required,oneof=student employee"`
	DueItemSubjectID   uuid.UUID         `json:"due_item_subject_id"   validate:"required"`
	DueItemPeriodID    *uuid.UUID        `json:"due_item_period_id"` // default: periode aktif
	DueItemCategoryID  uuid.UUID         `json:"due_item_category_id"  validate:"required"`

	DueItemTitle     string  `json:"due_item_title" validate:"omitempty,max=160"`
	DueItemAmountIDR int64   `json:"due_item_amount_idr" validate:"required,min=1"`
	DueItemPeriodKey string  `json:"due_item_period_key" validate:"required,max=60"`
	DueItemDueDate   *string `json:"due_item_due_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateDueItemAmountRequest struct {
	DueItemAmountIDR int64 `json:"due_item_amount_idr" validate:"required,min=1"`
}

type DueItemResponse struct {
	DueItemID         uuid.UUID       `json:"due_item_id"`
	DueItemAccountID  uuid.UUID       `json:"due_item_account_id"`
	DueItemCategoryID uuid.UUID       `json:"due_item_category_id"`
	DueItemKind       model.DueKind   `json:"due_item_kind"`
	DueItemTitle      string          `json:"due_item_title"`
	DueItemPeriodKey  string          `json:"due_item_period_key"`
	DueItemDueDate    *time.Time      `json:"due_item_due_date,omitempty"`
	TotalAmountIDR    int64           `json:"total_amount_idr"`
	PaidTotalIDR      int64           `json:"paid_total_idr"`
	BalanceIDR        int64           `json:"balance_idr"`
	Status            model.DueStatus `json:"status"`

	DeletedSubjectName        *string `json:"deleted_subject_name,omitempty"`
	DeletedSubjectReferenceNo *string `json:"deleted_subject_reference_no,omitempty"`
}

// FromDueItemWithPaid: status & balance diturunkan, tidak pernah dibaca
// dari kolom tersimpan.
func FromDueItemWithPaid(row *model.DueItemWithPaid) DueItemResponse {
	return DueItemResponse{
		DueItemID:                 row.DueItemID,
		DueItemAccountID:          row.DueItemAccountID,
		DueItemCategoryID:         row.DueItemCategoryID,
		DueItemKind:               row.DueItemKind,
		DueItemTitle:              row.DueItemTitle,
		DueItemPeriodKey:          row.DueItemPeriodKey,
		DueItemDueDate:            row.DueItemDueDate,
		TotalAmountIDR:            row.DueItemTotalAmountIDR,
		PaidTotalIDR:              row.PaidTotalIDR,
		BalanceIDR:                row.DueItemTotalAmountIDR - row.PaidTotalIDR,
		Status:                    service.StatusFromTotals(row.DueItemTotalAmountIDR, row.PaidTotalIDR),
		DeletedSubjectName:        row.DueItemDeletedSubjectName,
		DeletedSubjectReferenceNo: row.DueItemDeletedSubjectReferenceNo,
	}
}

func FromDueItemsWithPaid(rows []model.DueItemWithPaid) []DueItemResponse {
	out := make([]DueItemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromDueItemWithPaid(&rows[i]))
	}
	return out
}

type DueItemDetailResponse struct {
	DueItemResponse
	Payments []PaymentResponse `json:"payments"`
}

func FromDueItemDetail(d *service.DueItemDetail) DueItemDetailResponse {
	return DueItemDetailResponse{
		DueItemResponse: FromDueItemWithPaid(&model.DueItemWithPaid{
			DueItem:      d.Item,
			PaidTotalIDR: d.PaidTotal,
		}),
		Payments: FromModelPayments(d.Payments),
	}
}

/* =========================================================
   REQUEST: Bulk Generate
   ========================================================= */

type GenerateDuesRequest struct {
	GenerateCategoryID uuid.UUID `json:"generate_category_id" validate:"required"`
	GeneratePeriodKey  string    `json:"generate_period_key"  validate:"required,max=60"`
	GenerateAmountIDR  int64     `json:"generate_amount_idr"  validate:"omitempty,min=0"`
	GenerateTitle      string    `json:"generate_title"       validate:"omitempty,max=160"`
	GenerateDueDate    *string   `json:"generate_due_date"    validate:"omitempty,datetime=2006-01-02"`

	// Scope
	GenerateSubjectType model.SubjectType `json:"generate_subject_type" validate:"required,oneof=student employee"`
	GeneratePeriodID    *uuid.UUID        `json:"generate_period_id"`
	GenerateSubjectIDs  []uuid.UUID       `json:"generate_subject_ids"`
	GenerateHostelOnly  bool              `json:"generate_hostel_only"`
}

/* =========================================================
   REQUEST: Payments
   ========================================================= */

type RecordPaymentRequest struct {
	PaymentDueItemID uuid.UUID           `json:"payment_due_item_id" validate:"required"`
	PaymentAmountIDR int64               `json:"payment_amount_idr"  validate:"required,min=1"`
	PaymentMethod    model.PaymentMethod `json:"payment_method"      validate:"required,oneof=cash bank_transfer upi cheque"`
	PaymentReference string              `json:"payment_reference"   validate:"omitempty,max=120"`
	PaymentDate      *string             `json:"payment_date"        validate:"omitempty,datetime=2006-01-02"`
	PaymentMeta      datatypes.JSONMap   `json:"payment_meta"`
}

type EditPaymentRequest struct {
	PaymentAmountIDR int64               `json:"payment_amount_idr" validate:"required,min=1"`
	PaymentMethod    model.PaymentMethod `json:"payment_method"     validate:"required,oneof=cash bank_transfer upi cheque"`
	PaymentReference string              `json:"payment_reference"  validate:"omitempty,max=120"`
}

type PaymentResponse struct {
	PaymentID        uuid.UUID           `json:"payment_id"`
	PaymentDueItemID uuid.UUID           `json:"payment_due_item_id"`
	PaymentAmountIDR int64               `json:"payment_amount_idr"`
	PaymentMethod    model.PaymentMethod `json:"payment_method"`
	PaymentReference *string             `json:"payment_reference,omitempty"`
	PaymentReceiptNo int64               `json:"payment_receipt_no"`
	PaymentDate      time.Time           `json:"payment_date"`
	PaymentVoided    bool                `json:"payment_voided"`
	PaymentMeta      datatypes.JSONMap   `json:"payment_meta,omitempty"`

	DeletedSubjectName        *string `json:"deleted_subject_name,omitempty"`
	DeletedSubjectReferenceNo *string `json:"deleted_subject_reference_no,omitempty"`
}

func FromModelPayment(p *model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:                 p.PaymentID,
		PaymentDueItemID:          p.PaymentDueItemID,
		PaymentAmountIDR:          p.PaymentAmountIDR,
		PaymentMethod:             p.PaymentMethod,
		PaymentReference:          p.PaymentReference,
		PaymentReceiptNo:          p.PaymentReceiptNo,
		PaymentDate:               p.PaymentDate,
		PaymentVoided:             p.PaymentVoided,
		PaymentMeta:               p.PaymentMeta,
		DeletedSubjectName:        p.PaymentDeletedSubjectName,
		DeletedSubjectReferenceNo: p.PaymentDeletedSubjectReferenceNo,
	}
}

func FromModelPayments(list []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelPayment(&list[i]))
	}
	return out
}

type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Receipt service.Receipt `json:"receipt"`
}

/* =========================================================
   Shared: tanggal "YYYY-MM-DD" opsional
   ========================================================= */

func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
