// file: internals/features/finance/ledger/service/catalog.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/ledger/model"
)

/* ===================== Dues Catalog ===================== */

type NewDueCategory struct {
	Code             string
	Label            string
	Kind             model.DueKind
	DefaultAmountIDR int64
}

func (s *Service) CreateCategory(ctx context.Context, schoolID uuid.UUID, in NewDueCategory) (*model.DueCategory, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, NewValidationError("kode kategori wajib diisi")
	}
	if !in.Kind.Valid() {
		return nil, NewValidationError("kind kategori tidak dikenal: %s", in.Kind)
	}
	if in.DefaultAmountIDR < 0 {
		return nil, NewValidationError("nominal default tidak boleh negatif")
	}
	c := &model.DueCategory{
		DueCategorySchoolID:         schoolID,
		DueCategoryCode:             code,
		DueCategoryLabel:            strings.TrimSpace(in.Label),
		DueCategoryKind:             in.Kind,
		DueCategoryDefaultAmountIDR: in.DefaultAmountIDR,
		DueCategoryIsActive:         true,
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		if err == ErrDuplicate {
			return nil, NewConflictError("kategori dengan kode %s sudah ada", code)
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context, schoolID uuid.UUID) ([]model.DueCategory, error) {
	return s.store.ListCategories(ctx, schoolID)
}

// UpdateDueCategory: field pointer = partial update (pola PATCH).
// Code & kind immutable setelah dibuat — kind menentukan perilaku semua
// due item turunannya.
type UpdateDueCategory struct {
	Label            *string
	DefaultAmountIDR *int64
	IsActive         *bool
}

func (s *Service) UpdateCategory(ctx context.Context, schoolID, categoryID uuid.UUID, in UpdateDueCategory) (*model.DueCategory, error) {
	c, err := s.store.GetCategory(ctx, schoolID, categoryID)
	if err != nil {
		if err == ErrNotFound {
			return nil, NewNotFoundError("kategori tidak ditemukan")
		}
		return nil, err
	}
	if in.Label != nil {
		label := strings.TrimSpace(*in.Label)
		if label == "" {
			return nil, NewValidationError("label kategori tidak boleh kosong")
		}
		c.DueCategoryLabel = label
	}
	if in.DefaultAmountIDR != nil {
		if *in.DefaultAmountIDR < 0 {
			return nil, NewValidationError("nominal default tidak boleh negatif")
		}
		c.DueCategoryDefaultAmountIDR = *in.DefaultAmountIDR
	}
	if in.IsActive != nil {
		c.DueCategoryIsActive = *in.IsActive
	}
	if err := s.store.SaveCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory ada di guard.go (Reconciliation Guard).

/* ===================== Create Due Item ===================== */

type NewDueItem struct {
	AccountID uuid.UUID
	CategoryID uuid.UUID
	Title     string
	AmountIDR int64
	PeriodKey string // dedupe key spesifik kategori (fee-definition id / "MM-YYYY")
	DueDate   *time.Time
}

// CreateDueItem membuat satu kewajiban terhadap account.
// ValidationError jika amount ≤ 0 atau due item untuk dedupe key sudah ada.
func (s *Service) CreateDueItem(ctx context.Context, schoolID uuid.UUID, in NewDueItem) (*model.DueItem, error) {
	if in.AmountIDR <= 0 {
		return nil, NewValidationError("nominal tagihan harus lebih dari 0")
	}
	periodKey := strings.TrimSpace(in.PeriodKey)
	if periodKey == "" {
		return nil, NewValidationError("period_key wajib diisi")
	}

	acc, err := s.store.GetAccount(ctx, schoolID, in.AccountID)
	if err != nil {
		if err == ErrNotFound {
			return nil, NewNotFoundError("account tidak ditemukan")
		}
		return nil, err
	}
	cat, err := s.store.GetCategory(ctx, schoolID, in.CategoryID)
	if err != nil {
		if err == ErrNotFound {
			return nil, NewNotFoundError("kategori tidak ditemukan")
		}
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = cat.DueCategoryLabel
	}

	d := &model.DueItem{
		DueItemSchoolID:       schoolID,
		DueItemAccountID:      acc.AccountID,
		DueItemCategoryID:     cat.DueCategoryID,
		DueItemKind:           cat.DueCategoryKind,
		DueItemTitle:          title,
		DueItemTotalAmountIDR: in.AmountIDR,
		DueItemPeriodKey:      periodKey,
		DueItemDueDate:        in.DueDate,
	}
	if err := s.store.CreateDueItem(ctx, d); err != nil {
		if err == ErrDuplicate {
			return nil, NewValidationError("due item untuk (account, kategori, %s) sudah ada", periodKey)
		}
		return nil, err
	}
	return d, nil
}

/* ===================== Update total (aksi admin terpisah) ===================== */

// UpdateDueItemAmount: mengubah total_amount adalah aksi administratif
// tersendiri — tidak pernah efek samping pembayaran. Total baru tidak boleh
// di bawah jumlah yang sudah terbayar (non-void).
func (s *Service) UpdateDueItemAmount(ctx context.Context, schoolID, dueItemID uuid.UUID, newAmountIDR int64) (*model.DueItem, error) {
	if newAmountIDR <= 0 {
		return nil, NewValidationError("nominal tagihan harus lebih dari 0")
	}

	var out *model.DueItem
	err := s.store.WithTx(ctx, func(tx Store) error {
		d, err := tx.GetDueItemForUpdate(ctx, schoolID, dueItemID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("due item tidak ditemukan")
			}
			return err
		}
		payments, err := tx.ListPaymentsByDueItem(ctx, d.DueItemID)
		if err != nil {
			return err
		}
		if paid := PaidTotal(payments); newAmountIDR < paid {
			return NewValidationError("total baru (%d) lebih kecil dari yang sudah terbayar (%d)", newAmountIDR, paid)
		}
		d.DueItemTotalAmountIDR = newAmountIDR
		if err := tx.SaveDueItem(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	return out, err
}

/* ===================== Read surface ===================== */

// DueItemDetail: due item + derivasi untuk response.
type DueItemDetail struct {
	Item       model.DueItem
	Payments   []model.Payment
	PaidTotal  int64
	BalanceIDR int64
	Status     model.DueStatus
}

func (s *Service) GetDueItemDetail(ctx context.Context, schoolID, dueItemID uuid.UUID) (*DueItemDetail, error) {
	d, err := s.store.GetDueItem(ctx, schoolID, dueItemID)
	if err != nil {
		if err == ErrNotFound {
			return nil, NewNotFoundError("due item tidak ditemukan")
		}
		return nil, err
	}
	payments, err := s.store.ListPaymentsByDueItem(ctx, d.DueItemID)
	if err != nil {
		return nil, err
	}
	paid := PaidTotal(payments)
	return &DueItemDetail{
		Item:       *d,
		Payments:   payments,
		PaidTotal:  paid,
		BalanceIDR: d.DueItemTotalAmountIDR - paid,
		Status:     StatusFromTotals(d.DueItemTotalAmountIDR, paid),
	}, nil
}

func (s *Service) ListDueItems(ctx context.Context, schoolID uuid.UUID, f Filter) ([]model.DueItemWithPaid, error) {
	return s.store.ListDueItems(ctx, schoolID, f)
}
