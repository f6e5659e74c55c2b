// file: internals/features/finance/ledger/service/generate.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/ledger/model"
)

/* ===================== Bulk Generator ===================== */

type GenerateRequest struct {
	CategoryID uuid.UUID
	PeriodKey  string // mis. "03-2026"
	AmountIDR  int64
	Title      string
	DueDate    *time.Time
	Scope      AccountScope
}

type GenerateFailure struct {
	AccountID uuid.UUID `json:"account_id"`
	Reason    string    `json:"reason"`
}

type GenerateReport struct {
	Created  int               `json:"created"`
	Skipped  int               `json:"skipped"`
	Failures []GenerateFailure `json:"failures"`
}

// GeneratePeriodicDues menerapkan satu template kategori ke seluruh scope.
// Kontrak utamanya idempotensi: run ulang dengan argumen sama tidak pernah
// menambah due item di luar run pertama yang sukses.
//
// Satu transaksi PER ACCOUNT (bukan per batch): kegagalan di tengah tidak
// membatalkan item yang sudah dibuat; kegagalan per account dikumpulkan ke
// report, tidak pernah ditelan diam-diam.
func (s *Service) GeneratePeriodicDues(ctx context.Context, schoolID uuid.UUID, in GenerateRequest) (*GenerateReport, error) {
	periodKey := strings.TrimSpace(in.PeriodKey)
	if periodKey == "" {
		return nil, NewValidationError("period_key wajib diisi")
	}
	if in.AmountIDR <= 0 {
		return nil, NewValidationError("nominal tagihan harus lebih dari 0")
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
		title = cat.DueCategoryLabel + " " + periodKey
	}

	accounts, err := s.store.ListAccounts(ctx, schoolID, in.Scope)
	if err != nil {
		return nil, err
	}

	report := &GenerateReport{Failures: []GenerateFailure{}}
	for i := range accounts {
		acc := accounts[i]
		err := s.store.WithTx(ctx, func(tx Store) error {
			// Sudah ada untuk dedupe key? → skip diam-diam (bukan error).
			if _, err := tx.FindDueItemByKey(ctx, acc.AccountID, cat.DueCategoryID, periodKey); err == nil {
				report.Skipped++
				return nil
			} else if err != ErrNotFound {
				return err
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
			if err := tx.CreateDueItem(ctx, d); err != nil {
				// Kalah balapan dengan invocation lain yang overlap:
				// unique index dedupe menolak — hitung sebagai skipped.
				if err == ErrDuplicate {
					report.Skipped++
					return nil
				}
				return err
			}
			report.Created++
			return nil
		})
		if err != nil {
			report.Failures = append(report.Failures, GenerateFailure{
				AccountID: acc.AccountID,
				Reason:    err.Error(),
			})
		}
	}
	return report, nil
}
