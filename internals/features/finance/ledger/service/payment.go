// file: internals/features/finance/ledger/service/payment.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/finance/ledger/model"
)

/* ===================== Payment Processor ===================== */

type RecordPaymentInput struct {
	DueItemID   uuid.UUID
	AmountIDR   int64
	Method      model.PaymentMethod
	Reference   string
	CreatedBy   uuid.UUID
	PaymentDate *time.Time
	Meta        datatypes.JSONMap // catatan bebas kasir (no. mesin EDC, shift, dsb.)
}

// Receipt: nilai immutable yang dikonsumsi renderer kwitansi/slip
// setelah pembayaran sukses. Rendering sendiri di luar scope.
type Receipt struct {
	ReceiptNo        int64     `json:"receipt_no"`
	AmountIDR        int64     `json:"amount_idr"`
	Date             time.Time `json:"date"`
	PayeeName        string    `json:"payee_name"`
	CategoryLabel    string    `json:"category_label"`
	RemainingBalance int64     `json:"remaining_balance"`
}

func validatePaymentFields(amountIDR int64, method model.PaymentMethod, reference string) error {
	if amountIDR <= 0 {
		return NewValidationError("nominal pembayaran harus lebih dari 0")
	}
	if !method.Valid() {
		return NewValidationError("metode pembayaran tidak dikenal: %s", method)
	}
	if method.RequiresReference() && strings.TrimSpace(reference) == "" {
		return NewValidationError("referensi transaksi wajib diisi untuk metode %s", method)
	}
	return nil
}

// RecordPayment memvalidasi lalu mencatat pembayaran terhadap sebuah due item.
// Semua terjadi dalam SATU transaksi: row lock due item (menutup race dua
// recordPayment berbarengan pada item binary — yang kalah mendapat
// ConflictError, tidak pernah double-pay diam-diam), cek eksistensi,
// alokasi receipt_no dari counter ter-lock, lalu insert.
func (s *Service) RecordPayment(ctx context.Context, schoolID uuid.UUID, in RecordPaymentInput) (*model.Payment, *Receipt, error) {
	if err := validatePaymentFields(in.AmountIDR, in.Method, in.Reference); err != nil {
		return nil, nil, err
	}

	var (
		created *model.Payment
		receipt *Receipt
	)
	err := s.store.WithTx(ctx, func(tx Store) error {
		d, err := tx.GetDueItemForUpdate(ctx, schoolID, in.DueItemID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("due item tidak ditemukan")
			}
			return err
		}

		acc, err := tx.GetAccount(ctx, schoolID, d.DueItemAccountID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("account tidak ditemukan")
			}
			return err
		}
		subj, err := s.dir.ResolveSubject(ctx, schoolID, acc.AccountSubjectType, acc.AccountSubjectID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("subject pemilik account tidak ditemukan")
			}
			return err
		}
		if !subj.Active {
			return NewDependencyError("subject", 1,
				"subject sudah dinonaktifkan; pembayaran baru tidak diizinkan pada riwayatnya")
		}

		payments, err := tx.ListPaymentsByDueItem(ctx, d.DueItemID)
		if err != nil {
			return err
		}
		balance := Balance(d, payments)

		switch d.DueItemKind {
		case model.DueKindBinary:
			for i := range payments {
				if !payments[i].PaymentVoided {
					return NewConflictError("due item binary sudah punya pembayaran aktif; void dulu sebelum bayar ulang")
				}
			}
			if in.AmountIDR != d.DueItemTotalAmountIDR {
				return NewValidationError("pembayaran binary harus lunas sekaligus (%d)", d.DueItemTotalAmountIDR)
			}
		default: // cumulative
			if in.AmountIDR > balance {
				return NewValidationError("nominal (%d) melebihi sisa tagihan (%d)", in.AmountIDR, balance)
			}
		}

		receiptNo, err := tx.NextReceiptNo(ctx, schoolID)
		if err != nil {
			return err
		}

		paymentDate := time.Now()
		if in.PaymentDate != nil {
			paymentDate = *in.PaymentDate
		}
		var ref *string
		if r := strings.TrimSpace(in.Reference); r != "" {
			ref = &r
		}
		p := &model.Payment{
			PaymentSchoolID:  schoolID,
			PaymentDueItemID: d.DueItemID,
			PaymentAmountIDR: in.AmountIDR,
			PaymentMethod:    in.Method,
			PaymentReference: ref,
			PaymentReceiptNo: receiptNo,
			PaymentDate:      paymentDate,
			PaymentCreatedBy: in.CreatedBy,
			PaymentMeta:      in.Meta,
		}
		if err := tx.CreatePayment(ctx, p); err != nil {
			if err == ErrDuplicate {
				return NewConflictError("pembayaran bentrok dengan transaksi lain; silakan ulangi")
			}
			return err
		}

		catLabel := ""
		if cat, err := tx.GetCategory(ctx, schoolID, d.DueItemCategoryID); err == nil {
			catLabel = cat.DueCategoryLabel
		}

		created = p
		receipt = &Receipt{
			ReceiptNo:        receiptNo,
			AmountIDR:        in.AmountIDR,
			Date:             paymentDate,
			PayeeName:        subj.Name,
			CategoryLabel:    catLabel,
			RemainingBalance: balance - in.AmountIDR,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, receipt, nil
}

/* ===================== Edit ===================== */

type EditPaymentInput struct {
	AmountIDR int64
	Method    model.PaymentMethod
	Reference string
}

// EditPayment memvalidasi ulang terhadap payment non-void LAIN pada due item
// yang sama: sum(lainnya) + nominal baru tidak boleh melebihi total (cumulative).
func (s *Service) EditPayment(ctx context.Context, schoolID, paymentID uuid.UUID, in EditPaymentInput) (*model.Payment, error) {
	if err := validatePaymentFields(in.AmountIDR, in.Method, in.Reference); err != nil {
		return nil, err
	}

	var out *model.Payment
	err := s.store.WithTx(ctx, func(tx Store) error {
		p, err := tx.GetPayment(ctx, schoolID, paymentID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("payment tidak ditemukan")
			}
			return err
		}
		if p.PaymentVoided {
			return NewConflictError("payment sudah di-void; tidak bisa diedit")
		}

		d, err := tx.GetDueItemForUpdate(ctx, schoolID, p.PaymentDueItemID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("due item milik payment tidak ditemukan")
			}
			return err
		}

		payments, err := tx.ListPaymentsByDueItem(ctx, d.DueItemID)
		if err != nil {
			return err
		}
		var othersPaid int64
		for i := range payments {
			if payments[i].PaymentID != p.PaymentID && !payments[i].PaymentVoided {
				othersPaid += payments[i].PaymentAmountIDR
			}
		}

		switch d.DueItemKind {
		case model.DueKindBinary:
			if in.AmountIDR != d.DueItemTotalAmountIDR {
				return NewValidationError("pembayaran binary harus lunas sekaligus (%d)", d.DueItemTotalAmountIDR)
			}
		default:
			if othersPaid+in.AmountIDR > d.DueItemTotalAmountIDR {
				return NewValidationError("nominal baru (%d) + terbayar lain (%d) melebihi total (%d)",
					in.AmountIDR, othersPaid, d.DueItemTotalAmountIDR)
			}
		}

		p.PaymentAmountIDR = in.AmountIDR
		p.PaymentMethod = in.Method
		if r := strings.TrimSpace(in.Reference); r != "" {
			p.PaymentReference = &r
		} else {
			p.PaymentReference = nil
		}
		if err := tx.SavePayment(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

/* ===================== Void ===================== */

// VoidPayment: riwayat append-only — baris tidak dihapus, hanya flag voided.
// Untuk due item binary ini mengembalikan status ke unpaid sehingga
// RecordPayment baru diizinkan lagi.
func (s *Service) VoidPayment(ctx context.Context, schoolID, paymentID uuid.UUID) (*model.Payment, error) {
	var out *model.Payment
	err := s.store.WithTx(ctx, func(tx Store) error {
		p, err := tx.GetPayment(ctx, schoolID, paymentID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("payment tidak ditemukan")
			}
			return err
		}
		if p.PaymentVoided {
			return NewConflictError("payment sudah di-void")
		}
		p.PaymentVoided = true
		if err := tx.SavePayment(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

/* ===================== Riwayat ===================== */

func (s *Service) ListAccountPayments(ctx context.Context, schoolID, accountID uuid.UUID) ([]model.Payment, error) {
	if _, err := s.store.GetAccount(ctx, schoolID, accountID); err != nil {
		if err == ErrNotFound {
			return nil, NewNotFoundError("account tidak ditemukan")
		}
		return nil, err
	}
	return s.store.ListPaymentsByAccount(ctx, schoolID, accountID)
}
