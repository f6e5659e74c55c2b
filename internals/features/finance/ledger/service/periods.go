// file: internals/features/finance/ledger/service/periods.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	periodmodel "sekolahku_backend/internals/features/academics/periods/model"
)

/* ===================== Academic Periods ===================== */

type NewPeriod struct {
	Label     string
	StartDate time.Time
	EndDate   time.Time
}

func (s *Service) CreatePeriod(ctx context.Context, schoolID uuid.UUID, in NewPeriod) (*periodmodel.AcademicPeriod, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, NewValidationError("label periode wajib diisi")
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, NewValidationError("tanggal selesai harus setelah tanggal mulai")
	}
	p := &periodmodel.AcademicPeriod{
		AcademicPeriodSchoolID:  schoolID,
		AcademicPeriodLabel:     label,
		AcademicPeriodStartDate: in.StartDate,
		AcademicPeriodEndDate:   in.EndDate,
		AcademicPeriodStatus:    periodmodel.PeriodStatusUpcoming,
	}
	if err := s.store.CreatePeriod(ctx, p); err != nil {
		if err == ErrDuplicate {
			return nil, NewConflictError("periode %s sudah ada", label)
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPeriods(ctx context.Context, schoolID uuid.UUID) ([]periodmodel.AcademicPeriod, error) {
	return s.store.ListPeriods(ctx, schoolID)
}

// ActivatePeriod menjaga invariant "maksimal satu periode active per sekolah":
// periode aktif lama di-complete dan target diaktifkan dalam SATU transaksi.
func (s *Service) ActivatePeriod(ctx context.Context, schoolID, periodID uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	var out *periodmodel.AcademicPeriod
	err := s.store.WithTx(ctx, func(tx Store) error {
		target, err := tx.GetPeriod(ctx, schoolID, periodID)
		if err != nil {
			if err == ErrNotFound {
				return NewNotFoundError("periode tidak ditemukan")
			}
			return err
		}
		if target.AcademicPeriodStatus == periodmodel.PeriodStatusActive {
			out = target
			return nil
		}
		if cur, err := tx.GetActivePeriod(ctx, schoolID); err == nil {
			cur.AcademicPeriodStatus = periodmodel.PeriodStatusCompleted
			if err := tx.SavePeriod(ctx, cur); err != nil {
				return err
			}
		} else if err != ErrNotFound {
			return err
		}
		target.AcademicPeriodStatus = periodmodel.PeriodStatusActive
		if err := tx.SavePeriod(ctx, target); err != nil {
			return err
		}
		out = target
		return nil
	})
	return out, err
}
