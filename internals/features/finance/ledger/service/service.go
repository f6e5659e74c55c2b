// file: internals/features/finance/ledger/service/service.go
package service

import (
	"context"

	"github.com/google/uuid"

	periodmodel "sekolahku_backend/internals/features/academics/periods/model"
	"sekolahku_backend/internals/features/finance/ledger/model"
)

// Service: satu-satunya pintu operasi Dues & Payment Ledger.
// Store & Directory di-inject (bukan pool global) supaya test bisa
// mensubstitusi implementasi in-memory dengan kontrak yang sama.
type Service struct {
	store Store
	dir   Directory
}

func New(store Store, dir Directory) *Service {
	return &Service{store: store, dir: dir}
}

/* ===================== Konteks tenant/periode ===================== */

// ActivePeriod: periode aktif sekolah — konteks untuk hampir semua operasi.
func (s *Service) ActivePeriod(ctx context.Context, schoolID uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	p, err := s.store.GetActivePeriod(ctx, schoolID)
	if err == ErrNotFound {
		return nil, NewNotFoundError("tidak ada periode akademik aktif")
	}
	return p, err
}

// EnsureAccount: ambil-atau-buat account (subject, periode). Idempotent lewat
// unique constraint (school, subject_type, subject_id, period).
func (s *Service) EnsureAccount(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID, periodID uuid.UUID) (*model.LedgerAccount, error) {
	if !st.Valid() {
		return nil, NewValidationError("subject_type tidak dikenal: %s", st)
	}
	if _, err := s.dir.ResolveSubject(ctx, schoolID, st, subjectID); err != nil {
		if err == ErrNotFound {
			return nil, NewNotFoundError("subject tidak ditemukan")
		}
		return nil, err
	}
	return s.store.EnsureAccount(ctx, &model.LedgerAccount{
		AccountSchoolID:    schoolID,
		AccountSubjectType: st,
		AccountSubjectID:   subjectID,
		AccountPeriodID:    periodID,
	})
}
