// file: internals/features/finance/ledger/service/guard.go
package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/ledger/model"
)

/* ===================== Reconciliation Guard ===================== */
/* Kebijakan delete/cascade: riwayat finansial tidak boleh hilang sebagai
   efek samping maintenance data master. */

// CheckSubjectDeletable: hard delete subject DITOLAK (DependencyError)
// selama ada due item/payment yang mereferensikannya. Jalur yang diizinkan
// adalah SoftDeleteSubject di bawah.
func (s *Service) CheckSubjectDeletable(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) error {
	n, err := s.store.CountDuesBySubject(ctx, schoolID, st, subjectID)
	if err != nil {
		return err
	}
	if n > 0 {
		return NewDependencyError("due_items", n,
			"subject tidak bisa dihapus: masih direferensikan %d due item/riwayat pembayaran", n)
	}
	return nil
}

// SoftDeleteSubject: menonaktifkan subject + menyalin snapshot
// {nama, no. referensi} ke semua baris due_items/payments historisnya dalam
// satu transaksi, supaya laporan lama tetap terbaca setelah record hidupnya
// hilang. Penandaan soft-delete pada tabel subject dilakukan caller
// (controller students/employees) di transaksi yang sama via tx yang
// dikembalikan — di sini cukup snapshot; urutannya: snapshot dulu, baru flag.
func (s *Service) SoftDeleteSubject(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID, markDeleted func(tx Store) error) error {
	subj, err := s.dir.ResolveSubject(ctx, schoolID, st, subjectID)
	if err != nil {
		if err == ErrNotFound {
			return NewNotFoundError("subject tidak ditemukan")
		}
		return err
	}
	if !subj.Active {
		return NewConflictError("subject sudah dinonaktifkan")
	}
	return s.store.WithTx(ctx, func(tx Store) error {
		if err := tx.SnapshotSubject(ctx, schoolID, st, subjectID, subj.Name, subj.ReferenceNo); err != nil {
			return err
		}
		if markDeleted != nil {
			return markDeleted(tx)
		}
		return nil
	})
}

// DeleteCategory: definisi kategori dengan due item dependen DITOLAK,
// bukan cascade — baris finansial tidak boleh ikut hilang.
func (s *Service) DeleteCategory(ctx context.Context, schoolID, categoryID uuid.UUID) error {
	if _, err := s.store.GetCategory(ctx, schoolID, categoryID); err != nil {
		if err == ErrNotFound {
			return NewNotFoundError("kategori tidak ditemukan")
		}
		return err
	}
	n, err := s.store.CountDueItemsByCategory(ctx, schoolID, categoryID)
	if err != nil {
		return err
	}
	if n > 0 {
		return NewDependencyError("due_items", n,
			"kategori tidak bisa dihapus: masih dipakai %d due item", n)
	}
	return s.store.DeleteCategory(ctx, schoolID, categoryID)
}
