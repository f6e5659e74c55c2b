// file: internals/features/finance/ledger/service/directory.go
package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/ledger/model"
)

// SubjectInfo: hasil resolve subject dari direktori (siswa/pegawai).
type SubjectInfo struct {
	Name        string
	ReferenceNo string // NIS untuk siswa, NIP untuk pegawai
	Active      bool   // false jika sudah di-soft-delete
}

// Directory: kolaborator eksternal yang me-resolve subject_id → identitas.
// Implementasi produksi membaca tabel students/employees; test memakai fake.
type Directory interface {
	ResolveSubject(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) (*SubjectInfo, error)
}
