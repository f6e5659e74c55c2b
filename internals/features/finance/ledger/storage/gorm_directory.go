// file: internals/features/finance/ledger/storage/gorm_directory.go
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
	empmodel "sekolahku_backend/internals/features/people/employees/model"
	stumodel "sekolahku_backend/internals/features/people/students/model"
)

// GormDirectory: resolusi subject (siswa/pegawai) via tabel people.
// Lookup memakai Unscoped — subject yang sudah di-soft-delete tetap
// teresolusi (Active=false) supaya guard pembayaran bisa menolaknya
// dengan pesan yang benar, bukan not-found.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory { return &GormDirectory{db: db} }

func (d *GormDirectory) ResolveSubject(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) (*service.SubjectInfo, error) {
	switch st {
	case model.SubjectTypeStudent:
		var s stumodel.Student
		err := d.db.WithContext(ctx).Unscoped().
			Where("student_id = ? AND student_school_id = ?", subjectID, schoolID).
			First(&s).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, service.ErrNotFound
			}
			return nil, err
		}
		return &service.SubjectInfo{
			Name:        s.StudentName,
			ReferenceNo: s.StudentReferenceNo,
			Active:      !s.StudentDeletedAt.Valid,
		}, nil

	case model.SubjectTypeEmployee:
		var e empmodel.Employee
		err := d.db.WithContext(ctx).Unscoped().
			Where("employee_id = ? AND employee_school_id = ?", subjectID, schoolID).
			First(&e).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, service.ErrNotFound
			}
			return nil, err
		}
		return &service.SubjectInfo{
			Name:        e.EmployeeName,
			ReferenceNo: e.EmployeeReferenceNo,
			Active:      !e.EmployeeDeletedAt.Valid,
		}, nil
	}
	return nil, service.ErrNotFound
}
