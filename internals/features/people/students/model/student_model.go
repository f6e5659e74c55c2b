// file: internals/features/people/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student: record induk siswa (Subject Directory untuk ledger).
// Soft delete (deleted_at) adalah satu-satunya jalur "hapus" yang diizinkan
// begitu siswa punya riwayat finansial — lihat Reconciliation Guard.
type Student struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:uniq_student_ref,unique,priority:1" json:"student_school_id"`

	StudentName string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`

	// NIS — nomor induk siswa
	StudentReferenceNo string `gorm:"column:student_reference_no;type:varchar(60);not null;index:uniq_student_ref,unique,priority:2" json:"student_reference_no"`

	StudentIsHostelResident bool `gorm:"column:student_is_hostel_resident;not null;default:false;index:ix_student_hostel" json:"student_is_hostel_resident"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
