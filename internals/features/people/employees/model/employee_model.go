// file: internals/features/people/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Employee: record induk pegawai/guru (Subject Directory untuk ledger,
// pemilik due item payroll berjenis binary).
type Employee struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"employee_id"`

	EmployeeSchoolID uuid.UUID `gorm:"column:employee_school_id;type:uuid;not null;index:uniq_employee_ref,unique,priority:1" json:"employee_school_id"`

	EmployeeName string `gorm:"column:employee_name;type:varchar(120);not null" json:"employee_name"`

	// NIP — nomor induk pegawai
	EmployeeReferenceNo string `gorm:"column:employee_reference_no;type:varchar(60);not null;index:uniq_employee_ref,unique,priority:2" json:"employee_reference_no"`

	// Jabatan/role (teacher, accountant, ...) — text[]
	EmployeeRoles pq.StringArray `gorm:"column:employee_roles;type:text[]" json:"employee_roles"`

	EmployeeCreatedAt time.Time      `gorm:"column:employee_created_at;not null;autoCreateTime" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time      `gorm:"column:employee_updated_at;not null;autoUpdateTime" json:"employee_updated_at"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index" json:"-"`
}

func (Employee) TableName() string { return "employees" }

func (m *Employee) BeforeCreate(tx *gorm.DB) error {
	if m.EmployeeID == uuid.Nil {
		m.EmployeeID = uuid.New()
	}
	return nil
}
