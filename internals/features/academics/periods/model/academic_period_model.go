// file: internals/features/academics/periods/model/academic_period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PeriodStatus string

const (
	PeriodStatusUpcoming  PeriodStatus = "upcoming"
	PeriodStatusActive    PeriodStatus = "active"
	PeriodStatusCompleted PeriodStatus = "completed"
)

// AcademicPeriod: tahun ajaran / term. Invariant: maksimal satu periode
// berstatus active per sekolah (dijaga ActivatePeriod dalam satu transaksi).
type AcademicPeriod struct {
	AcademicPeriodID uuid.UUID `gorm:"column:academic_period_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_period_id"`

	AcademicPeriodSchoolID uuid.UUID `gorm:"column:academic_period_school_id;type:uuid;not null;index:uniq_period_label,unique,priority:1" json:"academic_period_school_id"`

	AcademicPeriodLabel     string    `gorm:"column:academic_period_label;type:varchar(60);not null;index:uniq_period_label,unique,priority:2" json:"academic_period_label"`
	AcademicPeriodStartDate time.Time `gorm:"column:academic_period_start_date;type:date;not null" json:"academic_period_start_date"`
	AcademicPeriodEndDate   time.Time `gorm:"column:academic_period_end_date;type:date;not null" json:"academic_period_end_date"`

	AcademicPeriodStatus PeriodStatus `gorm:"column:academic_period_status;type:varchar(20);not null;default:'upcoming';index:ix_period_status" json:"academic_period_status"`

	AcademicPeriodCreatedAt time.Time `gorm:"column:academic_period_created_at;not null;autoCreateTime" json:"academic_period_created_at"`
	AcademicPeriodUpdatedAt time.Time `gorm:"column:academic_period_updated_at;not null;autoUpdateTime" json:"academic_period_updated_at"`
}

func (AcademicPeriod) TableName() string { return "academic_periods" }

func (p *AcademicPeriod) BeforeCreate(tx *gorm.DB) error {
	if p.AcademicPeriodID == uuid.Nil {
		p.AcademicPeriodID = uuid.New()
	}
	return nil
}
