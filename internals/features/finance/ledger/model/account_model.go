// file: internals/features/finance/ledger/model/account_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerAccount: pasangan (subject, periode) yang memiliki nol atau lebih due item.
// Unique per tenant: (school_id, subject_type, subject_id, period_id).
type LedgerAccount struct {
	AccountID uuid.UUID `gorm:"column:account_id;type:uuid;default:gen_random_uuid();primaryKey" json:"account_id"`

	// Tenant
	AccountSchoolID uuid.UUID `gorm:"column:account_school_id;type:uuid;not null;index:uniq_account_subject_period,unique,priority:1" json:"account_school_id"`

	// Subject (siswa / pegawai)
	AccountSubjectType SubjectType `gorm:"column:account_subject_type;type:varchar(20);not null;index:uniq_account_subject_period,unique,priority:2" json:"account_subject_type"`
	AccountSubjectID   uuid.UUID   `gorm:"column:account_subject_id;type:uuid;not null;index:uniq_account_subject_period,unique,priority:3" json:"account_subject_id"`

	// FK → academic_periods(academic_period_id)
	AccountPeriodID uuid.UUID `gorm:"column:account_period_id;type:uuid;not null;index:uniq_account_subject_period,unique,priority:4" json:"account_period_id"`

	// Timestamps
	AccountCreatedAt time.Time `gorm:"column:account_created_at;not null;autoCreateTime" json:"account_created_at"`
	AccountUpdatedAt time.Time `gorm:"column:account_updated_at;not null;autoUpdateTime" json:"account_updated_at"`
}

func (LedgerAccount) TableName() string { return "ledger_accounts" }

func (a *LedgerAccount) BeforeCreate(tx *gorm.DB) error {
	if a.AccountID == uuid.Nil {
		a.AccountID = uuid.New()
	}
	return nil
}
