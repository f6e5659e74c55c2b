// file: internals/features/finance/ledger/model/due_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DueCategory: katalog jenis tagihan (SPP, transport, sewa asrama, mess, gaji).
// Kind di sini menjadi default kind untuk due item yang dibuat dari kategori ini.
type DueCategory struct {
	DueCategoryID uuid.UUID `gorm:"column:due_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"due_category_id"`

	DueCategorySchoolID uuid.UUID `gorm:"column:due_category_school_id;type:uuid;not null;index:uniq_due_category_code,unique,priority:1" json:"due_category_school_id"`

	DueCategoryCode  string `gorm:"column:due_category_code;type:varchar(40);not null;index:uniq_due_category_code,unique,priority:2" json:"due_category_code"`
	DueCategoryLabel string `gorm:"column:due_category_label;type:varchar(80);not null" json:"due_category_label"`

	DueCategoryKind DueKind `gorm:"column:due_category_kind;type:varchar(20);not null;default:'cumulative'" json:"due_category_kind"`

	// Nominal default (boleh dioverride saat create/generate)
	DueCategoryDefaultAmountIDR int64 `gorm:"column:due_category_default_amount_idr;type:bigint;not null;default:0" json:"due_category_default_amount_idr"`

	DueCategoryIsActive bool `gorm:"column:due_category_is_active;not null;default:true" json:"due_category_is_active"`

	DueCategoryCreatedAt time.Time      `gorm:"column:due_category_created_at;not null;autoCreateTime" json:"due_category_created_at"`
	DueCategoryUpdatedAt time.Time      `gorm:"column:due_category_updated_at;not null;autoUpdateTime" json:"due_category_updated_at"`
	DueCategoryDeletedAt gorm.DeletedAt `gorm:"column:due_category_deleted_at;index" json:"-"`
}

func (DueCategory) TableName() string { return "due_categories" }

func (c *DueCategory) BeforeCreate(tx *gorm.DB) error {
	if c.DueCategoryID == uuid.Nil {
		c.DueCategoryID = uuid.New()
	}
	return nil
}
