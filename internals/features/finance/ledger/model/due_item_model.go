// file: internals/features/finance/ledger/model/due_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DueItem: satu kewajiban (tagihan/gaji) milik sebuah account.
// Dedupe key: (account_id, category_id, period_key) — period_key spesifik kategori:
// - tagihan one-off (mis. uang pangkal): id fee-definition
// - tagihan bulanan (mess/SPP/gaji): "MM-YYYY"
// Status & balance TIDAK disimpan; selalu diturunkan dari payments (lihat service.Derive*).
type DueItem struct {
	DueItemID uuid.UUID `gorm:"column:due_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"due_item_id"`

	DueItemSchoolID uuid.UUID `gorm:"column:due_item_school_id;type:uuid;not null;index:ix_due_item_school" json:"due_item_school_id"`

	// FK → ledger_accounts / due_categories
	DueItemAccountID  uuid.UUID `gorm:"column:due_item_account_id;type:uuid;not null;index:uniq_due_item_dedupe,unique,priority:1" json:"due_item_account_id"`
	DueItemCategoryID uuid.UUID `gorm:"column:due_item_category_id;type:uuid;not null;index:uniq_due_item_dedupe,unique,priority:2" json:"due_item_category_id"`

	// Kind disalin dari kategori saat pembuatan; caller cukup melihat tag ini,
	// tidak boleh special-case per subsistem.
	DueItemKind DueKind `gorm:"column:due_item_kind;type:varchar(20);not null" json:"due_item_kind"`

	DueItemTitle string `gorm:"column:due_item_title;type:text;not null" json:"due_item_title"`

	// Total > 0. Setelah ada payment, perubahan total hanya lewat aksi admin
	// UpdateDueItemAmount — tidak pernah sebagai efek samping pembayaran.
	DueItemTotalAmountIDR int64 `gorm:"column:due_item_total_amount_idr;type:bigint;not null;check:due_item_total_amount_idr > 0" json:"due_item_total_amount_idr"`

	DueItemPeriodKey string     `gorm:"column:due_item_period_key;type:varchar(60);not null;index:uniq_due_item_dedupe,unique,priority:3" json:"due_item_period_key"`
	DueItemDueDate   *time.Time `gorm:"column:due_item_due_date;type:date" json:"due_item_due_date,omitempty"`

	// Snapshot subject — diisi Reconciliation Guard saat subject di-soft-delete
	// supaya laporan historis tetap terbaca tanpa record subject hidup.
	DueItemDeletedSubjectName        *string `gorm:"column:due_item_deleted_subject_name;type:varchar(120)" json:"due_item_deleted_subject_name,omitempty"`
	DueItemDeletedSubjectReferenceNo *string `gorm:"column:due_item_deleted_subject_reference_no;type:varchar(60)" json:"due_item_deleted_subject_reference_no,omitempty"`

	DueItemCreatedAt time.Time `gorm:"column:due_item_created_at;not null;autoCreateTime" json:"due_item_created_at"`
	DueItemUpdatedAt time.Time `gorm:"column:due_item_updated_at;not null;autoUpdateTime" json:"due_item_updated_at"`
}

func (DueItem) TableName() string { return "due_items" }

func (d *DueItem) BeforeCreate(tx *gorm.DB) error {
	if d.DueItemID == uuid.Nil {
		d.DueItemID = uuid.New()
	}
	return nil
}

// DueItemWithPaid: baris agregat dari store (total terbayar ikut di-SELECT).
type DueItemWithPaid struct {
	DueItem
	PaidTotalIDR int64 `gorm:"column:paid_total_idr" json:"paid_total_idr"`
}
