// file: internals/features/finance/ledger/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment: satu pembayaran terhadap sebuah due item.
// Append-only: void hanya membalik flag voided, baris tidak pernah dihapus.
type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentSchoolID uuid.UUID `gorm:"column:payment_school_id;type:uuid;not null;index:uniq_payment_receipt,unique,priority:1" json:"payment_school_id"`

	// FK → due_items
	PaymentDueItemID uuid.UUID `gorm:"column:payment_due_item_id;type:uuid;not null;index:ix_payment_due_item" json:"payment_due_item_id"`

	PaymentAmountIDR int64 `gorm:"column:payment_amount_idr;type:bigint;not null;check:payment_amount_idr > 0" json:"payment_amount_idr"`

	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`

	// Wajib diisi untuk metode selain cash (nomor transaksi/UTR/cek).
	PaymentReference *string `gorm:"column:payment_reference;type:varchar(120)" json:"payment_reference,omitempty"`

	// Nomor kwitansi: unik & monoton naik per sekolah, tidak pernah dipakai ulang
	// (termasuk milik payment yang sudah di-void).
	PaymentReceiptNo int64 `gorm:"column:payment_receipt_no;type:bigint;not null;index:uniq_payment_receipt,unique,priority:2" json:"payment_receipt_no"`

	PaymentDate      time.Time `gorm:"column:payment_date;not null" json:"payment_date"`
	PaymentCreatedBy uuid.UUID `gorm:"column:payment_created_by;type:uuid;not null" json:"payment_created_by"`

	PaymentVoided bool `gorm:"column:payment_voided;not null;default:false;index:ix_payment_voided" json:"payment_voided"`

	PaymentMeta datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	// Snapshot subject (lihat due_item_model.go)
	PaymentDeletedSubjectName        *string `gorm:"column:payment_deleted_subject_name;type:varchar(120)" json:"payment_deleted_subject_name,omitempty"`
	PaymentDeletedSubjectReferenceNo *string `gorm:"column:payment_deleted_subject_reference_no;type:varchar(60)" json:"payment_deleted_subject_reference_no,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null;autoUpdateTime" json:"payment_updated_at"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	return nil
}
