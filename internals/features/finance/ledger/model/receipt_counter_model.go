// file: internals/features/finance/ledger/model/receipt_counter_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptCounter: counter nomor kwitansi per sekolah.
// Baris di-lock FOR UPDATE di dalam transaksi payment yang sama, sehingga
// commit yang berbarengan tidak pernah menghasilkan nomor duplikat/mundur.
type ReceiptCounter struct {
	ReceiptCounterSchoolID uuid.UUID `gorm:"column:receipt_counter_school_id;type:uuid;primaryKey" json:"receipt_counter_school_id"`
	ReceiptCounterLastNo   int64     `gorm:"column:receipt_counter_last_no;type:bigint;not null;default:0" json:"receipt_counter_last_no"`

	ReceiptCounterUpdatedAt time.Time `gorm:"column:receipt_counter_updated_at;not null;autoUpdateTime" json:"receipt_counter_updated_at"`
}

func (ReceiptCounter) TableName() string { return "receipt_counters" }
