// file: internals/features/finance/ledger/model/enums.go
package model

/* ===================== Enums (selaras dengan ENUM di PostgreSQL) ===================== */

// DueKind menentukan cara pelunasan sebuah due item:
// - cumulative: boleh dicicil berkali-kali (SPP, asrama, mess)
// - binary: tepat satu pembayaran aktif (payroll/gaji)
type DueKind string

const (
	DueKindBinary     DueKind = "binary"
	DueKindCumulative DueKind = "cumulative"
)

func (k DueKind) Valid() bool {
	return k == DueKindBinary || k == DueKindCumulative
}

// DueStatus TIDAK pernah disimpan di DB — selalu diturunkan dari riwayat pembayaran.
type DueStatus string

const (
	DueStatusUnpaid  DueStatus = "unpaid"
	DueStatusPartial DueStatus = "partial"
	DueStatusPaid    DueStatus = "paid"
)

// SubjectType: pemilik account (siswa atau pegawai).
type SubjectType string

const (
	SubjectTypeStudent  SubjectType = "student"
	SubjectTypeEmployee SubjectType = "employee"
)

func (s SubjectType) Valid() bool {
	return s == SubjectTypeStudent || s == SubjectTypeEmployee
}

// PaymentMethod: metode pembayaran manual (dicatat setelah dana diterima).
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCheque       PaymentMethod = "cheque"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodUPI, PaymentMethodCheque:
		return true
	default:
		return false
	}
}

// RequiresReference: selain cash wajib menyertakan nomor referensi transaksi.
func (m PaymentMethod) RequiresReference() bool {
	return m != PaymentMethodCash
}
