// file: internals/features/finance/ledger/service/derive.go
package service

import "sekolahku_backend/internals/features/finance/ledger/model"

/* ===================== Ledger Core — derivasi murni ===================== */
/* Tidak ada kolom status/balance tersimpan di mana pun; semua diturunkan dari
   riwayat payment supaya tidak pernah terjadi drift antara state & pembayaran. */

// PaidTotal: Σ amount payment yang tidak di-void.
func PaidTotal(payments []model.Payment) int64 {
	var total int64
	for i := range payments {
		if !payments[i].PaymentVoided {
			total += payments[i].PaymentAmountIDR
		}
	}
	return total
}

// Balance: total_amount − paid_total. Boleh negatif (overpayment) di level
// item — dipertahankan untuk audit, tapi tidak pernah dilaporkan negatif di
// agregat "pending".
func Balance(d *model.DueItem, payments []model.Payment) int64 {
	return d.DueItemTotalAmountIDR - PaidTotal(payments)
}

// StatusOf: paid ⟺ balance ≤ 0; partial ⟺ 0 < paid < total; unpaid ⟺ paid = 0.
func StatusOf(d *model.DueItem, payments []model.Payment) model.DueStatus {
	return StatusFromTotals(d.DueItemTotalAmountIDR, PaidTotal(payments))
}

func StatusFromTotals(totalIDR, paidIDR int64) model.DueStatus {
	switch {
	case paidIDR >= totalIDR:
		return model.DueStatusPaid
	case paidIDR > 0:
		return model.DueStatusPartial
	default:
		return model.DueStatusUnpaid
	}
}
