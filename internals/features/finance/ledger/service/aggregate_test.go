// file: internals/features/finance/ledger/service/aggregate_test.go
package service_test

import (
	"fmt"
	"testing"

	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

func TestAggregateByCategory(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)
	other := f.mkCategory("EXAM", "Biaya Ujian", model.DueKindBinary)

	// tiga penghuni: lunas / sebagian / belum bayar
	for i, pay := range []int64{5000, 2000, 0} {
		sid := f.addStudent(fmt.Sprintf("Santri %d", i), fmt.Sprintf("S-800%d", i), true)
		acc := f.mkAccount(model.SubjectTypeStudent, sid)
		item := f.mkDueItem(acc, cat, "03-2026", 5000)
		if pay > 0 {
			f.mustPay(item.DueItemID, pay, model.PaymentMethodCash, "")
		}
		// kategori lain tidak boleh ikut terhitung
		f.mkDueItem(acc, other, "genap-2026", 7500)
	}

	res, err := f.svc.Aggregate(f.ctx, f.school, service.Filter{CategoryID: &cat.DueCategoryID})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if res.TotalExpectedIDR != 15000 {
		t.Fatalf("expected = %d, want 15000", res.TotalExpectedIDR)
	}
	if res.TotalCollectedIDR != 7000 {
		t.Fatalf("collected = %d, want 7000", res.TotalCollectedIDR)
	}
	if res.TotalPendingIDR != 8000 {
		t.Fatalf("pending = %d, want 8000", res.TotalPendingIDR)
	}
	if res.CountByStatus[model.DueStatusPaid] != 1 ||
		res.CountByStatus[model.DueStatusPartial] != 1 ||
		res.CountByStatus[model.DueStatusUnpaid] != 1 {
		t.Fatalf("count by status: %+v", res.CountByStatus)
	}
}

// Overpayment (total diturunkan admin setelah pembayaran) tidak boleh membuat
// agregat pending negatif; di level item balance negatif tetap terlihat.
func TestAggregateClampsOverpayment(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)

	s1 := f.addStudent("Tia", "S-7001", false)
	a1 := f.mkAccount(model.SubjectTypeStudent, s1)
	overpaid := f.mkDueItem(a1, cat, "03-2026", 5000)
	f.mustPay(overpaid.DueItemID, 5000, model.PaymentMethodCash, "")
	// keringanan retroaktif: total turun di bawah yang sudah terbayar —
	// lewat store langsung karena UpdateDueItemAmount memang menolaknya
	overpaid.DueItemTotalAmountIDR = 4000
	if err := f.store.SaveDueItem(f.ctx, overpaid); err != nil {
		t.Fatalf("SaveDueItem: %v", err)
	}

	s2 := f.addStudent("Umar", "S-7002", false)
	a2 := f.mkAccount(model.SubjectTypeStudent, s2)
	f.mkDueItem(a2, cat, "03-2026", 5000) // belum bayar sepeser pun

	res, err := f.svc.Aggregate(f.ctx, f.school, service.Filter{CategoryID: &cat.DueCategoryID})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	// pending = 0 (overpaid, di-clamp) + 5000, BUKAN -1000 + 5000
	if res.TotalPendingIDR != 5000 {
		t.Fatalf("pending = %d, want 5000", res.TotalPendingIDR)
	}
	if d := f.detail(overpaid.DueItemID); d.BalanceIDR != -1000 {
		t.Fatalf("balance item overpaid = %d, want -1000", d.BalanceIDR)
	}
}
