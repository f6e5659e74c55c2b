// file: internals/features/finance/ledger/service/payment_test.go
package service_test

import (
	"sync"
	"testing"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

// Mess bulanan 5000: cicil 2000 tunai → partial, lunasi 3000 via UPI → paid,
// cicilan berikutnya ditolak karena sisa 0.
func TestCumulativePartialPayments(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Rizki Ananda", "S-1001", true)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "03-2026", 5000)

	_, r1 := f.mustPay(item.DueItemID, 2000, model.PaymentMethodCash, "")
	if r1.RemainingBalance != 3000 {
		t.Fatalf("sisa setelah cicilan pertama = %d, want 3000", r1.RemainingBalance)
	}
	if d := f.detail(item.DueItemID); d.Status != model.DueStatusPartial {
		t.Fatalf("status = %s, want partial", d.Status)
	}

	_, r2 := f.mustPay(item.DueItemID, 3000, model.PaymentMethodUPI, "UPI-778899")
	if r2.RemainingBalance != 0 {
		t.Fatalf("sisa setelah pelunasan = %d, want 0", r2.RemainingBalance)
	}
	d := f.detail(item.DueItemID)
	if d.Status != model.DueStatusPaid {
		t.Fatalf("status = %s, want paid", d.Status)
	}
	if d.PaidTotal != 5000 {
		t.Fatalf("paid total = %d, want 5000", d.PaidTotal)
	}

	// sudah lunas: cicilan 100 melebihi sisa 0
	if _, _, err := f.pay(item.DueItemID, 100, model.PaymentMethodCash, ""); !service.IsValidation(err) {
		t.Fatalf("bayar melebihi sisa: err = %v, want ValidationError", err)
	}
}

// Gaji (binary) 12000: sekali bayar lunas; bayar kedua konflik; void
// mengembalikan ke unpaid dan membuka pembayaran ulang.
func TestBinaryPaymentLifecycle(t *testing.T) {
	f := newFixture(t)
	eid := f.addEmployee("Pak Hadi", "E-2001")
	acc := f.mkAccount(model.SubjectTypeEmployee, eid)
	cat := f.mkCategory("SALARY", "Gaji Bulanan", model.DueKindBinary)
	item := f.mkDueItem(acc, cat, "03-2026", 12000)

	// binary harus lunas sekaligus
	if _, _, err := f.pay(item.DueItemID, 5000, model.PaymentMethodBankTransfer, "TRF-1"); !service.IsValidation(err) {
		t.Fatalf("bayar sebagian pada binary: err = %v, want ValidationError", err)
	}

	p1, _ := f.mustPay(item.DueItemID, 12000, model.PaymentMethodBankTransfer, "TRF-2")
	if d := f.detail(item.DueItemID); d.Status != model.DueStatusPaid {
		t.Fatalf("status = %s, want paid", d.Status)
	}

	// pembayaran kedua saat masih ada yang aktif
	if _, _, err := f.pay(item.DueItemID, 12000, model.PaymentMethodBankTransfer, "TRF-3"); !service.IsConflict(err) {
		t.Fatalf("double pay binary: err = %v, want ConflictError", err)
	}

	// void → kembali unpaid; baris payment tetap ada
	voided, err := f.svc.VoidPayment(f.ctx, f.school, p1.PaymentID)
	if err != nil {
		t.Fatalf("VoidPayment: %v", err)
	}
	if !voided.PaymentVoided {
		t.Fatal("payment tidak tertandai voided")
	}
	d := f.detail(item.DueItemID)
	if d.Status != model.DueStatusUnpaid {
		t.Fatalf("status setelah void = %s, want unpaid", d.Status)
	}
	if len(d.Payments) != 1 {
		t.Fatalf("riwayat payment hilang: len = %d, want 1", len(d.Payments))
	}

	// void dua kali ditolak
	if _, err := f.svc.VoidPayment(f.ctx, f.school, p1.PaymentID); !service.IsConflict(err) {
		t.Fatalf("double void: err = %v, want ConflictError", err)
	}

	// setelah void, bayar ulang diizinkan
	f.mustPay(item.DueItemID, 12000, model.PaymentMethodCash, "")
	if d := f.detail(item.DueItemID); d.Status != model.DueStatusPaid {
		t.Fatalf("status setelah bayar ulang = %s, want paid", d.Status)
	}
}

func TestPaymentFieldValidation(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Sari", "S-1002", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "spp-03", 4000)

	if _, _, err := f.pay(item.DueItemID, 0, model.PaymentMethodCash, ""); !service.IsValidation(err) {
		t.Fatalf("nominal 0: err = %v, want ValidationError", err)
	}
	if _, _, err := f.pay(item.DueItemID, 1000, model.PaymentMethod("crypto"), ""); !service.IsValidation(err) {
		t.Fatalf("metode tak dikenal: err = %v, want ValidationError", err)
	}
	// non-cash tanpa referensi
	if _, _, err := f.pay(item.DueItemID, 1000, model.PaymentMethodBankTransfer, ""); !service.IsValidation(err) {
		t.Fatalf("transfer tanpa referensi: err = %v, want ValidationError", err)
	}
	// cash tanpa referensi sah
	f.mustPay(item.DueItemID, 1000, model.PaymentMethodCash, "")
}

// Nomor kwitansi naik monoton per sekolah dan tidak pernah dipakai ulang,
// termasuk nomor milik payment yang di-void.
func TestReceiptNumbersMonotonic(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Andi", "S-1003", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "spp-03", 10000)

	p1, r1 := f.mustPay(item.DueItemID, 1000, model.PaymentMethodCash, "")
	_, r2 := f.mustPay(item.DueItemID, 1000, model.PaymentMethodCash, "")
	if r2.ReceiptNo != r1.ReceiptNo+1 {
		t.Fatalf("receipt tidak monoton: %d lalu %d", r1.ReceiptNo, r2.ReceiptNo)
	}

	if _, err := f.svc.VoidPayment(f.ctx, f.school, p1.PaymentID); err != nil {
		t.Fatalf("VoidPayment: %v", err)
	}
	// nomor p1 tidak di-recycle
	_, r3 := f.mustPay(item.DueItemID, 1000, model.PaymentMethodCash, "")
	if r3.ReceiptNo != r2.ReceiptNo+1 {
		t.Fatalf("nomor kwitansi di-recycle setelah void: %d", r3.ReceiptNo)
	}
}

// Dua kasir menekan "bayar" bersamaan pada item binary yang sama: tepat satu
// yang berhasil, yang lain ConflictError — tidak pernah dua-duanya tercatat.
func TestConcurrentBinaryPayments(t *testing.T) {
	f := newFixture(t)
	eid := f.addEmployee("Bu Rina", "E-2002")
	acc := f.mkAccount(model.SubjectTypeEmployee, eid)
	cat := f.mkCategory("SALARY", "Gaji Bulanan", model.DueKindBinary)
	item := f.mkDueItem(acc, cat, "04-2026", 9000)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = f.pay(item.DueItemID, 9000, model.PaymentMethodCash, "")
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case service.IsConflict(err):
			conflict++
		default:
			t.Fatalf("error tak terduga: %v", err)
		}
	}
	if ok != 1 || conflict != 1 {
		t.Fatalf("hasil concurrent: ok=%d conflict=%d, want 1/1", ok, conflict)
	}
	if d := f.detail(item.DueItemID); d.PaidTotal != 9000 {
		t.Fatalf("paid total = %d, want 9000 (tidak double)", d.PaidTotal)
	}
}

// Meta bebas dari kasir (no. mesin EDC, shift, ...) harus ikut tersimpan
// pada baris payment, bukan dibuang diam-diam.
func TestRecordPaymentKeepsMeta(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Wati", "S-1005", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "spp-05", 5000)

	p, _, err := f.svc.RecordPayment(f.ctx, f.school, service.RecordPaymentInput{
		DueItemID: item.DueItemID,
		AmountIDR: 2000,
		Method:    model.PaymentMethodBankTransfer,
		Reference: "TRF-9001",
		CreatedBy: f.userID,
		Meta:      datatypes.JSONMap{"edc": "BCA-02", "shift": "pagi"},
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if p.PaymentMeta["edc"] != "BCA-02" || p.PaymentMeta["shift"] != "pagi" {
		t.Fatalf("meta hilang di return value: %v", p.PaymentMeta)
	}

	// ikut tersimpan, terbaca lagi lewat riwayat
	d := f.detail(item.DueItemID)
	if len(d.Payments) != 1 {
		t.Fatalf("jumlah payment = %d", len(d.Payments))
	}
	if got := d.Payments[0].PaymentMeta; got["edc"] != "BCA-02" {
		t.Fatalf("meta hilang di store: %v", got)
	}
}

func TestEditPayment(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Budi", "S-1004", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "spp-04", 5000)

	p1, _ := f.mustPay(item.DueItemID, 2000, model.PaymentMethodCash, "")
	f.mustPay(item.DueItemID, 2000, model.PaymentMethodCash, "")

	// koreksi 2000 → 3000: total jadi 5000, sah
	edited, err := f.svc.EditPayment(f.ctx, f.school, p1.PaymentID, service.EditPaymentInput{
		AmountIDR: 3000,
		Method:    model.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("EditPayment: %v", err)
	}
	if edited.PaymentAmountIDR != 3000 {
		t.Fatalf("nominal setelah edit = %d, want 3000", edited.PaymentAmountIDR)
	}
	if d := f.detail(item.DueItemID); d.Status != model.DueStatusPaid {
		t.Fatalf("status = %s, want paid", d.Status)
	}

	// koreksi yang membuat total melebihi tagihan ditolak
	if _, err := f.svc.EditPayment(f.ctx, f.school, p1.PaymentID, service.EditPaymentInput{
		AmountIDR: 4000,
		Method:    model.PaymentMethodCash,
	}); !service.IsValidation(err) {
		t.Fatalf("edit melebihi total: err = %v, want ValidationError", err)
	}

	// payment yang sudah void tidak bisa diedit
	if _, err := f.svc.VoidPayment(f.ctx, f.school, p1.PaymentID); err != nil {
		t.Fatalf("VoidPayment: %v", err)
	}
	if _, err := f.svc.EditPayment(f.ctx, f.school, p1.PaymentID, service.EditPaymentInput{
		AmountIDR: 1000,
		Method:    model.PaymentMethodCash,
	}); !service.IsConflict(err) {
		t.Fatalf("edit payment voided: err = %v, want ConflictError", err)
	}
}
