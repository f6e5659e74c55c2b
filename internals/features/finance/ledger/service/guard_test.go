// file: internals/features/finance/ledger/service/guard_test.go
package service_test

import (
	"errors"
	"testing"

	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Nadia", "S-6001", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)
	f.mkDueItem(acc, cat, "03-2026", 5000)

	err := f.svc.DeleteCategory(f.ctx, f.school, cat.DueCategoryID)
	if !service.IsDependency(err) {
		t.Fatalf("delete kategori terpakai: err = %v, want DependencyError", err)
	}
	var de *service.DependencyError
	if !errors.As(err, &de) || de.Dependent != "due_items" || de.Count != 1 {
		t.Fatalf("detail dependency salah: %+v", de)
	}

	// kategori tanpa due item boleh dihapus
	empty := f.mkCategory("TEMP", "Sementara", model.DueKindBinary)
	if err := f.svc.DeleteCategory(f.ctx, f.school, empty.DueCategoryID); err != nil {
		t.Fatalf("delete kategori kosong: %v", err)
	}
	cats, err := f.svc.ListCategories(f.ctx, f.school)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 1 {
		t.Fatalf("sisa kategori = %d, want 1", len(cats))
	}
}

func TestCheckSubjectDeletable(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)

	withDues := f.addStudent("Oki", "S-6002", false)
	acc := f.mkAccount(model.SubjectTypeStudent, withDues)
	f.mkDueItem(acc, cat, "03-2026", 5000)

	clean := f.addStudent("Putri", "S-6003", false)
	f.mkAccount(model.SubjectTypeStudent, clean)

	if err := f.svc.CheckSubjectDeletable(f.ctx, f.school, model.SubjectTypeStudent, withDues); !service.IsDependency(err) {
		t.Fatalf("subject dengan riwayat: err = %v, want DependencyError", err)
	}
	// account kosong tanpa due item tidak menghalangi
	if err := f.svc.CheckSubjectDeletable(f.ctx, f.school, model.SubjectTypeStudent, clean); err != nil {
		t.Fatalf("subject bersih: %v", err)
	}
}

// SoftDeleteSubject menyalin nama & NIS ke baris historis lalu menjalankan
// markDeleted dalam transaksi yang sama; sesudahnya subject nonaktif menolak
// pembayaran baru.
func TestSoftDeleteSubjectSnapshots(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Qori Rahma", "S-6004", true)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "03-2026", 5000)
	f.mustPay(item.DueItemID, 2000, model.PaymentMethodCash, "")

	marked := false
	err := f.svc.SoftDeleteSubject(f.ctx, f.school, model.SubjectTypeStudent, sid, func(tx service.Store) error {
		// produksi: controller menandai baris students di tx yang sama;
		// di sini cukup flip directory fake (JANGAN sentuh MemStore — deadlock).
		f.dir.deactivate(sid)
		marked = true
		return nil
	})
	if err != nil {
		t.Fatalf("SoftDeleteSubject: %v", err)
	}
	if !marked {
		t.Fatal("markDeleted tidak dipanggil")
	}

	d := f.detail(item.DueItemID)
	if d.Item.DueItemDeletedSubjectName == nil || *d.Item.DueItemDeletedSubjectName != "Qori Rahma" {
		t.Fatalf("snapshot nama due item: %v", d.Item.DueItemDeletedSubjectName)
	}
	if d.Item.DueItemDeletedSubjectReferenceNo == nil || *d.Item.DueItemDeletedSubjectReferenceNo != "S-6004" {
		t.Fatalf("snapshot NIS due item: %v", d.Item.DueItemDeletedSubjectReferenceNo)
	}
	if len(d.Payments) != 1 {
		t.Fatalf("payment hilang: %d", len(d.Payments))
	}
	p := d.Payments[0]
	if p.PaymentDeletedSubjectName == nil || *p.PaymentDeletedSubjectName != "Qori Rahma" {
		t.Fatalf("snapshot nama payment: %v", p.PaymentDeletedSubjectName)
	}
	if p.PaymentDeletedSubjectReferenceNo == nil || *p.PaymentDeletedSubjectReferenceNo != "S-6004" {
		t.Fatalf("snapshot NIS payment: %v", p.PaymentDeletedSubjectReferenceNo)
	}

	// subject nonaktif: pembayaran baru pada riwayatnya ditolak
	if _, _, err := f.pay(item.DueItemID, 1000, model.PaymentMethodCash, ""); !service.IsDependency(err) {
		t.Fatalf("bayar ke subject nonaktif: err = %v, want DependencyError", err)
	}
}

func TestSoftDeleteSubjectRollsBackOnMarkFailure(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Rian", "S-6005", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "03-2026", 5000)

	boom := errors.New("constraint students gagal")
	err := f.svc.SoftDeleteSubject(f.ctx, f.school, model.SubjectTypeStudent, sid, func(service.Store) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want error markDeleted diteruskan", err)
	}

	// snapshot ikut rollback
	if d := f.detail(item.DueItemID); d.Item.DueItemDeletedSubjectName != nil {
		t.Fatal("snapshot tidak di-rollback")
	}
}

func TestSoftDeleteSubjectAlreadyInactive(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Sinta", "S-6006", false)
	f.mkAccount(model.SubjectTypeStudent, sid)
	f.dir.deactivate(sid)

	err := f.svc.SoftDeleteSubject(f.ctx, f.school, model.SubjectTypeStudent, sid, nil)
	if !service.IsConflict(err) {
		t.Fatalf("soft delete dua kali: err = %v, want ConflictError", err)
	}
}
