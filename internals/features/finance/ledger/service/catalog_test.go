// file: internals/features/finance/ledger/service/catalog_test.go
package service_test

import (
	"testing"

	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

func TestCreateCategoryDuplicateCode(t *testing.T) {
	f := newFixture(t)
	f.mkCategory("SPP", "SPP Bulanan", model.DueKindCumulative)

	_, err := f.svc.CreateCategory(f.ctx, f.school, service.NewDueCategory{
		Code: "SPP", Label: "SPP Lain", Kind: model.DueKindCumulative,
	})
	if !service.IsConflict(err) {
		t.Fatalf("kode ganda: err = %v, want ConflictError", err)
	}

	// sekolah lain boleh pakai kode yang sama
	other := f.school
	other[0] ^= 0xff
	if _, err := f.svc.CreateCategory(f.ctx, other, service.NewDueCategory{
		Code: "SPP", Label: "SPP", Kind: model.DueKindCumulative,
	}); err != nil {
		t.Fatalf("kode sama lintas sekolah: %v", err)
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.CreateCategory(f.ctx, f.school, service.NewDueCategory{
		Code: "  ", Label: "Kosong", Kind: model.DueKindBinary,
	}); !service.IsValidation(err) {
		t.Fatalf("kode kosong: err = %v, want ValidationError", err)
	}
	if _, err := f.svc.CreateCategory(f.ctx, f.school, service.NewDueCategory{
		Code: "X", Label: "X", Kind: model.DueKind("weird"),
	}); !service.IsValidation(err) {
		t.Fatalf("kind aneh: err = %v, want ValidationError", err)
	}
}

func TestUpdateCategoryPartial(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)

	label := "Iuran Asrama"
	amount := int64(6000)
	got, err := f.svc.UpdateCategory(f.ctx, f.school, cat.DueCategoryID, service.UpdateDueCategory{
		Label:            &label,
		DefaultAmountIDR: &amount,
	})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if got.DueCategoryLabel != "Iuran Asrama" || got.DueCategoryDefaultAmountIDR != 6000 {
		t.Fatalf("hasil update: %+v", got)
	}
	if got.DueCategoryKind != model.DueKindCumulative || got.DueCategoryCode != "MESS" {
		t.Fatal("field immutable ikut berubah")
	}

	empty := "  "
	if _, err := f.svc.UpdateCategory(f.ctx, f.school, cat.DueCategoryID, service.UpdateDueCategory{
		Label: &empty,
	}); !service.IsValidation(err) {
		t.Fatalf("label kosong: err = %v, want ValidationError", err)
	}
}

func TestCreateDueItemDedupe(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Nisa", "S-1010", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)

	f.mkDueItem(acc, cat, "03-2026", 5000)

	// (account, kategori, period_key) yang sama ditolak
	_, err := f.svc.CreateDueItem(f.ctx, f.school, service.NewDueItem{
		AccountID:  acc.AccountID,
		CategoryID: cat.DueCategoryID,
		AmountIDR:  5000,
		PeriodKey:  "03-2026",
	})
	if !service.IsValidation(err) {
		t.Fatalf("dedupe key ganda: err = %v, want ValidationError", err)
	}

	// bulan lain tetap boleh
	f.mkDueItem(acc, cat, "04-2026", 5000)
}

func TestCreateDueItemDefaultsTitleToCategoryLabel(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Dewi", "S-1011", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("EXAM", "Biaya Ujian", model.DueKindBinary)

	d, err := f.svc.CreateDueItem(f.ctx, f.school, service.NewDueItem{
		AccountID:  acc.AccountID,
		CategoryID: cat.DueCategoryID,
		AmountIDR:  7500,
		PeriodKey:  "genap-2026",
	})
	if err != nil {
		t.Fatalf("CreateDueItem: %v", err)
	}
	if d.DueItemTitle != "Biaya Ujian" {
		t.Fatalf("title = %q, want label kategori", d.DueItemTitle)
	}
	if d.DueItemKind != model.DueKindBinary {
		t.Fatalf("kind = %s, want binary (diwarisi kategori)", d.DueItemKind)
	}
}

func TestCreateDueItemValidation(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Eka", "S-1012", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)

	if _, err := f.svc.CreateDueItem(f.ctx, f.school, service.NewDueItem{
		AccountID: acc.AccountID, CategoryID: cat.DueCategoryID, AmountIDR: 0, PeriodKey: "03-2026",
	}); !service.IsValidation(err) {
		t.Fatalf("amount 0: err = %v, want ValidationError", err)
	}
	if _, err := f.svc.CreateDueItem(f.ctx, f.school, service.NewDueItem{
		AccountID: acc.AccountID, CategoryID: cat.DueCategoryID, AmountIDR: 1000, PeriodKey: "  ",
	}); !service.IsValidation(err) {
		t.Fatalf("period_key kosong: err = %v, want ValidationError", err)
	}
}

func TestUpdateDueItemAmount(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Fajar", "S-1013", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "03-2026", 5000)

	f.mustPay(item.DueItemID, 3000, model.PaymentMethodCash, "")

	// naikkan total: paid → status turun ke partial, tidak ada payment berubah
	if _, err := f.svc.UpdateDueItemAmount(f.ctx, f.school, item.DueItemID, 8000); err != nil {
		t.Fatalf("UpdateDueItemAmount: %v", err)
	}
	d := f.detail(item.DueItemID)
	if d.Status != model.DueStatusPartial || d.BalanceIDR != 5000 {
		t.Fatalf("setelah naik total: status=%s balance=%d", d.Status, d.BalanceIDR)
	}

	// total baru di bawah yang sudah terbayar ditolak
	if _, err := f.svc.UpdateDueItemAmount(f.ctx, f.school, item.DueItemID, 2000); !service.IsValidation(err) {
		t.Fatalf("total < terbayar: err = %v, want ValidationError", err)
	}

	// turunkan pas ke jumlah terbayar → paid
	if _, err := f.svc.UpdateDueItemAmount(f.ctx, f.school, item.DueItemID, 3000); err != nil {
		t.Fatalf("UpdateDueItemAmount ke terbayar: %v", err)
	}
	if d := f.detail(item.DueItemID); d.Status != model.DueStatusPaid {
		t.Fatalf("status = %s, want paid", d.Status)
	}
}

func TestTenantIsolation(t *testing.T) {
	f := newFixture(t)
	sid := f.addStudent("Gita", "S-1014", false)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)
	cat := f.mkCategory("SPP", "SPP", model.DueKindCumulative)
	item := f.mkDueItem(acc, cat, "03-2026", 5000)

	other := f.school
	other[0] ^= 0xff
	if _, err := f.svc.GetDueItemDetail(f.ctx, other, item.DueItemID); !service.IsNotFound(err) {
		t.Fatalf("akses lintas sekolah: err = %v, want NotFoundError", err)
	}
}
