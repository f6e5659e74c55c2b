// file: internals/features/finance/ledger/service/generate_test.go
package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

// Tagihan mess bulanan untuk seluruh penghuni asrama aktif:
// run pertama membuat satu item per penghuni, run kedua identik seluruhnya skip.
func TestGeneratePeriodicDuesIdempotent(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)

	// 40 penghuni asrama + 15 siswa non-asrama yang harus terlewati
	for i := 0; i < 40; i++ {
		sid := f.addStudent(fmt.Sprintf("Santri %02d", i), fmt.Sprintf("S-3%03d", i), true)
		f.mkAccount(model.SubjectTypeStudent, sid)
	}
	for i := 0; i < 15; i++ {
		sid := f.addStudent(fmt.Sprintf("Siswa %02d", i), fmt.Sprintf("S-4%03d", i), false)
		f.mkAccount(model.SubjectTypeStudent, sid)
	}

	req := service.GenerateRequest{
		CategoryID: cat.DueCategoryID,
		PeriodKey:  "03-2026",
		AmountIDR:  5000,
		Scope: service.AccountScope{
			SubjectType: model.SubjectTypeStudent,
			HostelOnly:  true,
			ActiveOnly:  true,
		},
	}

	r1, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, req)
	if err != nil {
		t.Fatalf("run pertama: %v", err)
	}
	if r1.Created != 40 || r1.Skipped != 0 || len(r1.Failures) != 0 {
		t.Fatalf("run pertama: created=%d skipped=%d failures=%d, want 40/0/0",
			r1.Created, r1.Skipped, len(r1.Failures))
	}

	r2, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, req)
	if err != nil {
		t.Fatalf("run kedua: %v", err)
	}
	if r2.Created != 0 || r2.Skipped != 40 || len(r2.Failures) != 0 {
		t.Fatalf("run kedua: created=%d skipped=%d failures=%d, want 0/40/0",
			r2.Created, r2.Skipped, len(r2.Failures))
	}

	// periode berikutnya generate lagi dari nol
	req.PeriodKey = "04-2026"
	r3, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, req)
	if err != nil {
		t.Fatalf("bulan berikutnya: %v", err)
	}
	if r3.Created != 40 {
		t.Fatalf("bulan berikutnya: created=%d, want 40", r3.Created)
	}
}

// Item yang sudah dibuat manual untuk dedupe key yang sama dihitung skipped,
// bukan failure; akun lain tetap ter-generate.
func TestGenerateSkipsManualItems(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)

	s1 := f.addStudent("Hana", "S-5001", true)
	s2 := f.addStudent("Ilham", "S-5002", true)
	a1 := f.mkAccount(model.SubjectTypeStudent, s1)
	f.mkAccount(model.SubjectTypeStudent, s2)

	f.mkDueItem(a1, cat, "03-2026", 5000) // dibuat manual duluan

	r, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, service.GenerateRequest{
		CategoryID: cat.DueCategoryID,
		PeriodKey:  "03-2026",
		AmountIDR:  5000,
		Scope: service.AccountScope{
			SubjectType: model.SubjectTypeStudent,
			HostelOnly:  true,
			ActiveOnly:  true,
		},
	})
	if err != nil {
		t.Fatalf("GeneratePeriodicDues: %v", err)
	}
	if r.Created != 1 || r.Skipped != 1 {
		t.Fatalf("created=%d skipped=%d, want 1/1", r.Created, r.Skipped)
	}
}

func TestGenerateScopeBySubjectIDs(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("EXAM", "Biaya Ujian", model.DueKindBinary)

	s1 := f.addStudent("Joko", "S-5003", false)
	s2 := f.addStudent("Kiki", "S-5004", false)
	f.addStudent("Lina", "S-5005", false)
	f.mkAccount(model.SubjectTypeStudent, s1)
	f.mkAccount(model.SubjectTypeStudent, s2)

	r, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, service.GenerateRequest{
		CategoryID: cat.DueCategoryID,
		PeriodKey:  "genap-2026",
		AmountIDR:  7500,
		Scope: service.AccountScope{
			SubjectType: model.SubjectTypeStudent,
			SubjectIDs:  []uuid.UUID{s1, s2},
			ActiveOnly:  true,
		},
	})
	if err != nil {
		t.Fatalf("GeneratePeriodicDues: %v", err)
	}
	if r.Created != 2 {
		t.Fatalf("created=%d, want 2 (hanya subject terpilih)", r.Created)
	}
}

// flakyStore menggagalkan CreateDueItem untuk satu account tertentu —
// mensimulasikan error DB non-duplicate di tengah batch.
type flakyStore struct {
	service.Store
	failAccount uuid.UUID
	failErr     error
}

func (s *flakyStore) WithTx(ctx context.Context, fn func(tx service.Store) error) error {
	return s.Store.WithTx(ctx, func(tx service.Store) error {
		return fn(&flakyTx{Store: tx, failAccount: s.failAccount, failErr: s.failErr})
	})
}

type flakyTx struct {
	service.Store
	failAccount uuid.UUID
	failErr     error
}

func (t *flakyTx) CreateDueItem(ctx context.Context, d *model.DueItem) error {
	if d.DueItemAccountID == t.failAccount {
		return t.failErr
	}
	return t.Store.CreateDueItem(ctx, d)
}

// Error per account dikumpulkan ke Failures[] tanpa membatalkan batch; tx
// milik account yang gagal di-rollback sehingga tidak ada item setengah jadi.
func TestGenerateCollectsPerAccountFailures(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)

	s1 := f.addStudent("Vina", "S-5007", true)
	s2 := f.addStudent("Wawan", "S-5008", true)
	s3 := f.addStudent("Yusuf", "S-5009", true)
	f.mkAccount(model.SubjectTypeStudent, s1)
	bad := f.mkAccount(model.SubjectTypeStudent, s2)
	f.mkAccount(model.SubjectTypeStudent, s3)

	dbErr := errors.New("koneksi putus")
	flaky := service.New(&flakyStore{Store: f.store, failAccount: bad.AccountID, failErr: dbErr}, f.dir)

	req := service.GenerateRequest{
		CategoryID: cat.DueCategoryID,
		PeriodKey:  "05-2026",
		AmountIDR:  5000,
		Scope: service.AccountScope{
			SubjectType: model.SubjectTypeStudent,
			HostelOnly:  true,
			ActiveOnly:  true,
		},
	}
	r, err := flaky.GeneratePeriodicDues(f.ctx, f.school, req)
	if err != nil {
		t.Fatalf("kegagalan per account tidak boleh menggagalkan batch: %v", err)
	}
	if r.Created != 2 || r.Skipped != 0 || len(r.Failures) != 1 {
		t.Fatalf("created=%d skipped=%d failures=%d, want 2/0/1", r.Created, r.Skipped, len(r.Failures))
	}
	if r.Failures[0].AccountID != bad.AccountID {
		t.Fatalf("failure menunjuk account %s, want %s", r.Failures[0].AccountID, bad.AccountID)
	}
	if r.Failures[0].Reason != dbErr.Error() {
		t.Fatalf("reason = %q", r.Failures[0].Reason)
	}

	// tidak ada item setengah jadi untuk account yang gagal
	if _, err := f.store.FindDueItemByKey(f.ctx, bad.AccountID, cat.DueCategoryID, "05-2026"); err != service.ErrNotFound {
		t.Fatalf("item account gagal masih ada: err = %v", err)
	}

	// run ulang tanpa fault: hanya account yang gagal yang dibuat, sisanya skip
	r2, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, req)
	if err != nil {
		t.Fatalf("run pemulihan: %v", err)
	}
	if r2.Created != 1 || r2.Skipped != 2 {
		t.Fatalf("run pemulihan: created=%d skipped=%d, want 1/2", r2.Created, r2.Skipped)
	}
}

func TestGenerateValidation(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)
	scope := service.AccountScope{SubjectType: model.SubjectTypeStudent}

	if _, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, service.GenerateRequest{
		CategoryID: cat.DueCategoryID, PeriodKey: "  ", AmountIDR: 5000, Scope: scope,
	}); !service.IsValidation(err) {
		t.Fatalf("period_key kosong: err = %v, want ValidationError", err)
	}
	if _, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, service.GenerateRequest{
		CategoryID: cat.DueCategoryID, PeriodKey: "03-2026", AmountIDR: 0, Scope: scope,
	}); !service.IsValidation(err) {
		t.Fatalf("amount 0: err = %v, want ValidationError", err)
	}
	if _, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, service.GenerateRequest{
		CategoryID: uuid.New(), PeriodKey: "03-2026", AmountIDR: 5000, Scope: scope,
	}); !service.IsNotFound(err) {
		t.Fatalf("kategori tak dikenal: err = %v, want NotFoundError", err)
	}
}

func TestGenerateTitleDefaultsToLabelPlusPeriod(t *testing.T) {
	f := newFixture(t)
	cat := f.mkCategory("MESS", "Iuran Mess", model.DueKindCumulative)
	sid := f.addStudent("Mira", "S-5006", true)
	acc := f.mkAccount(model.SubjectTypeStudent, sid)

	if _, err := f.svc.GeneratePeriodicDues(f.ctx, f.school, service.GenerateRequest{
		CategoryID: cat.DueCategoryID,
		PeriodKey:  "03-2026",
		AmountIDR:  5000,
		Scope:      service.AccountScope{SubjectType: model.SubjectTypeStudent, HostelOnly: true},
	}); err != nil {
		t.Fatalf("GeneratePeriodicDues: %v", err)
	}

	key := "03-2026"
	items, err := f.svc.ListDueItems(f.ctx, f.school, service.Filter{AccountID: &acc.AccountID, PeriodKey: &key})
	if err != nil {
		t.Fatalf("ListDueItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("jumlah item = %d, want 1", len(items))
	}
	if items[0].DueItemTitle != "Iuran Mess 03-2026" {
		t.Fatalf("title = %q", items[0].DueItemTitle)
	}
}
