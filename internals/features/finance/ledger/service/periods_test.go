// file: internals/features/finance/ledger/service/periods_test.go
package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	periodmodel "sekolahku_backend/internals/features/academics/periods/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

func TestActivatePeriodKeepsSingleActive(t *testing.T) {
	f := newFixture(t) // fixture sudah punya "2026/2027" active

	next, err := f.svc.CreatePeriod(f.ctx, f.school, service.NewPeriod{
		Label:     "2027/2028",
		StartDate: time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2028, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}
	if next.AcademicPeriodStatus != periodmodel.PeriodStatusUpcoming {
		t.Fatalf("status awal = %s, want upcoming", next.AcademicPeriodStatus)
	}

	if _, err := f.svc.ActivatePeriod(f.ctx, f.school, next.AcademicPeriodID); err != nil {
		t.Fatalf("ActivatePeriod: %v", err)
	}

	list, err := f.svc.ListPeriods(f.ctx, f.school)
	if err != nil {
		t.Fatalf("ListPeriods: %v", err)
	}
	var active int
	for _, p := range list {
		if p.AcademicPeriodStatus == periodmodel.PeriodStatusActive {
			active++
			if p.AcademicPeriodID != next.AcademicPeriodID {
				t.Fatalf("periode aktif salah: %s", p.AcademicPeriodLabel)
			}
		}
		if p.AcademicPeriodID == f.period.AcademicPeriodID && p.AcademicPeriodStatus != periodmodel.PeriodStatusCompleted {
			t.Fatalf("periode lama = %s, want completed", p.AcademicPeriodStatus)
		}
	}
	if active != 1 {
		t.Fatalf("jumlah periode active = %d, want 1", active)
	}

	cur, err := f.svc.ActivePeriod(f.ctx, f.school)
	if err != nil {
		t.Fatalf("ActivePeriod: %v", err)
	}
	if cur.AcademicPeriodID != next.AcademicPeriodID {
		t.Fatalf("ActivePeriod mengembalikan %s", cur.AcademicPeriodLabel)
	}
}

func TestActivatePeriodIdempotentOnActive(t *testing.T) {
	f := newFixture(t)
	p, err := f.svc.ActivatePeriod(f.ctx, f.school, f.period.AcademicPeriodID)
	if err != nil {
		t.Fatalf("aktifkan yang sudah aktif: %v", err)
	}
	if p.AcademicPeriodStatus != periodmodel.PeriodStatusActive {
		t.Fatalf("status = %s, want active", p.AcademicPeriodStatus)
	}
}

func TestActivatePeriodNotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.ActivatePeriod(f.ctx, f.school, uuid.New()); !service.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestCreatePeriodValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.CreatePeriod(f.ctx, f.school, service.NewPeriod{
		Label:     "terbalik",
		StartDate: time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	}); !service.IsValidation(err) {
		t.Fatalf("end sebelum start: err = %v, want ValidationError", err)
	}

	if _, err := f.svc.CreatePeriod(f.ctx, f.school, service.NewPeriod{
		Label:     "2026/2027", // sudah ada dari fixture
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	}); !service.IsConflict(err) {
		t.Fatalf("label ganda: err = %v, want ConflictError", err)
	}
}

func TestActivePeriodNoneActive(t *testing.T) {
	f := newFixture(t)
	other := f.school
	other[0] ^= 0xff // sekolah lain belum punya periode sama sekali
	if _, err := f.svc.ActivePeriod(f.ctx, other); !service.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
