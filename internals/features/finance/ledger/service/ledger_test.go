// file: internals/features/finance/ledger/service/ledger_test.go
package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	periodmodel "sekolahku_backend/internals/features/academics/periods/model"
	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
	"sekolahku_backend/internals/features/finance/ledger/storage"
)

/* ===================== fake directory ===================== */

type fakeDirectory struct {
	mu       sync.Mutex
	subjects map[uuid.UUID]service.SubjectInfo
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{subjects: map[uuid.UUID]service.SubjectInfo{}}
}

func (d *fakeDirectory) ResolveSubject(_ context.Context, _ uuid.UUID, _ model.SubjectType, subjectID uuid.UUID) (*service.SubjectInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info, ok := d.subjects[subjectID]
	if !ok {
		return nil, service.ErrNotFound
	}
	out := info
	return &out, nil
}

func (d *fakeDirectory) add(id uuid.UUID, name, refNo string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subjects[id] = service.SubjectInfo{Name: name, ReferenceNo: refNo, Active: true}
}

func (d *fakeDirectory) deactivate(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info := d.subjects[id]
	info.Active = false
	d.subjects[id] = info
}

/* ===================== fixture ===================== */

type fixture struct {
	t      *testing.T
	ctx    context.Context
	svc    *service.Service
	store  *storage.MemStore
	dir    *fakeDirectory
	school uuid.UUID
	period *periodmodel.AcademicPeriod
	userID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewMemStore()
	dir := newFakeDirectory()
	svc := service.New(store, dir)
	school := uuid.New()

	ctx := context.Background()
	p, err := svc.CreatePeriod(ctx, school, service.NewPeriod{
		Label:     "2026/2027",
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}
	if _, err := svc.ActivatePeriod(ctx, school, p.AcademicPeriodID); err != nil {
		t.Fatalf("ActivatePeriod: %v", err)
	}

	return &fixture{
		t:      t,
		ctx:    ctx,
		svc:    svc,
		store:  store,
		dir:    dir,
		school: school,
		period: p,
		userID: uuid.New(),
	}
}

func (f *fixture) addStudent(name, nis string, hostel bool) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	f.dir.add(id, name, nis)
	f.store.SetSubjectFlags(id, hostel, false)
	return id
}

func (f *fixture) addEmployee(name, nip string) uuid.UUID {
	f.t.Helper()
	id := uuid.New()
	f.dir.add(id, name, nip)
	f.store.SetSubjectFlags(id, false, false)
	return id
}

func (f *fixture) mkCategory(code, label string, kind model.DueKind) *model.DueCategory {
	f.t.Helper()
	cat, err := f.svc.CreateCategory(f.ctx, f.school, service.NewDueCategory{
		Code:  code,
		Label: label,
		Kind:  kind,
	})
	if err != nil {
		f.t.Fatalf("CreateCategory(%s): %v", code, err)
	}
	return cat
}

func (f *fixture) mkAccount(st model.SubjectType, subjectID uuid.UUID) *model.LedgerAccount {
	f.t.Helper()
	acc, err := f.svc.EnsureAccount(f.ctx, f.school, st, subjectID, f.period.AcademicPeriodID)
	if err != nil {
		f.t.Fatalf("EnsureAccount: %v", err)
	}
	return acc
}

func (f *fixture) mkDueItem(acc *model.LedgerAccount, cat *model.DueCategory, periodKey string, amount int64) *model.DueItem {
	f.t.Helper()
	d, err := f.svc.CreateDueItem(f.ctx, f.school, service.NewDueItem{
		AccountID:  acc.AccountID,
		CategoryID: cat.DueCategoryID,
		AmountIDR:  amount,
		PeriodKey:  periodKey,
	})
	if err != nil {
		f.t.Fatalf("CreateDueItem: %v", err)
	}
	return d
}

func (f *fixture) pay(dueItemID uuid.UUID, amount int64, method model.PaymentMethod, ref string) (*model.Payment, *service.Receipt, error) {
	f.t.Helper()
	return f.svc.RecordPayment(f.ctx, f.school, service.RecordPaymentInput{
		DueItemID: dueItemID,
		AmountIDR: amount,
		Method:    method,
		Reference: ref,
		CreatedBy: f.userID,
	})
}

func (f *fixture) mustPay(dueItemID uuid.UUID, amount int64, method model.PaymentMethod, ref string) (*model.Payment, *service.Receipt) {
	f.t.Helper()
	p, r, err := f.pay(dueItemID, amount, method, ref)
	if err != nil {
		f.t.Fatalf("RecordPayment(%d): %v", amount, err)
	}
	return p, r
}

func (f *fixture) detail(dueItemID uuid.UUID) *service.DueItemDetail {
	f.t.Helper()
	d, err := f.svc.GetDueItemDetail(f.ctx, f.school, dueItemID)
	if err != nil {
		f.t.Fatalf("GetDueItemDetail: %v", err)
	}
	return d
}
