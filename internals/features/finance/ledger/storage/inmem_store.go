// file: internals/features/finance/ledger/storage/inmem_store.go
package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	periodmodel "sekolahku_backend/internals/features/academics/periods/model"
	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

// MemStore: implementasi service.Store in-memory untuk test.
// WithTx diserialisasi lewat mutex; rollback lewat snapshot map —
// kontrak yang teramati service (ErrNotFound/ErrDuplicate, atomisitas)
// sama dengan GormStore.
type MemStore struct {
	mu sync.Mutex

	categories map[uuid.UUID]model.DueCategory
	accounts   map[uuid.UUID]model.LedgerAccount
	dueItems   map[uuid.UUID]model.DueItem
	payments   map[uuid.UUID]model.Payment
	periods    map[uuid.UUID]periodmodel.AcademicPeriod
	counters   map[uuid.UUID]int64

	// subject flags agar scope filter (hostel/active) bisa diuji tanpa DB
	hostel  map[uuid.UUID]bool
	deleted map[uuid.UUID]bool

	seq int64 // ordering pengganti created_at (monoton walau jam sama)
}

func NewMemStore() *MemStore {
	return &MemStore{
		categories: map[uuid.UUID]model.DueCategory{},
		accounts:   map[uuid.UUID]model.LedgerAccount{},
		dueItems:   map[uuid.UUID]model.DueItem{},
		payments:   map[uuid.UUID]model.Payment{},
		periods:    map[uuid.UUID]periodmodel.AcademicPeriod{},
		counters:   map[uuid.UUID]int64{},
		hostel:     map[uuid.UUID]bool{},
		deleted:    map[uuid.UUID]bool{},
	}
}

// SetSubjectFlags mengatur flag asrama / soft-delete subject untuk filter scope.
func (m *MemStore) SetSubjectFlags(subjectID uuid.UUID, hostel, deleted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hostel[subjectID] = hostel
	m.deleted[subjectID] = deleted
}

func cloneMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (m *MemStore) snapshot() *MemStore {
	return &MemStore{
		categories: cloneMap(m.categories),
		accounts:   cloneMap(m.accounts),
		dueItems:   cloneMap(m.dueItems),
		payments:   cloneMap(m.payments),
		periods:    cloneMap(m.periods),
		counters:   cloneMap(m.counters),
		hostel:     cloneMap(m.hostel),
		deleted:    cloneMap(m.deleted),
		seq:        m.seq,
	}
}

func (m *MemStore) restore(s *MemStore) {
	m.categories = s.categories
	m.accounts = s.accounts
	m.dueItems = s.dueItems
	m.payments = s.payments
	m.periods = s.periods
	m.counters = s.counters
	m.hostel = s.hostel
	m.deleted = s.deleted
	m.seq = s.seq
}

func (m *MemStore) WithTx(_ context.Context, fn func(tx service.Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.snapshot()
	if err := fn(&memTx{m: m}); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

// memTx: view Store di dalam WithTx — mutex sudah dipegang.
type memTx struct{ m *MemStore }

// nested WithTx bergabung ke transaksi luar
func (t *memTx) WithTx(_ context.Context, fn func(tx service.Store) error) error {
	return fn(t)
}

/* ===================== due categories ===================== */

func (m *MemStore) createCategory(c *model.DueCategory) error {
	for _, o := range m.categories {
		if o.DueCategorySchoolID == c.DueCategorySchoolID && o.DueCategoryCode == c.DueCategoryCode {
			return service.ErrDuplicate
		}
	}
	if c.DueCategoryID == uuid.Nil {
		c.DueCategoryID = uuid.New()
	}
	m.categories[c.DueCategoryID] = *c
	return nil
}

func (m *MemStore) getCategory(schoolID, id uuid.UUID) (*model.DueCategory, error) {
	c, ok := m.categories[id]
	if !ok || c.DueCategorySchoolID != schoolID {
		return nil, service.ErrNotFound
	}
	out := c
	return &out, nil
}

func (m *MemStore) listCategories(schoolID uuid.UUID) []model.DueCategory {
	var list []model.DueCategory
	for _, c := range m.categories {
		if c.DueCategorySchoolID == schoolID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DueCategoryCode < list[j].DueCategoryCode })
	return list
}

func (m *MemStore) saveCategory(c *model.DueCategory) error {
	if _, ok := m.categories[c.DueCategoryID]; !ok {
		return service.ErrNotFound
	}
	m.categories[c.DueCategoryID] = *c
	return nil
}

func (m *MemStore) deleteCategory(schoolID, id uuid.UUID) error {
	c, ok := m.categories[id]
	if !ok || c.DueCategorySchoolID != schoolID {
		return service.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *MemStore) countDueItemsByCategory(schoolID, categoryID uuid.UUID) int64 {
	var n int64
	for _, d := range m.dueItems {
		if d.DueItemSchoolID == schoolID && d.DueItemCategoryID == categoryID {
			n++
		}
	}
	return n
}

func (m *MemStore) CreateCategory(_ context.Context, c *model.DueCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCategory(c)
}
func (t *memTx) CreateCategory(_ context.Context, c *model.DueCategory) error {
	return t.m.createCategory(c)
}

func (m *MemStore) GetCategory(_ context.Context, schoolID, id uuid.UUID) (*model.DueCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCategory(schoolID, id)
}
func (t *memTx) GetCategory(_ context.Context, schoolID, id uuid.UUID) (*model.DueCategory, error) {
	return t.m.getCategory(schoolID, id)
}

func (m *MemStore) ListCategories(_ context.Context, schoolID uuid.UUID) ([]model.DueCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCategories(schoolID), nil
}
func (t *memTx) ListCategories(_ context.Context, schoolID uuid.UUID) ([]model.DueCategory, error) {
	return t.m.listCategories(schoolID), nil
}

func (m *MemStore) SaveCategory(_ context.Context, c *model.DueCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCategory(c)
}
func (t *memTx) SaveCategory(_ context.Context, c *model.DueCategory) error {
	return t.m.saveCategory(c)
}

func (m *MemStore) DeleteCategory(_ context.Context, schoolID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCategory(schoolID, id)
}
func (t *memTx) DeleteCategory(_ context.Context, schoolID, id uuid.UUID) error {
	return t.m.deleteCategory(schoolID, id)
}

func (m *MemStore) CountDueItemsByCategory(_ context.Context, schoolID, categoryID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countDueItemsByCategory(schoolID, categoryID), nil
}
func (t *memTx) CountDueItemsByCategory(_ context.Context, schoolID, categoryID uuid.UUID) (int64, error) {
	return t.m.countDueItemsByCategory(schoolID, categoryID), nil
}

/* ===================== accounts ===================== */

func (m *MemStore) ensureAccount(a *model.LedgerAccount) (*model.LedgerAccount, error) {
	for _, o := range m.accounts {
		if o.AccountSchoolID == a.AccountSchoolID &&
			o.AccountSubjectType == a.AccountSubjectType &&
			o.AccountSubjectID == a.AccountSubjectID &&
			o.AccountPeriodID == a.AccountPeriodID {
			out := o
			return &out, nil
		}
	}
	if a.AccountID == uuid.Nil {
		a.AccountID = uuid.New()
	}
	m.seq++
	a.AccountCreatedAt = time.Unix(m.seq, 0)
	m.accounts[a.AccountID] = *a
	out := *a
	return &out, nil
}

func (m *MemStore) getAccount(schoolID, id uuid.UUID) (*model.LedgerAccount, error) {
	a, ok := m.accounts[id]
	if !ok || a.AccountSchoolID != schoolID {
		return nil, service.ErrNotFound
	}
	out := a
	return &out, nil
}

func (m *MemStore) listAccounts(schoolID uuid.UUID, scope service.AccountScope) []model.LedgerAccount {
	var list []model.LedgerAccount
	for _, a := range m.accounts {
		if a.AccountSchoolID != schoolID || a.AccountSubjectType != scope.SubjectType {
			continue
		}
		if scope.PeriodID != nil && a.AccountPeriodID != *scope.PeriodID {
			continue
		}
		if len(scope.SubjectIDs) > 0 {
			found := false
			for _, id := range scope.SubjectIDs {
				if id == a.AccountSubjectID {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if scope.HostelOnly && !m.hostel[a.AccountSubjectID] {
			continue
		}
		if scope.ActiveOnly && m.deleted[a.AccountSubjectID] {
			continue
		}
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].AccountCreatedAt.Before(list[j].AccountCreatedAt)
	})
	return list
}

func (m *MemStore) countDuesBySubject(schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) int64 {
	var n int64
	for _, d := range m.dueItems {
		a, ok := m.accounts[d.DueItemAccountID]
		if ok && a.AccountSchoolID == schoolID && a.AccountSubjectType == st && a.AccountSubjectID == subjectID {
			n++
		}
	}
	return n
}

func (m *MemStore) snapshotSubject(schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID, name, refNo string) {
	for id, d := range m.dueItems {
		a, ok := m.accounts[d.DueItemAccountID]
		if !ok || a.AccountSchoolID != schoolID || a.AccountSubjectType != st || a.AccountSubjectID != subjectID {
			continue
		}
		d.DueItemDeletedSubjectName = &name
		d.DueItemDeletedSubjectReferenceNo = &refNo
		m.dueItems[id] = d

		for pid, p := range m.payments {
			if p.PaymentDueItemID == d.DueItemID {
				p.PaymentDeletedSubjectName = &name
				p.PaymentDeletedSubjectReferenceNo = &refNo
				m.payments[pid] = p
			}
		}
	}
}

func (m *MemStore) EnsureAccount(_ context.Context, a *model.LedgerAccount) (*model.LedgerAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureAccount(a)
}
func (t *memTx) EnsureAccount(_ context.Context, a *model.LedgerAccount) (*model.LedgerAccount, error) {
	return t.m.ensureAccount(a)
}

func (m *MemStore) GetAccount(_ context.Context, schoolID, id uuid.UUID) (*model.LedgerAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getAccount(schoolID, id)
}
func (t *memTx) GetAccount(_ context.Context, schoolID, id uuid.UUID) (*model.LedgerAccount, error) {
	return t.m.getAccount(schoolID, id)
}

func (m *MemStore) ListAccounts(_ context.Context, schoolID uuid.UUID, scope service.AccountScope) ([]model.LedgerAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listAccounts(schoolID, scope), nil
}
func (t *memTx) ListAccounts(_ context.Context, schoolID uuid.UUID, scope service.AccountScope) ([]model.LedgerAccount, error) {
	return t.m.listAccounts(schoolID, scope), nil
}

func (m *MemStore) CountDuesBySubject(_ context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countDuesBySubject(schoolID, st, subjectID), nil
}
func (t *memTx) CountDuesBySubject(_ context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) (int64, error) {
	return t.m.countDuesBySubject(schoolID, st, subjectID), nil
}

func (m *MemStore) SnapshotSubject(_ context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID, name, refNo string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotSubject(schoolID, st, subjectID, name, refNo)
	return nil
}
func (t *memTx) SnapshotSubject(_ context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID, name, refNo string) error {
	t.m.snapshotSubject(schoolID, st, subjectID, name, refNo)
	return nil
}

/* ===================== due items ===================== */

func (m *MemStore) createDueItem(d *model.DueItem) error {
	for _, o := range m.dueItems {
		if o.DueItemAccountID == d.DueItemAccountID &&
			o.DueItemCategoryID == d.DueItemCategoryID &&
			o.DueItemPeriodKey == d.DueItemPeriodKey {
			return service.ErrDuplicate
		}
	}
	if d.DueItemID == uuid.Nil {
		d.DueItemID = uuid.New()
	}
	m.seq++
	d.DueItemCreatedAt = time.Unix(m.seq, 0)
	m.dueItems[d.DueItemID] = *d
	return nil
}

func (m *MemStore) getDueItem(schoolID, id uuid.UUID) (*model.DueItem, error) {
	d, ok := m.dueItems[id]
	if !ok || d.DueItemSchoolID != schoolID {
		return nil, service.ErrNotFound
	}
	out := d
	return &out, nil
}

func (m *MemStore) findDueItemByKey(accountID, categoryID uuid.UUID, periodKey string) (*model.DueItem, error) {
	for _, d := range m.dueItems {
		if d.DueItemAccountID == accountID && d.DueItemCategoryID == categoryID && d.DueItemPeriodKey == periodKey {
			out := d
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *MemStore) saveDueItem(d *model.DueItem) error {
	if _, ok := m.dueItems[d.DueItemID]; !ok {
		return service.ErrNotFound
	}
	m.dueItems[d.DueItemID] = *d
	return nil
}

func (m *MemStore) paidTotal(dueItemID uuid.UUID) int64 {
	var total int64
	for _, p := range m.payments {
		if p.PaymentDueItemID == dueItemID && !p.PaymentVoided {
			total += p.PaymentAmountIDR
		}
	}
	return total
}

func (m *MemStore) listDueItems(schoolID uuid.UUID, f service.Filter) []model.DueItemWithPaid {
	var list []model.DueItemWithPaid
	for _, d := range m.dueItems {
		if d.DueItemSchoolID != schoolID {
			continue
		}
		if f.CategoryID != nil && d.DueItemCategoryID != *f.CategoryID {
			continue
		}
		if f.AccountID != nil && d.DueItemAccountID != *f.AccountID {
			continue
		}
		if f.PeriodKey != nil && d.DueItemPeriodKey != *f.PeriodKey {
			continue
		}
		if f.Kind != nil && d.DueItemKind != *f.Kind {
			continue
		}
		if f.SubjectType != nil || f.PeriodID != nil {
			a, ok := m.accounts[d.DueItemAccountID]
			if !ok {
				continue
			}
			if f.SubjectType != nil && a.AccountSubjectType != *f.SubjectType {
				continue
			}
			if f.PeriodID != nil && a.AccountPeriodID != *f.PeriodID {
				continue
			}
		}
		list = append(list, model.DueItemWithPaid{DueItem: d, PaidTotalIDR: m.paidTotal(d.DueItemID)})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].DueItemCreatedAt.Before(list[j].DueItemCreatedAt)
	})
	return list
}

func (m *MemStore) CreateDueItem(_ context.Context, d *model.DueItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createDueItem(d)
}
func (t *memTx) CreateDueItem(_ context.Context, d *model.DueItem) error {
	return t.m.createDueItem(d)
}

func (m *MemStore) GetDueItem(_ context.Context, schoolID, id uuid.UUID) (*model.DueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getDueItem(schoolID, id)
}
func (t *memTx) GetDueItem(_ context.Context, schoolID, id uuid.UUID) (*model.DueItem, error) {
	return t.m.getDueItem(schoolID, id)
}

// Row lock tidak relevan di mem: WithTx sudah serial penuh.
func (m *MemStore) GetDueItemForUpdate(ctx context.Context, schoolID, id uuid.UUID) (*model.DueItem, error) {
	return m.GetDueItem(ctx, schoolID, id)
}
func (t *memTx) GetDueItemForUpdate(_ context.Context, schoolID, id uuid.UUID) (*model.DueItem, error) {
	return t.m.getDueItem(schoolID, id)
}

func (m *MemStore) FindDueItemByKey(_ context.Context, accountID, categoryID uuid.UUID, periodKey string) (*model.DueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findDueItemByKey(accountID, categoryID, periodKey)
}
func (t *memTx) FindDueItemByKey(_ context.Context, accountID, categoryID uuid.UUID, periodKey string) (*model.DueItem, error) {
	return t.m.findDueItemByKey(accountID, categoryID, periodKey)
}

func (m *MemStore) SaveDueItem(_ context.Context, d *model.DueItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveDueItem(d)
}
func (t *memTx) SaveDueItem(_ context.Context, d *model.DueItem) error {
	return t.m.saveDueItem(d)
}

func (m *MemStore) ListDueItems(_ context.Context, schoolID uuid.UUID, f service.Filter) ([]model.DueItemWithPaid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listDueItems(schoolID, f), nil
}
func (t *memTx) ListDueItems(_ context.Context, schoolID uuid.UUID, f service.Filter) ([]model.DueItemWithPaid, error) {
	return t.m.listDueItems(schoolID, f), nil
}

/* ===================== payments ===================== */

func (m *MemStore) createPayment(p *model.Payment) error {
	for _, o := range m.payments {
		if o.PaymentSchoolID == p.PaymentSchoolID && o.PaymentReceiptNo == p.PaymentReceiptNo {
			return service.ErrDuplicate
		}
	}
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	m.payments[p.PaymentID] = *p
	return nil
}

func (m *MemStore) getPayment(schoolID, id uuid.UUID) (*model.Payment, error) {
	p, ok := m.payments[id]
	if !ok || p.PaymentSchoolID != schoolID {
		return nil, service.ErrNotFound
	}
	out := p
	return &out, nil
}

func (m *MemStore) savePayment(p *model.Payment) error {
	if _, ok := m.payments[p.PaymentID]; !ok {
		return service.ErrNotFound
	}
	m.payments[p.PaymentID] = *p
	return nil
}

func (m *MemStore) listPaymentsByDueItem(dueItemID uuid.UUID) []model.Payment {
	var list []model.Payment
	for _, p := range m.payments {
		if p.PaymentDueItemID == dueItemID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PaymentReceiptNo < list[j].PaymentReceiptNo })
	return list
}

func (m *MemStore) listPaymentsByAccount(schoolID, accountID uuid.UUID) []model.Payment {
	var list []model.Payment
	for _, p := range m.payments {
		if p.PaymentSchoolID != schoolID {
			continue
		}
		d, ok := m.dueItems[p.PaymentDueItemID]
		if ok && d.DueItemAccountID == accountID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PaymentReceiptNo < list[j].PaymentReceiptNo })
	return list
}

func (m *MemStore) nextReceiptNo(schoolID uuid.UUID) int64 {
	m.counters[schoolID]++
	return m.counters[schoolID]
}

func (m *MemStore) CreatePayment(_ context.Context, p *model.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createPayment(p)
}
func (t *memTx) CreatePayment(_ context.Context, p *model.Payment) error {
	return t.m.createPayment(p)
}

func (m *MemStore) GetPayment(_ context.Context, schoolID, id uuid.UUID) (*model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getPayment(schoolID, id)
}
func (t *memTx) GetPayment(_ context.Context, schoolID, id uuid.UUID) (*model.Payment, error) {
	return t.m.getPayment(schoolID, id)
}

func (m *MemStore) SavePayment(_ context.Context, p *model.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.savePayment(p)
}
func (t *memTx) SavePayment(_ context.Context, p *model.Payment) error {
	return t.m.savePayment(p)
}

func (m *MemStore) ListPaymentsByDueItem(_ context.Context, dueItemID uuid.UUID) ([]model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listPaymentsByDueItem(dueItemID), nil
}
func (t *memTx) ListPaymentsByDueItem(_ context.Context, dueItemID uuid.UUID) ([]model.Payment, error) {
	return t.m.listPaymentsByDueItem(dueItemID), nil
}

func (m *MemStore) ListPaymentsByAccount(_ context.Context, schoolID, accountID uuid.UUID) ([]model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listPaymentsByAccount(schoolID, accountID), nil
}
func (t *memTx) ListPaymentsByAccount(_ context.Context, schoolID, accountID uuid.UUID) ([]model.Payment, error) {
	return t.m.listPaymentsByAccount(schoolID, accountID), nil
}

func (m *MemStore) NextReceiptNo(_ context.Context, schoolID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextReceiptNo(schoolID), nil
}
func (t *memTx) NextReceiptNo(_ context.Context, schoolID uuid.UUID) (int64, error) {
	return t.m.nextReceiptNo(schoolID), nil
}

/* ===================== academic periods ===================== */

func (m *MemStore) createPeriod(p *periodmodel.AcademicPeriod) error {
	for _, o := range m.periods {
		if o.AcademicPeriodSchoolID == p.AcademicPeriodSchoolID && o.AcademicPeriodLabel == p.AcademicPeriodLabel {
			return service.ErrDuplicate
		}
	}
	if p.AcademicPeriodID == uuid.Nil {
		p.AcademicPeriodID = uuid.New()
	}
	m.periods[p.AcademicPeriodID] = *p
	return nil
}

func (m *MemStore) getPeriod(schoolID, id uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	p, ok := m.periods[id]
	if !ok || p.AcademicPeriodSchoolID != schoolID {
		return nil, service.ErrNotFound
	}
	out := p
	return &out, nil
}

func (m *MemStore) listPeriods(schoolID uuid.UUID) []periodmodel.AcademicPeriod {
	var list []periodmodel.AcademicPeriod
	for _, p := range m.periods {
		if p.AcademicPeriodSchoolID == schoolID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].AcademicPeriodStartDate.After(list[j].AcademicPeriodStartDate)
	})
	return list
}

func (m *MemStore) getActivePeriod(schoolID uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	for _, p := range m.periods {
		if p.AcademicPeriodSchoolID == schoolID && p.AcademicPeriodStatus == periodmodel.PeriodStatusActive {
			out := p
			return &out, nil
		}
	}
	return nil, service.ErrNotFound
}

func (m *MemStore) savePeriod(p *periodmodel.AcademicPeriod) error {
	if _, ok := m.periods[p.AcademicPeriodID]; !ok {
		return service.ErrNotFound
	}
	m.periods[p.AcademicPeriodID] = *p
	return nil
}

func (m *MemStore) CreatePeriod(_ context.Context, p *periodmodel.AcademicPeriod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createPeriod(p)
}
func (t *memTx) CreatePeriod(_ context.Context, p *periodmodel.AcademicPeriod) error {
	return t.m.createPeriod(p)
}

func (m *MemStore) GetPeriod(_ context.Context, schoolID, id uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getPeriod(schoolID, id)
}
func (t *memTx) GetPeriod(_ context.Context, schoolID, id uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	return t.m.getPeriod(schoolID, id)
}

func (m *MemStore) ListPeriods(_ context.Context, schoolID uuid.UUID) ([]periodmodel.AcademicPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listPeriods(schoolID), nil
}
func (t *memTx) ListPeriods(_ context.Context, schoolID uuid.UUID) ([]periodmodel.AcademicPeriod, error) {
	return t.m.listPeriods(schoolID), nil
}

func (m *MemStore) GetActivePeriod(_ context.Context, schoolID uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getActivePeriod(schoolID)
}
func (t *memTx) GetActivePeriod(_ context.Context, schoolID uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	return t.m.getActivePeriod(schoolID)
}

func (m *MemStore) SavePeriod(_ context.Context, p *periodmodel.AcademicPeriod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.savePeriod(p)
}
func (t *memTx) SavePeriod(_ context.Context, p *periodmodel.AcademicPeriod) error {
	return t.m.savePeriod(p)
}
