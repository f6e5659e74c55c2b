// file: internals/features/finance/ledger/service/store.go
package service

import (
	"context"

	"github.com/google/uuid"

	periodmodel "sekolahku_backend/internals/features/academics/periods/model"
	"sekolahku_backend/internals/features/finance/ledger/model"
)

// Filter: ekspresi predikat komposabel untuk query due item.
// Dievaluasi satu kali oleh layer store — tidak ada query string dirakit
// per call site.
type Filter struct {
	CategoryID  *uuid.UUID
	AccountID   *uuid.UUID
	PeriodID    *uuid.UUID // periode akademik milik account
	PeriodKey   *string
	SubjectType *model.SubjectType
	Kind        *model.DueKind
}

// AccountScope: cakupan untuk bulk generation & agregasi
// (mis. "semua penghuni asrama aktif").
type AccountScope struct {
	SubjectType model.SubjectType
	PeriodID    *uuid.UUID
	SubjectIDs  []uuid.UUID
	HostelOnly  bool // khusus siswa: hanya penghuni asrama
	ActiveOnly  bool // subject belum di-soft-delete
}

// Store: kapabilitas persistensi Ledger (swappable; GormStore untuk produksi,
// MemStore untuk test). Kontrak error: ErrNotFound / ErrDuplicate.
type Store interface {
	// WithTx menjalankan fn dalam satu unit transaksional; fn menerima Store
	// yang terikat ke transaksi tersebut.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	/* ---- due categories ---- */
	CreateCategory(ctx context.Context, c *model.DueCategory) error
	GetCategory(ctx context.Context, schoolID, id uuid.UUID) (*model.DueCategory, error)
	ListCategories(ctx context.Context, schoolID uuid.UUID) ([]model.DueCategory, error)
	SaveCategory(ctx context.Context, c *model.DueCategory) error
	DeleteCategory(ctx context.Context, schoolID, id uuid.UUID) error
	CountDueItemsByCategory(ctx context.Context, schoolID, categoryID uuid.UUID) (int64, error)

	/* ---- accounts ---- */
	EnsureAccount(ctx context.Context, a *model.LedgerAccount) (*model.LedgerAccount, error)
	GetAccount(ctx context.Context, schoolID, id uuid.UUID) (*model.LedgerAccount, error)
	ListAccounts(ctx context.Context, schoolID uuid.UUID, scope AccountScope) ([]model.LedgerAccount, error)
	CountDuesBySubject(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) (int64, error)
	// SnapshotSubject menyalin nama & no. referensi subject ke kolom snapshot
	// semua due_items/payments historis milik subject tsb.
	SnapshotSubject(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID, name, refNo string) error

	/* ---- due items ---- */
	CreateDueItem(ctx context.Context, d *model.DueItem) error
	GetDueItem(ctx context.Context, schoolID, id uuid.UUID) (*model.DueItem, error)
	// GetDueItemForUpdate mengambil baris dengan row lock (FOR UPDATE) —
	// serialisasi recordPayment pada item yang sama.
	GetDueItemForUpdate(ctx context.Context, schoolID, id uuid.UUID) (*model.DueItem, error)
	FindDueItemByKey(ctx context.Context, accountID, categoryID uuid.UUID, periodKey string) (*model.DueItem, error)
	SaveDueItem(ctx context.Context, d *model.DueItem) error
	ListDueItems(ctx context.Context, schoolID uuid.UUID, f Filter) ([]model.DueItemWithPaid, error)

	/* ---- payments ---- */
	CreatePayment(ctx context.Context, p *model.Payment) error
	GetPayment(ctx context.Context, schoolID, id uuid.UUID) (*model.Payment, error)
	SavePayment(ctx context.Context, p *model.Payment) error
	ListPaymentsByDueItem(ctx context.Context, dueItemID uuid.UUID) ([]model.Payment, error)
	ListPaymentsByAccount(ctx context.Context, schoolID, accountID uuid.UUID) ([]model.Payment, error)
	// NextReceiptNo menaikkan counter kwitansi sekolah di DALAM transaksi
	// berjalan (baris counter di-lock FOR UPDATE).
	NextReceiptNo(ctx context.Context, schoolID uuid.UUID) (int64, error)

	/* ---- academic periods ---- */
	CreatePeriod(ctx context.Context, p *periodmodel.AcademicPeriod) error
	GetPeriod(ctx context.Context, schoolID, id uuid.UUID) (*periodmodel.AcademicPeriod, error)
	ListPeriods(ctx context.Context, schoolID uuid.UUID) ([]periodmodel.AcademicPeriod, error)
	GetActivePeriod(ctx context.Context, schoolID uuid.UUID) (*periodmodel.AcademicPeriod, error)
	SavePeriod(ctx context.Context, p *periodmodel.AcademicPeriod) error
}
