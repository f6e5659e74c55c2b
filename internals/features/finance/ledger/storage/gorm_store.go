// file: internals/features/finance/ledger/storage/gorm_store.go
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	periodmodel "sekolahku_backend/internals/features/academics/periods/model"
	"sekolahku_backend/internals/features/finance/ledger/model"
	"sekolahku_backend/internals/features/finance/ledger/service"
)

// GormStore: implementasi service.Store di atas PostgreSQL (gorm).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// DB mengekspos handle gorm yang sedang dipakai store (di dalam WithTx:
// handle transaksi) — untuk operasi tabel di luar kontrak Store yang harus
// ikut transaksi yang sama, mis. soft-delete baris subject.
func (g *GormStore) DB() *gorm.DB { return g.db }

// WithTx: fn menerima Store yang terikat transaksi gorm.
func (g *GormStore) WithTx(ctx context.Context, fn func(tx service.Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// mapErr menormalkan error gorm/postgres ke kontrak service.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return service.ErrDuplicate
	}
	return err
}

/* ===================== due categories ===================== */

func (g *GormStore) CreateCategory(ctx context.Context, c *model.DueCategory) error {
	return mapErr(g.db.WithContext(ctx).Create(c).Error)
}

func (g *GormStore) GetCategory(ctx context.Context, schoolID, id uuid.UUID) (*model.DueCategory, error) {
	var c model.DueCategory
	err := g.db.WithContext(ctx).
		Where("due_category_id = ? AND due_category_school_id = ?", id, schoolID).
		First(&c).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (g *GormStore) ListCategories(ctx context.Context, schoolID uuid.UUID) ([]model.DueCategory, error) {
	var list []model.DueCategory
	err := g.db.WithContext(ctx).
		Where("due_category_school_id = ?", schoolID).
		Order("due_category_code ASC").
		Find(&list).Error
	return list, mapErr(err)
}

func (g *GormStore) SaveCategory(ctx context.Context, c *model.DueCategory) error {
	return mapErr(g.db.WithContext(ctx).Save(c).Error)
}

func (g *GormStore) DeleteCategory(ctx context.Context, schoolID, id uuid.UUID) error {
	res := g.db.WithContext(ctx).
		Where("due_category_id = ? AND due_category_school_id = ?", id, schoolID).
		Delete(&model.DueCategory{})
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (g *GormStore) CountDueItemsByCategory(ctx context.Context, schoolID, categoryID uuid.UUID) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&model.DueItem{}).
		Where("due_item_school_id = ? AND due_item_category_id = ?", schoolID, categoryID).
		Count(&n).Error
	return n, mapErr(err)
}

/* ===================== accounts ===================== */

func (g *GormStore) EnsureAccount(ctx context.Context, a *model.LedgerAccount) (*model.LedgerAccount, error) {
	find := func() (*model.LedgerAccount, error) {
		var existing model.LedgerAccount
		err := g.db.WithContext(ctx).
			Where("account_school_id = ? AND account_subject_type = ? AND account_subject_id = ? AND account_period_id = ?",
				a.AccountSchoolID, a.AccountSubjectType, a.AccountSubjectID, a.AccountPeriodID).
			First(&existing).Error
		if err != nil {
			return nil, mapErr(err)
		}
		return &existing, nil
	}

	if existing, err := find(); err == nil {
		return existing, nil
	} else if err != service.ErrNotFound {
		return nil, err
	}

	// Insert idempotent: kalah balapan pun tidak apa, re-fetch di bawah.
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(a).Error
	if err != nil {
		if mapped := mapErr(err); mapped != service.ErrDuplicate {
			return nil, mapped
		}
	}
	return find()
}

func (g *GormStore) GetAccount(ctx context.Context, schoolID, id uuid.UUID) (*model.LedgerAccount, error) {
	var a model.LedgerAccount
	err := g.db.WithContext(ctx).
		Where("account_id = ? AND account_school_id = ?", id, schoolID).
		First(&a).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (g *GormStore) ListAccounts(ctx context.Context, schoolID uuid.UUID, scope service.AccountScope) ([]model.LedgerAccount, error) {
	q := g.db.WithContext(ctx).Model(&model.LedgerAccount{}).
		Where("account_school_id = ?", schoolID).
		Where("account_subject_type = ?", scope.SubjectType)

	if scope.PeriodID != nil {
		q = q.Where("account_period_id = ?", *scope.PeriodID)
	}
	if len(scope.SubjectIDs) > 0 {
		q = q.Where("account_subject_id IN ?", scope.SubjectIDs)
	}

	switch scope.SubjectType {
	case model.SubjectTypeStudent:
		if scope.HostelOnly || scope.ActiveOnly {
			q = q.Joins("JOIN students s ON s.student_id = ledger_accounts.account_subject_id")
			if scope.HostelOnly {
				q = q.Where("s.student_is_hostel_resident = TRUE")
			}
			if scope.ActiveOnly {
				q = q.Where("s.student_deleted_at IS NULL")
			}
		}
	case model.SubjectTypeEmployee:
		if scope.ActiveOnly {
			q = q.Joins("JOIN employees e ON e.employee_id = ledger_accounts.account_subject_id").
				Where("e.employee_deleted_at IS NULL")
		}
	}

	var list []model.LedgerAccount
	err := q.Order("account_created_at ASC").Find(&list).Error
	return list, mapErr(err)
}

func (g *GormStore) CountDuesBySubject(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&model.DueItem{}).
		Joins("JOIN ledger_accounts a ON a.account_id = due_items.due_item_account_id").
		Where("a.account_school_id = ? AND a.account_subject_type = ? AND a.account_subject_id = ?",
			schoolID, st, subjectID).
		Count(&n).Error
	return n, mapErr(err)
}

func (g *GormStore) SnapshotSubject(ctx context.Context, schoolID uuid.UUID, st model.SubjectType, subjectID uuid.UUID, name, refNo string) error {
	db := g.db.WithContext(ctx)

	res := db.Exec(`
		UPDATE due_items SET
			due_item_deleted_subject_name = ?,
			due_item_deleted_subject_reference_no = ?
		WHERE due_item_account_id IN (
			SELECT account_id FROM ledger_accounts
			WHERE account_school_id = ? AND account_subject_type = ? AND account_subject_id = ?
		)`, name, refNo, schoolID, st, subjectID)
	if res.Error != nil {
		return mapErr(res.Error)
	}

	res = db.Exec(`
		UPDATE payments SET
			payment_deleted_subject_name = ?,
			payment_deleted_subject_reference_no = ?
		WHERE payment_due_item_id IN (
			SELECT due_item_id FROM due_items
			WHERE due_item_account_id IN (
				SELECT account_id FROM ledger_accounts
				WHERE account_school_id = ? AND account_subject_type = ? AND account_subject_id = ?
			)
		)`, name, refNo, schoolID, st, subjectID)
	return mapErr(res.Error)
}

/* ===================== due items ===================== */

func (g *GormStore) CreateDueItem(ctx context.Context, d *model.DueItem) error {
	return mapErr(g.db.WithContext(ctx).Create(d).Error)
}

func (g *GormStore) GetDueItem(ctx context.Context, schoolID, id uuid.UUID) (*model.DueItem, error) {
	var d model.DueItem
	err := g.db.WithContext(ctx).
		Where("due_item_id = ? AND due_item_school_id = ?", id, schoolID).
		First(&d).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &d, nil
}

func (g *GormStore) GetDueItemForUpdate(ctx context.Context, schoolID, id uuid.UUID) (*model.DueItem, error) {
	var d model.DueItem
	err := g.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("due_item_id = ? AND due_item_school_id = ?", id, schoolID).
		First(&d).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &d, nil
}

func (g *GormStore) FindDueItemByKey(ctx context.Context, accountID, categoryID uuid.UUID, periodKey string) (*model.DueItem, error) {
	var d model.DueItem
	err := g.db.WithContext(ctx).
		Where("due_item_account_id = ? AND due_item_category_id = ? AND due_item_period_key = ?",
			accountID, categoryID, periodKey).
		First(&d).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &d, nil
}

func (g *GormStore) SaveDueItem(ctx context.Context, d *model.DueItem) error {
	return mapErr(g.db.WithContext(ctx).Save(d).Error)
}

func (g *GormStore) ListDueItems(ctx context.Context, schoolID uuid.UUID, f service.Filter) ([]model.DueItemWithPaid, error) {
	q := g.db.WithContext(ctx).Model(&model.DueItem{}).
		Select(`due_items.*,
			COALESCE((SELECT SUM(p.payment_amount_idr)
			          FROM payments p
			          WHERE p.payment_due_item_id = due_items.due_item_id
			            AND NOT p.payment_voided), 0) AS paid_total_idr`).
		Where("due_item_school_id = ?", schoolID)

	if f.CategoryID != nil {
		q = q.Where("due_item_category_id = ?", *f.CategoryID)
	}
	if f.AccountID != nil {
		q = q.Where("due_item_account_id = ?", *f.AccountID)
	}
	if f.PeriodKey != nil {
		q = q.Where("due_item_period_key = ?", *f.PeriodKey)
	}
	if f.Kind != nil {
		q = q.Where("due_item_kind = ?", *f.Kind)
	}
	if f.SubjectType != nil || f.PeriodID != nil {
		q = q.Joins("JOIN ledger_accounts a ON a.account_id = due_items.due_item_account_id")
		if f.SubjectType != nil {
			q = q.Where("a.account_subject_type = ?", *f.SubjectType)
		}
		if f.PeriodID != nil {
			q = q.Where("a.account_period_id = ?", *f.PeriodID)
		}
	}

	var rows []model.DueItemWithPaid
	err := q.Order("due_items.due_item_created_at ASC").Scan(&rows).Error
	return rows, mapErr(err)
}

/* ===================== payments ===================== */

func (g *GormStore) CreatePayment(ctx context.Context, p *model.Payment) error {
	return mapErr(g.db.WithContext(ctx).Create(p).Error)
}

func (g *GormStore) GetPayment(ctx context.Context, schoolID, id uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	err := g.db.WithContext(ctx).
		Where("payment_id = ? AND payment_school_id = ?", id, schoolID).
		First(&p).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (g *GormStore) SavePayment(ctx context.Context, p *model.Payment) error {
	return mapErr(g.db.WithContext(ctx).Save(p).Error)
}

func (g *GormStore) ListPaymentsByDueItem(ctx context.Context, dueItemID uuid.UUID) ([]model.Payment, error) {
	var list []model.Payment
	err := g.db.WithContext(ctx).
		Where("payment_due_item_id = ?", dueItemID).
		Order("payment_receipt_no ASC").
		Find(&list).Error
	return list, mapErr(err)
}

func (g *GormStore) ListPaymentsByAccount(ctx context.Context, schoolID, accountID uuid.UUID) ([]model.Payment, error) {
	var list []model.Payment
	err := g.db.WithContext(ctx).
		Joins("JOIN due_items d ON d.due_item_id = payments.payment_due_item_id").
		Where("payments.payment_school_id = ? AND d.due_item_account_id = ?", schoolID, accountID).
		Order("payments.payment_receipt_no ASC").
		Find(&list).Error
	return list, mapErr(err)
}

// NextReceiptNo: counter per sekolah, di-lock FOR UPDATE dalam transaksi
// berjalan — concurrent commit tidak pernah menghasilkan nomor duplikat
// ataupun mundur.
func (g *GormStore) NextReceiptNo(ctx context.Context, schoolID uuid.UUID) (int64, error) {
	db := g.db.WithContext(ctx)

	// Pastikan baris counter ada (idempotent).
	if err := db.Exec(`
		INSERT INTO receipt_counters (receipt_counter_school_id, receipt_counter_last_no, receipt_counter_updated_at)
		VALUES (?, 0, now())
		ON CONFLICT (receipt_counter_school_id) DO NOTHING`, schoolID).Error; err != nil {
		return 0, mapErr(err)
	}

	var rc model.ReceiptCounter
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("receipt_counter_school_id = ?", schoolID).
		First(&rc).Error; err != nil {
		return 0, mapErr(err)
	}

	next := rc.ReceiptCounterLastNo + 1
	if err := db.Model(&model.ReceiptCounter{}).
		Where("receipt_counter_school_id = ?", schoolID).
		Update("receipt_counter_last_no", next).Error; err != nil {
		return 0, mapErr(err)
	}
	return next, nil
}

/* ===================== academic periods ===================== */

func (g *GormStore) CreatePeriod(ctx context.Context, p *periodmodel.AcademicPeriod) error {
	return mapErr(g.db.WithContext(ctx).Create(p).Error)
}

func (g *GormStore) GetPeriod(ctx context.Context, schoolID, id uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	var p periodmodel.AcademicPeriod
	err := g.db.WithContext(ctx).
		Where("academic_period_id = ? AND academic_period_school_id = ?", id, schoolID).
		First(&p).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (g *GormStore) ListPeriods(ctx context.Context, schoolID uuid.UUID) ([]periodmodel.AcademicPeriod, error) {
	var list []periodmodel.AcademicPeriod
	err := g.db.WithContext(ctx).
		Where("academic_period_school_id = ?", schoolID).
		Order("academic_period_start_date DESC").
		Find(&list).Error
	return list, mapErr(err)
}

func (g *GormStore) GetActivePeriod(ctx context.Context, schoolID uuid.UUID) (*periodmodel.AcademicPeriod, error) {
	var p periodmodel.AcademicPeriod
	err := g.db.WithContext(ctx).
		Where("academic_period_school_id = ? AND academic_period_status = ?",
			schoolID, periodmodel.PeriodStatusActive).
		First(&p).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (g *GormStore) SavePeriod(ctx context.Context, p *periodmodel.AcademicPeriod) error {
	return mapErr(g.db.WithContext(ctx).Save(p).Error)
}
