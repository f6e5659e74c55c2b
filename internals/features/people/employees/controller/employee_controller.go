// file: internals/features/people/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	ledgermodel "sekolahku_backend/internals/features/finance/ledger/model"
	ledgerservice "sekolahku_backend/internals/features/finance/ledger/service"
	"sekolahku_backend/internals/features/finance/ledger/storage"
	dto "sekolahku_backend/internals/features/people/employees/dto"
	model "sekolahku_backend/internals/features/people/employees/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type EmployeeController struct {
	DB        *gorm.DB
	Ledger    *ledgerservice.Service
	Validator *validator.Validate
}

func NewEmployeeController(db *gorm.DB, ledger *ledgerservice.Service) *EmployeeController {
	return &EmployeeController{
		DB:        db,
		Ledger:    ledger,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	e := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(e).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return helper.Error(c, fiber.StatusConflict, "NIP sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pegawai terdaftar", dto.FromModelEmployee(e))
}

// ========== List ==========
func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	p := helper.ParsePage(c, "employee_name", "asc", helper.AdminPageOpts)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Employee{}).
		Where("employee_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("role")); v != "" {
		q = q.Where("? = ANY(employee_roles)", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("employee_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(map[string]string{
		"employee_name":         "employee_name",
		"employee_reference_no": "employee_reference_no",
		"created_at":            "employee_created_at",
	}, "employee_name")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Employee
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.FromModelEmployees(list),
		"meta":  helper.BuildPageMeta(total, p),
	})
}

// ========== Patch ==========
func (ctl *EmployeeController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "employee_id invalid")
	}

	var e model.Employee
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("employee_id = ? AND employee_school_id = ?", id, schoolID).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&e)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&e).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Pegawai diperbarui", dto.FromModelEmployee(&e))
}

// ========== Delete (soft delete + snapshot) ==========
// Sama dengan siswa: riwayat gaji/iuran tetap terbaca lewat kolom snapshot.
func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "employee_id invalid")
	}

	ctx := c.UserContext()

	if c.Query("hard") == "true" {
		if err := ctl.Ledger.CheckSubjectDeletable(ctx, schoolID, ledgermodel.SubjectTypeEmployee, id); err != nil {
			return helper.FromServiceError(c, err)
		}
		res := ctl.DB.WithContext(ctx).Unscoped().
			Where("employee_id = ? AND employee_school_id = ?", id, schoolID).
			Delete(&model.Employee{})
		if res.Error != nil {
			return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Pegawai tidak ditemukan")
		}
		return helper.Success(c, "Pegawai dihapus permanen", nil)
	}

	err = ctl.Ledger.SoftDeleteSubject(ctx, schoolID, ledgermodel.SubjectTypeEmployee, id,
		func(tx ledgerservice.Store) error {
			gs, ok := tx.(*storage.GormStore)
			if !ok {
				return fiber.NewError(fiber.StatusInternalServerError, "store transaksi tidak dikenal")
			}
			return gs.DB().
				Where("employee_id = ? AND employee_school_id = ?", id, schoolID).
				Delete(&model.Employee{}).Error
		})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Pegawai dinonaktifkan", nil)
}
