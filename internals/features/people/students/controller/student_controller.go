// file: internals/features/people/students/controller/student_controller.go
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
	dto "sekolahku_backend/internals/features/people/students/dto"
	model "sekolahku_backend/internals/features/people/students/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Ledger    *ledgerservice.Service
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB, ledger *ledgerservice.Service) *StudentController {
	return &StudentController{
		DB:        db,
		Ledger:    ledger,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	s := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(s).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return helper.Error(c, fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa terdaftar", dto.FromModelStudent(s))
}

// ========== List ==========
func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	p := helper.ParsePage(c, "student_name", "asc", helper.AdminPageOpts)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.Student{}).
		Where("student_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("hostel")); v == "true" {
		q = q.Where("student_is_hostel_resident = TRUE")
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("student_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(map[string]string{
		"student_name":         "student_name",
		"student_reference_no": "student_reference_no",
		"created_at":           "student_created_at",
	}, "student_name")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Student
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.FromModelStudents(list),
		"meta":  helper.BuildPageMeta(total, p),
	})
}

// ========== Patch ==========
func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id invalid")
	}

	var s model.Student
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&s)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&s).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Siswa diperbarui", dto.FromModelStudent(&s))
}

// ========== Delete (soft delete + snapshot) ==========
// Default: snapshot nama/NIS ke riwayat iuran lalu soft-delete, satu
// transaksi. ?hard=true meminta hard delete — ditolak 409 selama masih ada
// riwayat finansial.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id invalid")
	}

	ctx := c.UserContext()

	if c.Query("hard") == "true" {
		if err := ctl.Ledger.CheckSubjectDeletable(ctx, schoolID, ledgermodel.SubjectTypeStudent, id); err != nil {
			return helper.FromServiceError(c, err)
		}
		res := ctl.DB.WithContext(ctx).Unscoped().
			Where("student_id = ? AND student_school_id = ?", id, schoolID).
			Delete(&model.Student{})
		if res.Error != nil {
			return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.Success(c, "Siswa dihapus permanen", nil)
	}

	err = ctl.Ledger.SoftDeleteSubject(ctx, schoolID, ledgermodel.SubjectTypeStudent, id,
		func(tx ledgerservice.Store) error {
			gs, ok := tx.(*storage.GormStore)
			if !ok {
				return fiber.NewError(fiber.StatusInternalServerError, "store transaksi tidak dikenal")
			}
			return gs.DB().
				Where("student_id = ? AND student_school_id = ?", id, schoolID).
				Delete(&model.Student{}).Error
		})
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Siswa dinonaktifkan", nil)
}
