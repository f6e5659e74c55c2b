// file: internals/features/academics/periods/dto/academic_period_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/periods/model"
)

type CreateAcademicPeriodRequest struct {
	AcademicPeriodLabel     string `json:"academic_period_label"      validate:"required,max=60"`
	AcademicPeriodStartDate string `json:"academic_period_start_date" validate:"required,datetime=2006-01-02"`
	AcademicPeriodEndDate   string `json:"academic_period_end_date"   validate:"required,datetime=2006-01-02"`
}

type AcademicPeriodResponse struct {
	AcademicPeriodID        uuid.UUID          `json:"academic_period_id"`
	AcademicPeriodLabel     string             `json:"academic_period_label"`
	AcademicPeriodStartDate time.Time          `json:"academic_period_start_date"`
	AcademicPeriodEndDate   time.Time          `json:"academic_period_end_date"`
	AcademicPeriodStatus    model.PeriodStatus `json:"academic_period_status"`
}

func FromModelAcademicPeriod(p *model.AcademicPeriod) AcademicPeriodResponse {
	return AcademicPeriodResponse{
		AcademicPeriodID:        p.AcademicPeriodID,
		AcademicPeriodLabel:     p.AcademicPeriodLabel,
		AcademicPeriodStartDate: p.AcademicPeriodStartDate,
		AcademicPeriodEndDate:   p.AcademicPeriodEndDate,
		AcademicPeriodStatus:    p.AcademicPeriodStatus,
	}
}

func FromModelAcademicPeriods(list []model.AcademicPeriod) []AcademicPeriodResponse {
	out := make([]AcademicPeriodResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelAcademicPeriod(&list[i]))
	}
	return out
}
