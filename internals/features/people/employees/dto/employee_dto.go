// file: internals/features/people/employees/dto/employee_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sekolahku_backend/internals/features/people/employees/model"
)

type CreateEmployeeRequest struct {
	EmployeeName        string   `json:"employee_name"         validate:"required,max=120"`
	EmployeeReferenceNo string   `json:"employee_reference_no" validate:"required,max=60"` // NIP
	EmployeeRoles       []string `json:"employee_roles"        validate:"omitempty,dive,max=40"`
}

func (r *CreateEmployeeRequest) ToModel(schoolID uuid.UUID) *model.Employee {
	return &model.Employee{
		EmployeeSchoolID:    schoolID,
		EmployeeName:        r.EmployeeName,
		EmployeeReferenceNo: r.EmployeeReferenceNo,
		EmployeeRoles:       pq.StringArray(r.EmployeeRoles),
	}
}

type UpdateEmployeeRequest struct {
	EmployeeName  *string  `json:"employee_name"  validate:"omitempty,max=120"`
	EmployeeRoles []string `json:"employee_roles" validate:"omitempty,dive,max=40"`
}

func (r *UpdateEmployeeRequest) ApplyTo(e *model.Employee) {
	if r.EmployeeName != nil {
		e.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeRoles != nil {
		e.EmployeeRoles = pq.StringArray(r.EmployeeRoles)
	}
}

type EmployeeResponse struct {
	EmployeeID          uuid.UUID `json:"employee_id"`
	EmployeeName        string    `json:"employee_name"`
	EmployeeReferenceNo string    `json:"employee_reference_no"`
	EmployeeRoles       []string  `json:"employee_roles"`
}

func FromModelEmployee(e *model.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:          e.EmployeeID,
		EmployeeName:        e.EmployeeName,
		EmployeeReferenceNo: e.EmployeeReferenceNo,
		EmployeeRoles:       []string(e.EmployeeRoles),
	}
}

func FromModelEmployees(list []model.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelEmployee(&list[i]))
	}
	return out
}
