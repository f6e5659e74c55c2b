// file: internals/features/people/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/people/students/model"
)

type CreateStudentRequest struct {
	StudentName             string `json:"student_name"               validate:"required,max=120"`
	StudentReferenceNo      string `json:"student_reference_no"       validate:"required,max=60"` // NIS
	StudentIsHostelResident bool   `json:"student_is_hostel_resident"`
}

func (r *CreateStudentRequest) ToModel(schoolID uuid.UUID) *model.Student {
	return &model.Student{
		StudentSchoolID:         schoolID,
		StudentName:             r.StudentName,
		StudentReferenceNo:      r.StudentReferenceNo,
		StudentIsHostelResident: r.StudentIsHostelResident,
	}
}

type UpdateStudentRequest struct {
	StudentName             *string `json:"student_name"               validate:"omitempty,max=120"`
	StudentIsHostelResident *bool   `json:"student_is_hostel_resident"`
}

func (r *UpdateStudentRequest) ApplyTo(s *model.Student) {
	if r.StudentName != nil {
		s.StudentName = *r.StudentName
	}
	if r.StudentIsHostelResident != nil {
		s.StudentIsHostelResident = *r.StudentIsHostelResident
	}
}

type StudentResponse struct {
	StudentID               uuid.UUID `json:"student_id"`
	StudentName             string    `json:"student_name"`
	StudentReferenceNo      string    `json:"student_reference_no"`
	StudentIsHostelResident bool      `json:"student_is_hostel_resident"`
}

func FromModelStudent(s *model.Student) StudentResponse {
	return StudentResponse{
		StudentID:               s.StudentID,
		StudentName:             s.StudentName,
		StudentReferenceNo:      s.StudentReferenceNo,
		StudentIsHostelResident: s.StudentIsHostelResident,
	}
}

func FromModelStudents(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelStudent(&list[i]))
	}
	return out
}
