package dto

import (
	"time"

	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/service"
	"staffhub.app/api-server/internal/store"
)

const dobFormat = "2006-01-02"

type CreateEmployeeRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required,min=7,max=20"`
	DOB          string  `json:"dob" binding:"required,datetime=2006-01-02"`
	Status       string  `json:"status" binding:"required,oneof=active inactive"`
	Photo        *string `json:"photo,omitempty"`
	DepartmentID int64   `json:"department_id,string" binding:"required"`
	Salary       float64 `json:"salary" binding:"required,gt=0"`
}

func (r *CreateEmployeeRequest) ToParams() service.CreateEmployeeParams {
	dob, _ := time.Parse(dobFormat, r.DOB) // format enforced by binding
	return service.CreateEmployeeParams{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		DOB:          dob,
		Photo:        r.Photo,
		Salary:       r.Salary,
		Status:       model.Status(r.Status),
		DepartmentID: r.DepartmentID,
	}
}

// UpdateEmployeeRequest carries no email field: email is immutable after
// creation.
type UpdateEmployeeRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=2,max=255"`
	Phone        *string  `json:"phone,omitempty" binding:"omitempty,min=7,max=20"`
	DOB          *string  `json:"dob,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status       *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Photo        *string  `json:"photo,omitempty"`
	DepartmentID *int64   `json:"department_id,omitempty,string"`
	Salary       *float64 `json:"salary,omitempty" binding:"omitempty,gt=0"`
}

func (r *UpdateEmployeeRequest) ToParams() store.UpdateEmployeeParams {
	params := store.UpdateEmployeeParams{
		DepartmentID: r.DepartmentID,
		Name:         r.Name,
		Phone:        r.Phone,
		Salary:       r.Salary,
		Photo:        r.Photo,
	}
	if r.DOB != nil {
		dob, _ := time.Parse(dobFormat, *r.DOB)
		params.DOB = &dob
	}
	if r.Status != nil {
		status := model.Status(*r.Status)
		params.Status = &status
	}
	return params
}

type EmployeeResponse struct {
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DOB            string    `json:"dob"`
	Status         string    `json:"status"`
	DepartmentName string    `json:"department_name"`
	Photo          *string   `json:"photo,omitempty"`
	Salary         float64   `json:"salary"`
	ID             int64     `json:"id,string"`
	DepartmentID   int64     `json:"department_id,string"`
}

func ToEmployeeResponse(emp *model.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:             emp.ID,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Name:           emp.Name,
		Email:          emp.Email,
		Phone:          emp.Phone,
		DOB:            emp.DOB.Format(dobFormat),
		Salary:         emp.Salary,
		Status:         string(emp.Status),
		Photo:          emp.Photo,
		CreatedAt:      emp.CreatedAt,
		ModifiedAt:     emp.ModifiedAt,
	}
}

func ToEmployeeResponses(emps []model.Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, len(emps))
	for i := range emps {
		result[i] = *ToEmployeeResponse(&emps[i])
	}
	return result
}
