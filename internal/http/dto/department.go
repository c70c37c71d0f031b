package dto

import (
	"time"

	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/store"
)

type CreateDepartmentRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=255"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type UpdateDepartmentRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=2,max=255"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

func (r *UpdateDepartmentRequest) ToParams() store.UpdateDepartmentParams {
	params := store.UpdateDepartmentParams{Name: r.Name}
	if r.Status != nil {
		status := model.Status(*r.Status)
		params.Status = &status
	}
	return params
}

type DepartmentResponse struct {
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	ID            int64     `json:"id,string"`
	EmployeeCount int64     `json:"employee_count"`
}

func ToDepartmentResponse(dept *model.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Status:        string(dept.Status),
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt,
		ModifiedAt:    dept.ModifiedAt,
	}
}

func ToDepartmentResponses(depts []model.Department) []DepartmentResponse {
	result := make([]DepartmentResponse, len(depts))
	for i := range depts {
		result[i] = *ToDepartmentResponse(&depts[i])
	}
	return result
}
