package dto

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type DepartmentListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type EmployeeListQuery struct {
	Status     string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search     string `form:"search"`
	Department int64  `form:"department"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}
