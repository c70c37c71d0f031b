package model

import "time"

// Employee always references an existing department. DepartmentName is
// joined in on read and is empty on freshly constructed values.
type Employee struct {
	CreatedAt      time.Time
	ModifiedAt     time.Time
	DOB            time.Time
	Name           string
	Email          string
	Phone          string
	DepartmentName string
	Status         Status
	Photo          *string
	Salary         float64
	ID             int64
	DepartmentID   int64
}
