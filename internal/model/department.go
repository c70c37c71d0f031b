package model

import "time"

// Department groups employees. EmployeeCount is derived from the
// employees table on read and is never stored.
type Department struct {
	CreatedAt     time.Time
	ModifiedAt    time.Time
	Name          string
	Status        Status
	ID            int64
	EmployeeCount int64
}
