package store

import (
	"context"
	"errors"
	"time"

	"staffhub.app/api-server/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// ListDepartmentsParams filters the paginated department listing. Nil
// pointers mean "no filter". Limit/Offset are already clamped by the
// caller.
type ListDepartmentsParams struct {
	Status *model.Status
	Search *string
	Limit  int
	Offset int
}

// UpdateDepartmentParams is a partial patch; only non-nil fields are
// written.
type UpdateDepartmentParams struct {
	Name   *string
	Status *model.Status
}

func (p UpdateDepartmentParams) Empty() bool {
	return p.Name == nil && p.Status == nil
}

type ListEmployeesParams struct {
	Status       *model.Status
	DepartmentID *int64
	Search       *string
	Limit        int
	Offset       int
}

// UpdateEmployeeParams is a partial patch. Email is deliberately absent:
// it is immutable after creation.
type UpdateEmployeeParams struct {
	DepartmentID *int64
	Name         *string
	Phone        *string
	DOB          *time.Time
	Salary       *float64
	Status       *model.Status
	Photo        *string
}

func (p UpdateEmployeeParams) Empty() bool {
	return p.DepartmentID == nil && p.Name == nil && p.Phone == nil &&
		p.DOB == nil && p.Salary == nil && p.Status == nil && p.Photo == nil
}

type DepartmentStore interface {
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	List(ctx context.Context, params ListDepartmentsParams) ([]model.Department, int64, error)
	ListAll(ctx context.Context) ([]model.Department, error)
	Create(ctx context.Context, dept *model.Department) error
	Update(ctx context.Context, id int64, params UpdateDepartmentParams) (*model.Department, error)
	Delete(ctx context.Context, id int64) error
	CountEmployees(ctx context.Context, id int64) (int64, error)
}

type EmployeeStore interface {
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context, params ListEmployeesParams) ([]model.Employee, int64, error)
	Create(ctx context.Context, emp *model.Employee) error
	Update(ctx context.Context, id int64, params UpdateEmployeeParams) (*model.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type StatsStore interface {
	EmployeeStats(ctx context.Context) (*model.EmployeeStats, error)
}

// Provider hands out entity stores bound to the same database handle,
// which is either the pool or one open transaction.
type Provider interface {
	Departments() DepartmentStore
	Employees() EmployeeStore
	Stats() StatsStore
}

// TxRunner scopes a group of store calls to a single transaction. The
// transaction is rolled back when fn returns an error and committed
// otherwise.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores Provider) error) error
	// WithReadTx runs fn inside a read-only repeatable-read transaction,
	// giving aggregate queries one consistent snapshot.
	WithReadTx(ctx context.Context, fn func(stores Provider) error) error
}
