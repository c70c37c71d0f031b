package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffhub.app/api-server/common/id"
	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/store"
)

type CreateEmployeeParams struct {
	Name         string
	Email        string
	Phone        string
	DOB          time.Time
	Photo        *string
	Salary       float64
	Status       model.Status
	DepartmentID int64
}

type ListEmployeesParams struct {
	Status       *model.Status
	DepartmentID *int64
	Search       *string
	Page         int
	Limit        int
}

type EmployeePage struct {
	Employees  []model.Employee
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type EmployeeService interface {
	Create(ctx context.Context, params CreateEmployeeParams) (*model.Employee, error)
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	List(ctx context.Context, params ListEmployeesParams) (*EmployeePage, error)
	Update(ctx context.Context, id int64, params store.UpdateEmployeeParams) (*model.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	stores StoreProvider
	tx     TxRunner
}

func NewEmployeeService(stores StoreProvider, tx TxRunner) EmployeeService {
	return &employeeService{
		stores: stores,
		tx:     tx,
	}
}

// Create checks the department reference and the email claim inside the
// same transaction as the insert; the unique index remains the backstop
// for concurrent claims of one email.
func (s *employeeService) Create(ctx context.Context, params CreateEmployeeParams) (*model.Employee, error) {
	status := params.Status
	if status == "" {
		status = model.StatusActive
	}

	var created *model.Employee
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Departments().GetByID(ctx, params.DepartmentID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrDepartmentNotFound
			}
			return fmt.Errorf("checking department: %w", err)
		}

		if _, err := stores.Employees().GetByEmail(ctx, params.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking email availability: %w", err)
		}

		emp := &model.Employee{
			ID:           id.New(),
			DepartmentID: params.DepartmentID,
			Name:         params.Name,
			Email:        params.Email,
			Phone:        params.Phone,
			DOB:          params.DOB,
			Salary:       params.Salary,
			Status:       status,
			Photo:        params.Photo,
		}

		if err := stores.Employees().Create(ctx, emp); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return ErrEmailTaken
			}
			return fmt.Errorf("creating employee: %w", err)
		}

		// Re-read inside the transaction for the joined department name.
		full, err := stores.Employees().GetByID(ctx, emp.ID)
		if err != nil {
			return fmt.Errorf("reading created employee: %w", err)
		}
		created = full
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *employeeService) GetByID(ctx context.Context, empID int64) (*model.Employee, error) {
	emp, err := s.stores.Employees().GetByID(ctx, empID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("getting employee: %w", err)
	}
	return emp, nil
}

func (s *employeeService) List(ctx context.Context, params ListEmployeesParams) (*EmployeePage, error) {
	page, limit := normalizePage(params.Page, params.Limit)

	emps, total, err := s.stores.Employees().List(ctx, store.ListEmployeesParams{
		Status:       params.Status,
		DepartmentID: params.DepartmentID,
		Search:       params.Search,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}

	return &EmployeePage{
		Employees:  emps,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update applies a partial patch. A department reassignment is verified
// in the same transaction as the write.
func (s *employeeService) Update(ctx context.Context, empID int64, params store.UpdateEmployeeParams) (*model.Employee, error) {
	if params.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	var updated *model.Employee
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if params.DepartmentID != nil {
			if _, err := stores.Departments().GetByID(ctx, *params.DepartmentID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrDepartmentNotFound
				}
				return fmt.Errorf("checking department: %w", err)
			}
		}

		if _, err := stores.Employees().Update(ctx, empID, params); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("updating employee: %w", err)
		}

		full, err := stores.Employees().GetByID(ctx, empID)
		if err != nil {
			return fmt.Errorf("reading updated employee: %w", err)
		}
		updated = full
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *employeeService) Delete(ctx context.Context, empID int64) error {
	if err := s.stores.Employees().Delete(ctx, empID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("deleting employee: %w", err)
	}
	return nil
}
