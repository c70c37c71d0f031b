package service

import (
	"context"
	"errors"
	"fmt"

	"staffhub.app/api-server/common/id"
	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/store"
)

type CreateDepartmentParams struct {
	Name   string
	Status model.Status
}

type ListDepartmentsParams struct {
	Status *model.Status
	Search *string
	Page   int
	Limit  int
}

type DepartmentPage struct {
	Departments []model.Department
	Total       int64
	Page        int
	Limit       int
	TotalPages  int
}

type DepartmentService interface {
	Create(ctx context.Context, params CreateDepartmentParams) (*model.Department, error)
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	List(ctx context.Context, params ListDepartmentsParams) (*DepartmentPage, error)
	ListAll(ctx context.Context) ([]model.Department, error)
	Update(ctx context.Context, id int64, params store.UpdateDepartmentParams) (*model.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	stores StoreProvider
	tx     TxRunner
}

func NewDepartmentService(stores StoreProvider, tx TxRunner) DepartmentService {
	return &departmentService{
		stores: stores,
		tx:     tx,
	}
}

func (s *departmentService) Create(ctx context.Context, params CreateDepartmentParams) (*model.Department, error) {
	status := params.Status
	if status == "" {
		status = model.StatusActive
	}

	dept := &model.Department{
		ID:     id.New(),
		Name:   params.Name,
		Status: status,
	}

	if err := s.stores.Departments().Create(ctx, dept); err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}

	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, deptID int64) (*model.Department, error) {
	dept, err := s.stores.Departments().GetByID(ctx, deptID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("getting department: %w", err)
	}
	return dept, nil
}

func (s *departmentService) List(ctx context.Context, params ListDepartmentsParams) (*DepartmentPage, error) {
	page, limit := normalizePage(params.Page, params.Limit)

	depts, total, err := s.stores.Departments().List(ctx, store.ListDepartmentsParams{
		Status: params.Status,
		Search: params.Search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}

	return &DepartmentPage{
		Departments: depts,
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages(total, limit),
	}, nil
}

func (s *departmentService) ListAll(ctx context.Context) ([]model.Department, error) {
	depts, err := s.stores.Departments().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing all departments: %w", err)
	}
	return depts, nil
}

func (s *departmentService) Update(ctx context.Context, deptID int64, params store.UpdateDepartmentParams) (*model.Department, error) {
	if params.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	if _, err := s.stores.Departments().Update(ctx, deptID, params); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("updating department: %w", err)
	}

	// Re-read for the derived employee count.
	return s.GetByID(ctx, deptID)
}

// Delete refuses to remove a department that still has employees. The
// dependency check and the delete share one transaction so a concurrent
// employee insert cannot slip between them.
func (s *departmentService) Delete(ctx context.Context, deptID int64) error {
	return s.tx.WithTx(ctx, func(stores StoreProvider) error {
		count, err := stores.Departments().CountEmployees(ctx, deptID)
		if err != nil {
			return fmt.Errorf("counting dependent employees: %w", err)
		}
		if count > 0 {
			return ErrDepartmentHasEmployees
		}

		if err := stores.Departments().Delete(ctx, deptID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrDepartmentNotFound
			}
			return fmt.Errorf("deleting department: %w", err)
		}
		return nil
	})
}
