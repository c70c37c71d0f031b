package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/service"
	"staffhub.app/api-server/internal/store"
)

var _ = Describe("EmployeeService", func() {
	var (
		stores *mockStores
		svc    service.EmployeeService
		ctx    context.Context
	)

	createParams := func() service.CreateEmployeeParams {
		return service.CreateEmployeeParams{
			Name:         "Ada Lovelace",
			Email:        "ada@example.com",
			Phone:        "+4412345678",
			DOB:          time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
			Salary:       60000,
			DepartmentID: 42,
		}
	}

	BeforeEach(func() {
		stores = newMockStores()
		svc = service.NewEmployeeService(stores, stores)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("inserts and returns the row with the joined department name", func() {
			var inserted *model.Employee
			stores.employees.createFn = func(_ context.Context, emp *model.Employee) error {
				inserted = emp
				return nil
			}
			stores.employees.getByIDFn = func(_ context.Context, empID int64) (*model.Employee, error) {
				return &model.Employee{ID: empID, DepartmentName: "Engineering"}, nil
			}

			emp, err := svc.Create(ctx, createParams())
			Expect(err).ToNot(HaveOccurred())
			Expect(inserted.ID).ToNot(BeZero())
			Expect(inserted.Status).To(Equal(model.StatusActive))
			Expect(emp.DepartmentName).To(Equal("Engineering"))
			Expect(stores.txCalls).To(Equal(1))
		})

		It("fails when the department does not exist", func() {
			stores.departments.getByIDFn = func(_ context.Context, _ int64) (*model.Department, error) {
				return nil, store.ErrNotFound
			}
			called := false
			stores.employees.createFn = func(_ context.Context, _ *model.Employee) error {
				called = true
				return nil
			}

			_, err := svc.Create(ctx, createParams())
			Expect(err).To(MatchError(service.ErrDepartmentNotFound))
			Expect(called).To(BeFalse())
		})

		It("fails when the email is already claimed", func() {
			stores.employees.getByEmailFn = func(_ context.Context, _ string) (*model.Employee, error) {
				return &model.Employee{ID: 1}, nil
			}

			_, err := svc.Create(ctx, createParams())
			Expect(err).To(MatchError(service.ErrEmailTaken))
		})

		It("maps a unique-index violation on insert to ErrEmailTaken", func() {
			stores.employees.createFn = func(_ context.Context, _ *model.Employee) error {
				return store.ErrDuplicate
			}

			_, err := svc.Create(ctx, createParams())
			Expect(err).To(MatchError(service.ErrEmailTaken))
		})
	})

	Describe("List", func() {
		It("passes the filters and clamped pagination to the store", func() {
			status := model.StatusInactive
			deptID := int64(42)
			search := "ada"

			var captured store.ListEmployeesParams
			stores.employees.listFn = func(_ context.Context, params store.ListEmployeesParams) ([]model.Employee, int64, error) {
				captured = params
				return nil, 0, nil
			}

			_, err := svc.List(ctx, service.ListEmployeesParams{
				Status:       &status,
				DepartmentID: &deptID,
				Search:       &search,
				Page:         2,
				Limit:        5,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(*captured.Status).To(Equal(model.StatusInactive))
			Expect(*captured.DepartmentID).To(Equal(int64(42)))
			Expect(*captured.Search).To(Equal("ada"))
			Expect(captured.Limit).To(Equal(5))
			Expect(captured.Offset).To(Equal(5))
		})
	})

	Describe("Update", func() {
		It("rejects an empty patch", func() {
			_, err := svc.Update(ctx, 5, store.UpdateEmployeeParams{})
			Expect(err).To(MatchError(service.ErrNoFieldsToUpdate))
			Expect(stores.txCalls).To(BeZero())
		})

		It("verifies a department reassignment inside the transaction", func() {
			stores.departments.getByIDFn = func(_ context.Context, _ int64) (*model.Department, error) {
				return nil, store.ErrNotFound
			}
			called := false
			stores.employees.updateFn = func(_ context.Context, _ int64, _ store.UpdateEmployeeParams) (*model.Employee, error) {
				called = true
				return nil, nil
			}

			deptID := int64(99)
			_, err := svc.Update(ctx, 5, store.UpdateEmployeeParams{DepartmentID: &deptID})
			Expect(err).To(MatchError(service.ErrDepartmentNotFound))
			Expect(called).To(BeFalse())
		})

		It("skips the department check when the patch leaves it alone", func() {
			deptChecked := false
			stores.departments.getByIDFn = func(_ context.Context, _ int64) (*model.Department, error) {
				deptChecked = true
				return nil, store.ErrNotFound
			}

			name := "Ada L."
			_, err := svc.Update(ctx, 5, store.UpdateEmployeeParams{Name: &name})
			Expect(err).ToNot(HaveOccurred())
			Expect(deptChecked).To(BeFalse())
		})

		It("maps a missing employee to ErrEmployeeNotFound", func() {
			stores.employees.updateFn = func(_ context.Context, _ int64, _ store.UpdateEmployeeParams) (*model.Employee, error) {
				return nil, store.ErrNotFound
			}

			name := "Ada L."
			_, err := svc.Update(ctx, 99, store.UpdateEmployeeParams{Name: &name})
			Expect(err).To(MatchError(service.ErrEmployeeNotFound))
		})
	})

	Describe("Delete", func() {
		It("maps a missing employee to ErrEmployeeNotFound", func() {
			stores.employees.deleteFn = func(_ context.Context, _ int64) error {
				return store.ErrNotFound
			}

			Expect(svc.Delete(ctx, 99)).To(MatchError(service.ErrEmployeeNotFound))
		})

		It("deletes an existing employee", func() {
			deleted := false
			stores.employees.deleteFn = func(_ context.Context, empID int64) error {
				deleted = true
				Expect(empID).To(Equal(int64(5)))
				return nil
			}

			Expect(svc.Delete(ctx, 5)).To(Succeed())
			Expect(deleted).To(BeTrue())
		})
	})
})

var _ = Describe("StatsService", func() {
	It("computes the stats inside a read-only transaction", func() {
		stores := newMockStores()
		stores.stats.statsFn = func(_ context.Context) (*model.EmployeeStats, error) {
			return &model.EmployeeStats{
				SalaryRangeCount: []model.SalaryRangeCount{
					{Range: "0-50000", Count: 2},
					{Range: "50001-100000", Count: 0},
					{Range: "100000+", Count: 1},
				},
			}, nil
		}

		svc := service.NewStatsService(stores)
		stats, err := svc.EmployeeStats(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.SalaryRangeCount).To(HaveLen(3))
		Expect(stores.readTxCalls).To(Equal(1))
		Expect(stores.txCalls).To(BeZero())
	})
})
