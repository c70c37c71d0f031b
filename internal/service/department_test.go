package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/service"
	"staffhub.app/api-server/internal/store"
)

var _ = Describe("DepartmentService", func() {
	var (
		stores *mockStores
		svc    service.DepartmentService
		ctx    context.Context
	)

	BeforeEach(func() {
		stores = newMockStores()
		svc = service.NewDepartmentService(stores, stores)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("assigns an id and defaults the status to active", func() {
			var created *model.Department
			stores.departments.createFn = func(_ context.Context, dept *model.Department) error {
				created = dept
				return nil
			}

			dept, err := svc.Create(ctx, service.CreateDepartmentParams{Name: "Engineering"})
			Expect(err).ToNot(HaveOccurred())
			Expect(dept.ID).ToNot(BeZero())
			Expect(dept.Status).To(Equal(model.StatusActive))
			Expect(created).To(Equal(dept))
		})

		It("keeps an explicit inactive status", func() {
			dept, err := svc.Create(ctx, service.CreateDepartmentParams{
				Name:   "Archive",
				Status: model.StatusInactive,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(dept.Status).To(Equal(model.StatusInactive))
		})
	})

	Describe("GetByID", func() {
		It("maps a missing row to ErrDepartmentNotFound", func() {
			stores.departments.getByIDFn = func(_ context.Context, _ int64) (*model.Department, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.GetByID(ctx, 99)
			Expect(err).To(MatchError(service.ErrDepartmentNotFound))
		})
	})

	Describe("List", func() {
		It("clamps out-of-range pagination before hitting the store", func() {
			var captured store.ListDepartmentsParams
			stores.departments.listFn = func(_ context.Context, params store.ListDepartmentsParams) ([]model.Department, int64, error) {
				captured = params
				return nil, 0, nil
			}

			page, err := svc.List(ctx, service.ListDepartmentsParams{Page: 0, Limit: 0})
			Expect(err).ToNot(HaveOccurred())
			Expect(captured.Limit).To(Equal(10))
			Expect(captured.Offset).To(Equal(0))
			Expect(page.Page).To(Equal(1))
			Expect(page.Limit).To(Equal(10))
		})

		It("caps an oversized limit at 100", func() {
			var captured store.ListDepartmentsParams
			stores.departments.listFn = func(_ context.Context, params store.ListDepartmentsParams) ([]model.Department, int64, error) {
				captured = params
				return nil, 0, nil
			}

			_, err := svc.List(ctx, service.ListDepartmentsParams{Page: 1, Limit: 1000})
			Expect(err).ToNot(HaveOccurred())
			Expect(captured.Limit).To(Equal(100))
		})

		It("computes offset and total pages from the store count", func() {
			var captured store.ListDepartmentsParams
			stores.departments.listFn = func(_ context.Context, params store.ListDepartmentsParams) ([]model.Department, int64, error) {
				captured = params
				return []model.Department{{ID: 1}}, 25, nil
			}

			page, err := svc.List(ctx, service.ListDepartmentsParams{Page: 3, Limit: 10})
			Expect(err).ToNot(HaveOccurred())
			Expect(captured.Offset).To(Equal(20))
			Expect(page.Total).To(Equal(int64(25)))
			Expect(page.TotalPages).To(Equal(3))
		})

		It("reports zero pages for an empty result", func() {
			page, err := svc.List(ctx, service.ListDepartmentsParams{Page: 1, Limit: 10})
			Expect(err).ToNot(HaveOccurred())
			Expect(page.TotalPages).To(Equal(0))
		})
	})

	Describe("Update", func() {
		It("rejects an empty patch without touching the store", func() {
			called := false
			stores.departments.updateFn = func(_ context.Context, _ int64, _ store.UpdateDepartmentParams) (*model.Department, error) {
				called = true
				return nil, nil
			}

			_, err := svc.Update(ctx, 1, store.UpdateDepartmentParams{})
			Expect(err).To(MatchError(service.ErrNoFieldsToUpdate))
			Expect(called).To(BeFalse())
		})

		It("re-reads the department for the derived employee count", func() {
			name := "Platform"
			stores.departments.getByIDFn = func(_ context.Context, deptID int64) (*model.Department, error) {
				return &model.Department{ID: deptID, Name: name, EmployeeCount: 7}, nil
			}

			dept, err := svc.Update(ctx, 1, store.UpdateDepartmentParams{Name: &name})
			Expect(err).ToNot(HaveOccurred())
			Expect(dept.EmployeeCount).To(Equal(int64(7)))
		})
	})

	Describe("Delete", func() {
		It("refuses to delete a department with employees", func() {
			stores.departments.countEmployeesFn = func(_ context.Context, _ int64) (int64, error) {
				return 3, nil
			}
			deleted := false
			stores.departments.deleteFn = func(_ context.Context, _ int64) error {
				deleted = true
				return nil
			}

			err := svc.Delete(ctx, 1)
			Expect(err).To(MatchError(service.ErrDepartmentHasEmployees))
			Expect(deleted).To(BeFalse())
			Expect(stores.txCalls).To(Equal(1))
		})

		It("deletes an empty department inside a transaction", func() {
			deleted := false
			stores.departments.deleteFn = func(_ context.Context, deptID int64) error {
				deleted = true
				Expect(deptID).To(Equal(int64(1)))
				return nil
			}

			Expect(svc.Delete(ctx, 1)).To(Succeed())
			Expect(deleted).To(BeTrue())
			Expect(stores.txCalls).To(Equal(1))
		})

		It("maps a missing row to ErrDepartmentNotFound", func() {
			stores.departments.deleteFn = func(_ context.Context, _ int64) error {
				return store.ErrNotFound
			}

			err := svc.Delete(ctx, 99)
			Expect(err).To(MatchError(service.ErrDepartmentNotFound))
		})

		It("propagates store failures", func() {
			boom := errors.New("connection reset")
			stores.departments.countEmployeesFn = func(_ context.Context, _ int64) (int64, error) {
				return 0, boom
			}

			err := svc.Delete(ctx, 1)
			Expect(err).To(MatchError(boom))
		})
	})
})
