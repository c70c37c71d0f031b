package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"staffhub.app/api-server/pkg/client"
)

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		handler = func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
		DeferCleanup(server.Close)
	})

	It("encodes list filters as query parameters", func() {
		var got *http.Request
		handler = func(w http.ResponseWriter, r *http.Request) {
			got = r
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [], "pagination": {"total": 0, "page": 1, "limit": 10, "totalPages": 0}}`))
		}

		c := client.New(server.URL)
		page, err := c.ListEmployees(ctx, client.ListOptions{
			Status:     "inactive",
			Search:     "ada",
			Department: 42,
			Page:       2,
			Limit:      5,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Data).To(BeEmpty())

		Expect(got.URL.Path).To(Equal("/api/employees"))
		q := got.URL.Query()
		Expect(q.Get("status")).To(Equal("inactive"))
		Expect(q.Get("search")).To(Equal("ada"))
		Expect(q.Get("department")).To(Equal("42"))
		Expect(q.Get("page")).To(Equal("2"))
		Expect(q.Get("limit")).To(Equal("5"))
	})

	It("omits zero-value filters from the query string", func() {
		var got *http.Request
		handler = func(w http.ResponseWriter, r *http.Request) {
			got = r
			_, _ = w.Write([]byte(`{"data": [], "pagination": {}}`))
		}

		c := client.New(server.URL)
		_, err := c.ListDepartments(ctx, client.ListOptions{})
		Expect(err).ToNot(HaveOccurred())
		Expect(got.URL.RawQuery).To(BeEmpty())
	})

	It("decodes the paginated department envelope", func() {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"data": [{"id": "7", "name": "Engineering", "status": "active", "employee_count": 4}],
				"pagination": {"total": 12, "page": 2, "limit": 5, "totalPages": 3}
			}`))
		}

		c := client.New(server.URL)
		page, err := c.ListDepartments(ctx, client.ListOptions{Page: 2, Limit: 5})
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Data).To(HaveLen(1))
		Expect(page.Data[0].ID).To(Equal(int64(7)))
		Expect(page.Data[0].EmployeeCount).To(Equal(int64(4)))
		Expect(page.Pagination.Total).To(Equal(int64(12)))
		Expect(page.Pagination.TotalPages).To(Equal(3))
	})

	It("sends employee creation with the string-encoded department id", func() {
		var body map[string]interface{}
		handler = func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			Expect(json.Unmarshal(raw, &body)).To(Succeed())
			Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data": {"id": "5", "department_id": "42", "email": "ada@example.com"}}`))
		}

		c := client.New(server.URL)
		emp, err := c.CreateEmployee(ctx, client.CreateEmployeeRequest{
			Name:         "Ada Lovelace",
			Email:        "ada@example.com",
			Phone:        "+4412345678",
			DOB:          "1990-12-10",
			Status:       "active",
			DepartmentID: 42,
			Salary:       60000,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(emp.ID).To(Equal(int64(5)))
		Expect(emp.DepartmentID).To(Equal(int64(42)))

		Expect(body["department_id"]).To(Equal("42"))
		Expect(body["dob"]).To(Equal("1990-12-10"))
	})

	It("surfaces a 404 as an APIError with the server message", func() {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Department not found", "statusCode": 404}`))
		}

		c := client.New(server.URL)
		_, err := c.GetDepartment(ctx, 99)

		var apiErr *client.APIError
		Expect(err).To(BeAssignableToTypeOf(apiErr))
		apiErr = err.(*client.APIError)
		Expect(apiErr.StatusCode).To(Equal(404))
		Expect(apiErr.Message).To(Equal("Department not found"))
		Expect(apiErr.Error()).To(ContainSubstring("Department not found"))
	})

	It("surfaces a delete conflict as an APIError", func() {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message": "Cannot delete department with existing employees", "statusCode": 409}`))
		}

		c := client.New(server.URL)
		err := c.DeleteDepartment(ctx, 1)

		var apiErr *client.APIError
		Expect(err).To(BeAssignableToTypeOf(apiErr))
		Expect(err.(*client.APIError).StatusCode).To(Equal(409))
	})

	It("decodes the statistics payload", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/api/employees/stats"))
			_, _ = w.Write([]byte(`{
				"departmentHighestSalary": [{"department": "Engineering", "salary": 90000}],
				"salaryRangeCount": [
					{"range": "0-50000", "count": 0},
					{"range": "50001-100000", "count": 3},
					{"range": "100000+", "count": 1}
				],
				"youngestByDepartment": [{"department": "Engineering", "name": "Ada Lovelace", "age": 27}]
			}`))
		}

		c := client.New(server.URL)
		stats, err := c.EmployeeStats(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.DepartmentHighestSalary).To(HaveLen(1))
		Expect(stats.SalaryRangeCount).To(HaveLen(3))
		Expect(stats.SalaryRangeCount[2].Range).To(Equal("100000+"))
		Expect(stats.YoungestByDepartment[0].Age).To(Equal(27))
	})
})
