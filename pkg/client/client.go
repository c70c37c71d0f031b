// Package client is a typed Go client for the record-management API.
// Every operation is a typed request wrapper over one endpoint; API
// failures surface as *APIError carrying the server's message and
// status code.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is the uniform error body every endpoint returns on failure.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Department struct {
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	ID            int64     `json:"id,string"`
	EmployeeCount int64     `json:"employee_count"`
}

type Employee struct {
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DOB            string    `json:"dob"`
	Status         string    `json:"status"`
	DepartmentName string    `json:"department_name"`
	Photo          *string   `json:"photo,omitempty"`
	Salary         float64   `json:"salary"`
	ID             int64     `json:"id,string"`
	DepartmentID   int64     `json:"department_id,string"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type DepartmentPage struct {
	Data       []Department `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

type EmployeePage struct {
	Data       []Employee `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListOptions are the shared filter/pagination query parameters. Zero
// values are omitted from the request.
type ListOptions struct {
	Status     string
	Search     string
	Department int64
	Page       int
	Limit      int
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Department != 0 {
		q.Set("department", strconv.FormatInt(o.Department, 10))
	}
	if o.Page != 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit != 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

type CreateDepartmentRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type UpdateDepartmentRequest struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
}

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DOB          string  `json:"dob"`
	Status       string  `json:"status"`
	Photo        *string `json:"photo,omitempty"`
	DepartmentID int64   `json:"department_id,string"`
	Salary       float64 `json:"salary"`
}

type UpdateEmployeeRequest struct {
	Name         *string  `json:"name,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	DOB          *string  `json:"dob,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Photo        *string  `json:"photo,omitempty"`
	DepartmentID *int64   `json:"department_id,omitempty,string"`
	Salary       *float64 `json:"salary,omitempty"`
}

type DepartmentSalary struct {
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

type SalaryRangeCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

type YoungestEmployee struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
}

type EmployeeStats struct {
	DepartmentHighestSalary []DepartmentSalary `json:"departmentHighestSalary"`
	SalaryRangeCount        []SalaryRangeCount `json:"salaryRangeCount"`
	YoungestByDepartment    []YoungestEmployee `json:"youngestByDepartment"`
}

func (c *Client) ListDepartments(ctx context.Context, opts ListOptions) (*DepartmentPage, error) {
	var page DepartmentPage
	if err := c.do(ctx, http.MethodGet, "/api/departments", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ListAllDepartments(ctx context.Context) ([]Department, error) {
	var resp struct {
		Data []Department `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/departments/all", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	var resp struct {
		Data Department `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/departments/"+strconv.FormatInt(id, 10), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*Department, error) {
	var resp struct {
		Data Department `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/departments", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id int64, req UpdateDepartmentRequest) (*Department, error) {
	var resp struct {
		Data Department `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/departments/"+strconv.FormatInt(id, 10), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/departments/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) ListEmployees(ctx context.Context, opts ListOptions) (*EmployeePage, error) {
	var page EmployeePage
	if err := c.do(ctx, http.MethodGet, "/api/employees", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var resp struct {
		Data Employee `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/employees/"+strconv.FormatInt(id, 10), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	var resp struct {
		Data Employee `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/employees", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (*Employee, error) {
	var resp struct {
		Data Employee `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/employees/"+strconv.FormatInt(id, 10), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/employees/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) EmployeeStats(ctx context.Context) (*EmployeeStats, error) {
	var stats EmployeeStats
	if err := c.do(ctx, http.MethodGet, "/api/employees/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
