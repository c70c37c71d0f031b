package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub.app/api-server/internal/http/dto"
	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/service"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
	statsService    service.StatsService
}

func NewEmployeeHandler(employeeService service.EmployeeService, statsService service.StatsService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		statsService:    statsService,
	}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.EmployeeListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	params := service.ListEmployeesParams{
		Page:  query.Page,
		Limit: query.Limit,
	}
	if query.Status != "" {
		status := model.Status(query.Status)
		params.Status = &status
	}
	if query.Department != 0 {
		params.DepartmentID = &query.Department
	}
	if query.Search != "" {
		params.Search = &query.Search
	}

	page, err := h.employeeService.List(ctx, params)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list employees", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to fetch employees")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToEmployeeResponses(page.Employees),
		"pagination": dto.Pagination{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	empID, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	emp, err := h.employeeService.GetByID(ctx, empID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, "Employee not found")
			return
		}
		slog.ErrorContext(ctx, "failed to get employee", "error", err, "employee_id", empID)
		respondError(c, http.StatusInternalServerError, "failed to fetch employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToEmployeeResponse(emp)})
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid employee payload")
		return
	}

	emp, err := h.employeeService.Create(ctx, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDepartmentNotFound):
			respondError(c, http.StatusBadRequest, "Department does not exist")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusBadRequest, "Employee with this email already exists")
		default:
			slog.ErrorContext(ctx, "failed to create employee", "error", err)
			respondError(c, http.StatusInternalServerError, "failed to create employee")
		}
		return
	}

	slog.InfoContext(ctx, "employee created", "employee_id", emp.ID, "email", emp.Email)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Employee created successfully",
		"data":    dto.ToEmployeeResponse(emp),
	})
}

// Update applies a partial patch; email is immutable through this
// endpoint.
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	empID, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.employeeService.Update(ctx, empID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			respondError(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, service.ErrEmployeeNotFound):
			respondError(c, http.StatusNotFound, "Employee not found")
		case errors.Is(err, service.ErrDepartmentNotFound):
			respondError(c, http.StatusBadRequest, "Department does not exist")
		default:
			slog.ErrorContext(ctx, "failed to update employee", "error", err, "employee_id", empID)
			respondError(c, http.StatusInternalServerError, "failed to update employee")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Employee updated successfully",
		"data":    dto.ToEmployeeResponse(emp),
	})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	empID, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid employee id")
		return
	}

	if err := h.employeeService.Delete(ctx, empID); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			respondError(c, http.StatusNotFound, "Employee not found")
			return
		}
		slog.ErrorContext(ctx, "failed to delete employee", "error", err, "employee_id", empID)
		respondError(c, http.StatusInternalServerError, "failed to delete employee")
		return
	}

	slog.InfoContext(ctx, "employee deleted", "employee_id", empID)

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func (h *EmployeeHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.statsService.EmployeeStats(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to compute employee stats", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to fetch employee statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeStatsResponse(stats))
}
