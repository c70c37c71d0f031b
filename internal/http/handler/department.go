package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffhub.app/api-server/internal/http/dto"
	"staffhub.app/api-server/internal/model"
	"staffhub.app/api-server/internal/service"
)

type DepartmentHandler struct {
	departmentService service.DepartmentService
}

func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

func (h *DepartmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.DepartmentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	params := service.ListDepartmentsParams{
		Page:  query.Page,
		Limit: query.Limit,
	}
	if query.Status != "" {
		status := model.Status(query.Status)
		params.Status = &status
	}
	if query.Search != "" {
		params.Search = &query.Search
	}

	page, err := h.departmentService.List(ctx, params)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list departments", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to fetch departments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToDepartmentResponses(page.Departments),
		"pagination": dto.Pagination{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// ListAll serves the unpaginated listing the client uses for select
// inputs.
func (h *DepartmentHandler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()

	depts, err := h.departmentService.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list all departments", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to fetch departments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToDepartmentResponses(depts)})
}

func (h *DepartmentHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	deptID, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid department id")
		return
	}

	dept, err := h.departmentService.GetByID(ctx, deptID)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			respondError(c, http.StatusNotFound, "Department not found")
			return
		}
		slog.ErrorContext(ctx, "failed to get department", "error", err, "department_id", deptID)
		respondError(c, http.StatusInternalServerError, "failed to fetch department")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToDepartmentResponse(dept)})
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name and status are required")
		return
	}

	dept, err := h.departmentService.Create(ctx, service.CreateDepartmentParams{
		Name:   req.Name,
		Status: model.Status(req.Status),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create department", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to create department")
		return
	}

	slog.InfoContext(ctx, "department created", "department_id", dept.ID, "name", dept.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Department created successfully",
		"data":    dto.ToDepartmentResponse(dept),
	})
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	deptID, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid department id")
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	dept, err := h.departmentService.Update(ctx, deptID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			respondError(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, service.ErrDepartmentNotFound):
			respondError(c, http.StatusNotFound, "Department not found")
		default:
			slog.ErrorContext(ctx, "failed to update department", "error", err, "department_id", deptID)
			respondError(c, http.StatusInternalServerError, "failed to update department")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Department updated successfully",
		"data":    dto.ToDepartmentResponse(dept),
	})
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	deptID, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid department id")
		return
	}

	if err := h.departmentService.Delete(ctx, deptID); err != nil {
		switch {
		case errors.Is(err, service.ErrDepartmentHasEmployees):
			respondError(c, http.StatusConflict, "Cannot delete department with existing employees")
		case errors.Is(err, service.ErrDepartmentNotFound):
			respondError(c, http.StatusNotFound, "Department not found")
		default:
			slog.ErrorContext(ctx, "failed to delete department", "error", err, "department_id", deptID)
			respondError(c, http.StatusInternalServerError, "failed to delete department")
		}
		return
	}

	slog.InfoContext(ctx, "department deleted", "department_id", deptID)

	c.JSON(http.StatusOK, gin.H{"message": "Department deleted successfully"})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
