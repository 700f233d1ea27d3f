package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/service"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// CreateHandler handles POST /api/employees.
func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req domain.EmployeeInput
	if err := bindBody(c, &req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	emp, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "Employee not found", "Employee ID or email already exists")
	}

	return c.JSON(http.StatusCreated, emp)
}

// ListHandler handles GET /api/employees.
func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	employees, err := h.svc.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "Employee not found", "")
	}

	return c.JSON(http.StatusOK, employees)
}

// DeleteHandler handles DELETE /api/employees/:employee_id.
func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("employee_id")); err != nil {
		return serviceError(c, err, "Employee not found", "")
	}

	return c.NoContent(http.StatusNoContent)
}
