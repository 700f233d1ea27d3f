package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/service"
)

type AttendanceHandler struct {
	svc service.AttendanceService
}

func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// MarkHandler handles POST /api/attendance.
func (h *AttendanceHandler) MarkHandler(c echo.Context) error {
	var req domain.AttendanceInput
	if err := bindBody(c, &req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	record, err := h.svc.Mark(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "Employee not found", "Attendance already marked for this date")
	}

	return c.JSON(http.StatusCreated, record)
}

// ListForEmployeeHandler handles GET /api/employees/:employee_id/attendance.
func (h *AttendanceHandler) ListForEmployeeHandler(c echo.Context) error {
	list, err := h.svc.ListForEmployee(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return serviceError(c, err, "Employee not found", "")
	}

	return c.JSON(http.StatusOK, list)
}
