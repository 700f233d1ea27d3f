package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/hrms_lite/internal/service"
)

type SystemHandler struct {
	summary service.SummaryService
}

func NewSystemHandler(summary service.SummaryService) *SystemHandler {
	return &SystemHandler{summary: summary}
}

// HealthHandler handles GET /api/health.
func (h *SystemHandler) HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// SummaryHandler handles GET /api/summary.
func (h *SystemHandler) SummaryHandler(c echo.Context) error {
	summary, err := h.summary.Summary(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "", "")
	}
	return c.JSON(http.StatusOK, summary)
}
