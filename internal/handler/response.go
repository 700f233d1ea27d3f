package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/hrms_lite/internal/domain"
	"github.com/locvowork/hrms_lite/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

func responseError(c echo.Context, status int, detail string, err error) error {
	ctx := c.Request().Context()
	if status >= http.StatusInternalServerError {
		logger.ErrorLog(ctx, "request failed: %v", err)
	} else if err != nil {
		logger.DebugLog(ctx, "%s: %v", detail, err)
	}
	return c.JSON(status, ErrorResponse{Detail: detail})
}

func responseValidation(c echo.Context, vErr *domain.ValidationError) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Detail: "validation failed",
		Errors: vErr.FieldErrors,
	})
}

// serviceError maps the service error taxonomy onto HTTP results.
// notFound and conflict are the details used for the matching sentinels.
func serviceError(c echo.Context, err error, notFound, conflict string) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return responseValidation(c, vErr)
	case errors.Is(err, domain.ErrNotFound):
		return responseError(c, http.StatusNotFound, notFound, err)
	case errors.Is(err, domain.ErrConflict):
		return responseError(c, http.StatusConflict, conflict, err)
	default:
		return responseError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// bindBody decodes the request body only, so path parameters never leak
// into the payload.
func bindBody(c echo.Context, dst interface{}) error {
	return (&echo.DefaultBinder{}).BindBody(c, dst)
}
