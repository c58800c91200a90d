package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes the payload as-is with status 200.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ValidationErrorResponse writes a 400 with the failure details.
func ValidationErrorResponse(c echo.Context, errs []ValidationError) error {
	msg := "invalid request"
	if len(errs) > 0 && errs[0].Message != "" {
		msg = errs[0].Message
	}
	return c.JSON(http.StatusBadRequest, ErrorBody{Error: msg, Details: errs})
}

// AppErrorResponse maps an error to its status and writes {"error": ...}.
// Errors that carry no AppError in their chain surface as 500.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "something went wrong"})
}
