package apperrors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppError carries an HTTP status code alongside the message so services can
// decide the status and handlers just return the error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HTTPErrorHandler maps AppError to its status code, leaves echo.HTTPError
// untouched and hides everything else behind a 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, echo.Map{"error": httpErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
