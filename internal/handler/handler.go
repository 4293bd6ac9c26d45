// Package handler is the HTTP layer: request DTOs, validation and the
// translation of service results into responses. Access decisions live in the
// guard chain, not here.
package handler

import (
	"github.com/labstack/echo/v4"

	"givehub/internal/errors"
)

// domainError translates a domain error into the standard error response.
func domainError(err error) *echo.HTTPError {
	mapped := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}
