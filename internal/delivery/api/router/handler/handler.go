// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"zenvira/internal/delivery/api/response"
	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.Validation("Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.Validation(err.Error())
	}

	return nil
}

// principalOf returns the principal attached by RequireAuth.
func principalOf(c echo.Context) (*entity.Principal, error) {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return principal, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.Validation("Invalid " + name)
	}

	return id, nil
}

// pageQuery reads page and limit. Malformed values fall back to the defaults.
func pageQuery(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))

	return entity.NormalizePage(page, limit)
}

// decimalQuery parses an optional decimal query parameter.
func decimalQuery(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil //nolint:nilnil // absent filter
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return nil, domainerrors.Validation("Invalid " + name)
	}

	return &value, nil
}
