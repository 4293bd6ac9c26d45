package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"givehub/internal/model"
	"givehub/internal/service"
)

// RefDataHandler handles the admin reference-code tables and the IRS
// Business Master File.
type RefDataHandler struct {
	refService service.RefDataService
}

// NewRefDataHandler creates a new reference-data handler.
func NewRefDataHandler(refService service.RefDataService) *RefDataHandler {
	return &RefDataHandler{refService: refService}
}

// CodeRequest represents a reference-code create payload.
type CodeRequest struct {
	Code        string `json:"code" validate:"required,max=16"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

// CodeUpdateRequest represents a reference-code update payload.
type CodeUpdateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

// BmfRequest represents a Business Master File record payload.
type BmfRequest struct {
	EIN                string `json:"ein" validate:"required,max=16"`
	Name               string `json:"name" validate:"required,max=255"`
	City               string `json:"city" validate:"omitempty,max=100"`
	State              string `json:"state" validate:"omitempty,len=2"`
	NteeCode           string `json:"ntee_code" validate:"omitempty,max=10"`
	ClassificationCode string `json:"classification_code" validate:"omitempty,max=10"`
	StatusCode         string `json:"status_code" validate:"omitempty,max=10"`
	DeductibilityCode  string `json:"deductibility_code" validate:"omitempty,max=10"`
}

// ListResponse is a paginated list envelope.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
}

// ListCodes godoc
// @Summary List reference codes of a kind
// @Tags admin
// @Produce json
// @Param kind path string true "Code kind"
// @Param search query string false "Search by code or name"
// @Param page query int false "Page"
// @Success 200 {object} ListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/admin/codes/{kind} [get]
func (h *RefDataHandler) ListCodes(c echo.Context) error {
	page, perPage := pageParams(c)
	codes, total, err := h.refService.ListCodes(c.Request().Context(),
		c.Param("kind"), c.QueryParam("search"), page, perPage)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ListResponse{Data: codes, Total: total, Page: page})
}

// CreateCode godoc
// @Summary Create a reference code
// @Tags admin
// @Accept json
// @Produce json
// @Param kind path string true "Code kind"
// @Param request body CodeRequest true "Code data"
// @Success 201 {object} model.RefCode
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/admin/codes/{kind} [post]
func (h *RefDataHandler) CreateCode(c echo.Context) error {
	var req CodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	code, err := h.refService.CreateCode(c.Request().Context(),
		c.Param("kind"), req.Code, req.Name, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, code)
}

// UpdateCode godoc
// @Summary Update a reference code
// @Tags admin
// @Accept json
// @Produce json
// @Param kind path string true "Code kind"
// @Param id path string true "Code ID"
// @Param request body CodeUpdateRequest true "Code data"
// @Success 200 {object} model.RefCode
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/codes/{kind}/{id} [put]
func (h *RefDataHandler) UpdateCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid code id")
	}

	var req CodeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	code, err := h.refService.UpdateCode(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, code)
}

// DeleteCode godoc
// @Summary Delete a reference code
// @Tags admin
// @Produce json
// @Param kind path string true "Code kind"
// @Param id path string true "Code ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/codes/{kind}/{id} [delete]
func (h *RefDataHandler) DeleteCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid code id")
	}
	if err := h.refService.DeleteCode(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "code deleted",
	})
}

// ListBmf godoc
// @Summary List Business Master File records
// @Tags admin
// @Produce json
// @Param search query string false "Search by EIN or name"
// @Param state query string false "Filter by state"
// @Param page query int false "Page"
// @Success 200 {object} ListResponse
// @Router /api/admin/bmf [get]
func (h *RefDataHandler) ListBmf(c echo.Context) error {
	page, perPage := pageParams(c)
	records, total, err := h.refService.ListBmf(c.Request().Context(),
		c.QueryParam("search"), c.QueryParam("state"), page, perPage)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ListResponse{Data: records, Total: total, Page: page})
}

// CreateBmf godoc
// @Summary Create a Business Master File record
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BmfRequest true "Record data"
// @Success 201 {object} model.BmfRecord
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/admin/bmf [post]
func (h *RefDataHandler) CreateBmf(c echo.Context) error {
	var req BmfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record := bmfFromRequest(&req)
	if err := h.refService.CreateBmf(c.Request().Context(), record); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// UpdateBmf godoc
// @Summary Update a Business Master File record
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body BmfRequest true "Record data"
// @Success 200 {object} model.BmfRecord
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/bmf/{id} [put]
func (h *RefDataHandler) UpdateBmf(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	var req BmfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record := bmfFromRequest(&req)
	record.ID = id
	if err := h.refService.UpdateBmf(c.Request().Context(), record); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// DeleteBmf godoc
// @Summary Delete a Business Master File record
// @Tags admin
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/bmf/{id} [delete]
func (h *RefDataHandler) DeleteBmf(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}
	if err := h.refService.DeleteBmf(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "record deleted",
	})
}

func bmfFromRequest(req *BmfRequest) *model.BmfRecord {
	return &model.BmfRecord{
		EIN:                req.EIN,
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		NteeCode:           req.NteeCode,
		ClassificationCode: req.ClassificationCode,
		StatusCode:         req.StatusCode,
		DeductibilityCode:  req.DeductibilityCode,
	}
}

func pageParams(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	perPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if page < 1 {
		page = 1
	}
	return page, perPage
}
