package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planisoins/planning-api/internal/api/metrics"
	"github.com/planisoins/planning-api/internal/core/ports"
	"github.com/planisoins/planning-api/internal/export"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ExportHandler serves the month grid as a downloadable file.
type ExportHandler struct {
	service ports.PlanningService
}

func NewExportHandler(service ports.PlanningService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /v1/planning/:year/:month/export.
//
// @Summary      Export a month planning
// @Tags         planning
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        year    path   int     true   "Year"
// @Param        month   path   int     true   "Month (1-12)"
// @Param        format  query  string  false  "excel or pdf"  default(excel)
// @Success      200  {file}  binary
// @Failure      400  {object}  errorResponse
// @Router       /v1/planning/{year}/{month}/export [get]
func (h *ExportHandler) Export(c echo.Context) error {
	year, month, err := monthParams(c)
	if err != nil {
		return err
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "excel"
	}
	if format != "excel" && format != "pdf" {
		return echo.NewHTTPError(http.StatusBadRequest, "format must be excel or pdf")
	}

	snap, err := h.service.MonthSnapshot(c.Request().Context(), year, month)
	if err != nil {
		return err
	}

	var (
		body     []byte
		mime     string
		filename string
	)
	switch format {
	case "pdf":
		body, err = export.PDF(snap)
		mime = mimePDF
		filename = export.PDFFilename(year, int(month))
	default:
		body, err = export.Excel(snap)
		mime = mimeXLSX
		filename = export.ExcelFilename(year, int(month))
	}
	if err != nil {
		return fmt.Errorf("rendering %s export: %w", format, err)
	}

	metrics.ExportsTotal.WithLabelValues(format).Inc()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, mime, body)
}
