package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/planisoins/planning-api/internal/core/domain"
)

// PDF renders the snapshot as a landscape A4 document: a title line, a
// legend mapping each status glyph to its label, and the full roster × days
// grid. Day cells carry the single-glyph icon rather than the label so a
// 31-column month fits on one page.
func PDF(snap *domain.MonthSnapshot) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Planning - "+domain.MonthLabel(snap.Year, snap.Month)), "", 1, "L", false, 0, "")

	// Legend.
	pdf.SetFont("Helvetica", "", 8)
	for _, status := range domain.AllStatuses {
		pdf.CellFormat(30, 5, tr(status.Icon()+" = "+status.Label()), "", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	days := snap.Days()
	nameW := 40.0
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	dayW := (pageW - left - right - nameW) / float64(days)

	// Header row.
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(nameW, 6, "Infirmier", "1", 0, "L", false, 0, "")
	for day := 1; day <= days; day++ {
		pdf.CellFormat(dayW, 6, strconv.Itoa(day), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	// One row per nurse, one glyph per day.
	pdf.SetFont("Helvetica", "", 7)
	for _, nurse := range snap.Roster {
		pdf.CellFormat(nameW, 6, tr(nurse.Username), "1", 0, "L", false, 0, "")
		for day := 1; day <= days; day++ {
			status := snap.StatusFor(nurse.ID, domain.DayDate(snap.Year, snap.Month, day))
			r, g, b := hexToRGB(status.Color())
			pdf.SetFillColor(r, g, b)
			pdf.SetTextColor(255, 255, 255)
			pdf.CellFormat(dayW, 6, status.Icon(), "1", 0, "C", true, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// PDFFilename is the download name offered for a month's document.
func PDFFilename(year int, month int) string {
	return "planning-" + strconv.Itoa(year) + "-" + fmt.Sprintf("%02d", month) + ".pdf"
}

func hexToRGB(hex string) (int, int, int) {
	var r, g, b int
	_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
