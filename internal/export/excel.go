// Package export turns a month snapshot into downloadable artifacts. The
// adapters are pure: they hold no state and never touch the store.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/planisoins/planning-api/internal/core/domain"
)

const sheetName = "Planning"

// Excel renders the snapshot as a spreadsheet: row 1 is the title, row 2 the
// header ("Infirmier" plus day numbers 1..N), then one row per roster member
// with each day cell carrying the status label. Cells default to the
// undefined label when no entry exists. Returns the xlsx file bytes.
func Excel(snap *domain.MonthSnapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	// Title row.
	if err := f.SetCellValue(sheetName, "A1", "Planning"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "B1", domain.MonthLabel(snap.Year, snap.Month)); err != nil {
		return nil, err
	}

	days := snap.Days()

	// Header row.
	if err := f.SetCellValue(sheetName, "A2", "Infirmier"); err != nil {
		return nil, err
	}
	for day := 1; day <= days; day++ {
		cell, err := excelize.CoordinatesToCellName(day+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, day); err != nil {
			return nil, err
		}
	}

	styles, err := statusStyles(f)
	if err != nil {
		return nil, err
	}

	// One row per nurse.
	for i, nurse := range snap.Roster {
		row := i + 3
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, nurse.Username); err != nil {
			return nil, err
		}

		for day := 1; day <= days; day++ {
			status := snap.StatusFor(nurse.ID, domain.DayDate(snap.Year, snap.Month, day))
			cell, err := excelize.CoordinatesToCellName(day+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, status.Label()); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, styles[status]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// statusStyles builds one fill style per status so day cells carry the same
// color coding as the on-screen grid.
func statusStyles(f *excelize.File) (map[domain.DayStatus]int, error) {
	styles := make(map[domain.DayStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{status.Color()}},
			Font: &excelize.Font{Color: "FFFFFF"},
		})
		if err != nil {
			return nil, fmt.Errorf("style for %s: %w", status, err)
		}
		styles[status] = id
	}
	return styles, nil
}

// ExcelFilename is the download name offered for a month's spreadsheet.
func ExcelFilename(year int, month int) string {
	return "planning-" + strconv.Itoa(year) + "-" + fmt.Sprintf("%02d", month) + ".xlsx"
}
