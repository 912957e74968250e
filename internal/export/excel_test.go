package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/planisoins/planning-api/internal/core/domain"
)

func februarySnapshot() *domain.MonthSnapshot {
	return &domain.MonthSnapshot{
		Year:  2024,
		Month: time.February,
		Roster: []domain.User{
			{ID: "u1", Username: "alice", Role: domain.RoleNurse},
			{ID: "u2", Username: "bob", Role: domain.RoleNurse},
		},
		Entries: []domain.PlanningEntry{
			{ID: "e1", UserID: "u1", Date: "2024-02-01", Status: domain.StatusWork},
			{ID: "e2", UserID: "u1", Date: "2024-02-29", Status: domain.StatusVacation},
			{ID: "e3", UserID: "u2", Date: "2024-02-01", Status: domain.StatusRest, Note: "retour tardif"},
		},
	}
}

func TestExcel_Grid(t *testing.T) {
	data, err := Excel(februarySnapshot())
	if err != nil {
		t.Fatalf("Excel returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not reopen: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Planning", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		return v
	}

	if got := get("B1"); got != "février 2024" {
		t.Errorf("title month = %q, want %q", got, "février 2024")
	}
	if got := get("A2"); got != "Infirmier" {
		t.Errorf("header = %q, want Infirmier", got)
	}
	// Leap February has 29 day columns: B2..AD2.
	if got := get("AD2"); got != "29" {
		t.Errorf("last day header = %q, want 29", got)
	}
	if got := get("AE2"); got != "" {
		t.Errorf("expected no column past day 29, got %q", got)
	}

	if got := get("A3"); got != "alice" {
		t.Errorf("first nurse = %q, want alice", got)
	}
	if got := get("B3"); got != "Travail" {
		t.Errorf("alice day 1 = %q, want Travail", got)
	}
	if got := get("AD3"); got != "Vacances" {
		t.Errorf("alice day 29 = %q, want Vacances", got)
	}
	if got := get("B4"); got != "Repos" {
		t.Errorf("bob day 1 = %q, want Repos", got)
	}
	// Empty cells render the undefined label, never blank.
	if got := get("C4"); got != "Non défini" {
		t.Errorf("bob day 2 = %q, want Non défini", got)
	}
}

func TestExcel_EmptyRoster(t *testing.T) {
	snap := &domain.MonthSnapshot{Year: 2024, Month: time.January}
	data, err := Excel(snap)
	if err != nil {
		t.Fatalf("Excel returned error: %v", err)
	}
	if _, err := excelize.OpenReader(bytes.NewReader(data)); err != nil {
		t.Fatalf("empty workbook does not reopen: %v", err)
	}
}

func TestExcelFilename(t *testing.T) {
	if got := ExcelFilename(2024, 2); got != "planning-2024-02.xlsx" {
		t.Errorf("ExcelFilename = %q, want planning-2024-02.xlsx", got)
	}
}
