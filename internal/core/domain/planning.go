package domain

import "time"

// DateLayout is the wire and storage format for planning dates.
const DateLayout = "2006-01-02"

// PlanningEntry is one persisted (user, date, status, note) record.
// At most one entry exists per (UserID, Date); the backing store enforces
// this with a uniqueness constraint and the service mirrors it with
// find-then-update-or-insert logic.
type PlanningEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Status    DayStatus `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HasNote reports whether the entry carries a note. Blank notes are never
// stored, so a non-empty string is the only "has note" state.
func (e *PlanningEntry) HasNote() bool {
	return e.Note != ""
}

// MonthSnapshot holds the roster and every planning entry whose date falls
// within a single calendar month. It is the in-memory state the grid and the
// export adapters consume.
type MonthSnapshot struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Roster  []User          `json:"roster"`
	Entries []PlanningEntry `json:"entries"`
}

// Days returns the number of day columns in the snapshot's month.
func (s *MonthSnapshot) Days() int {
	return DaysInMonth(s.Year, s.Month)
}

// Lookup returns the entry for the exact (userID, date) pair. A linear scan
// is fine at this scale: at most 31 days times the roster size.
func (s *MonthSnapshot) Lookup(userID, date string) (*PlanningEntry, bool) {
	for i := range s.Entries {
		if s.Entries[i].UserID == userID && s.Entries[i].Date == date {
			return &s.Entries[i], true
		}
	}
	return nil, false
}

// StatusFor returns the status assigned to (userID, date), or
// StatusUndefined when no entry exists for that cell.
func (s *MonthSnapshot) StatusFor(userID, date string) DayStatus {
	if e, ok := s.Lookup(userID, date); ok {
		return e.Status
	}
	return StatusUndefined
}
