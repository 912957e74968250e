package domain

// DayStatus represents the planning state of a nurse on a single day.
type DayStatus string

const (
	StatusWork        DayStatus = "work"
	StatusRest        DayStatus = "rest"
	StatusVacation    DayStatus = "vacation"
	StatusTraining    DayStatus = "training"
	StatusUnavailable DayStatus = "unavailable"
	StatusUndefined   DayStatus = "undefined"
)

// AllStatuses lists every assignable status in legend order.
var AllStatuses = []DayStatus{
	StatusWork,
	StatusRest,
	StatusVacation,
	StatusTraining,
	StatusUnavailable,
	StatusUndefined,
}

// statusLabels maps each status to its display label.
var statusLabels = map[DayStatus]string{
	StatusWork:        "Travail",
	StatusRest:        "Repos",
	StatusVacation:    "Vacances",
	StatusTraining:    "Formation",
	StatusUnavailable: "Indisponible",
	StatusUndefined:   "Non défini",
}

// statusIcons maps each status to its single-glyph grid icon.
var statusIcons = map[DayStatus]string{
	StatusWork:        "T",
	StatusRest:        "R",
	StatusVacation:    "V",
	StatusTraining:    "F",
	StatusUnavailable: "I",
	StatusUndefined:   "N",
}

// statusColors maps each status to its display color (RGB hex, no leading #).
var statusColors = map[DayStatus]string{
	StatusWork:        "22C55E",
	StatusRest:        "3B82F6",
	StatusVacation:    "EAB308",
	StatusTraining:    "A855F7",
	StatusUnavailable: "EF4444",
	StatusUndefined:   "6B7280",
}

// Valid reports whether s is one of the six known statuses.
func (s DayStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label, falling back to the undefined label for
// unknown values.
func (s DayStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[StatusUndefined]
}

// Icon returns the single-glyph icon used in grid cells.
func (s DayStatus) Icon() string {
	if i, ok := statusIcons[s]; ok {
		return i
	}
	return statusIcons[StatusUndefined]
}

// Color returns the RGB hex color used for grid cells and export styling.
func (s DayStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusUndefined]
}
