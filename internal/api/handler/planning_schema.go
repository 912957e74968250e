package handler

import "github.com/planisoins/planning-api/internal/core/domain"

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=work rest vacation training unavailable undefined"`
	Note   string `json:"note"`
}

// setNoteRequest carries the note text. A blank note clears the cell's note.
type setNoteRequest struct {
	Note string `json:"note"`
}

// legendItem describes one status for grid rendering and the legend strip.
type legendItem struct {
	Status domain.DayStatus `json:"status"`
	Label  string           `json:"label"`
	Icon   string           `json:"icon"`
	Color  string           `json:"color"`
}

type monthResponse struct {
	Year    int                    `json:"year"`
	Month   int                    `json:"month"`
	Days    int                    `json:"days"`
	Roster  []domain.User          `json:"roster"`
	Entries []domain.PlanningEntry `json:"entries"`
	Legend  []legendItem           `json:"legend"`
}

func legend() []legendItem {
	items := make([]legendItem, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		items = append(items, legendItem{Status: s, Label: s.Label(), Icon: s.Icon(), Color: s.Color()})
	}
	return items
}
