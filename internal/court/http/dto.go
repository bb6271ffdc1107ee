package http

import (
	"github.com/matuteb/cancha-rental-backend/internal/court"
)

// CourtResponse uses the persisted-schema field names on the wire.
type CourtResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Covered bool   `json:"techada"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:      c.ID,
		Name:    c.Name,
		Covered: c.Covered,
	}
}

// NewCourtListResponse maps a result slice, never returning nil so the
// JSON body is always an array.
func NewCourtListResponse(courts []*court.Court) []CourtResponse {
	items := make([]CourtResponse, len(courts))
	for i, c := range courts {
		items[i] = NewCourtResponse(c)
	}
	return items
}
