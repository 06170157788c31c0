package catalog

import (
	"time"

	"github.com/rgeller/seminargrid/internal/domain/plan"
)

// Entry is a reusable method description. Placed items reference entries
// by ID only; the details are copied into the item at placement time.
type Entry struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	DurationMinutes int          `json:"durationMinutes"`
	Details         plan.Details `json:"details"`
	RenderFragment  string       `json:"cardHtml,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}
