package plan

import "sort"

// ItemKind distinguishes the two placeable variants. The values are
// part of the persisted wire format.
type ItemKind string

const (
	KindMethod ItemKind = "method"
	KindBreak  ItemKind = "break"
)

// Valid reports whether k is one of the known kinds.
func (k ItemKind) Valid() bool {
	return k == KindMethod || k == KindBreak
}

// BreakTitle is the display label for seeded and untitled break items.
const BreakTitle = "Pause"

// Details is the descriptive snapshot owned by an item. After
// normalization every field is present; absent fields are empty strings.
type Details struct {
	Description  string `json:"description"`
	Flow         string `json:"flow"`
	Risks        string `json:"risks"`
	Materials    string `json:"materials"`
	Objectives   string `json:"objectives"`
	Requirements string `json:"requirements"`
	Resources    string `json:"resources"`
	Reflection   string `json:"reflection"`
	Contact      string `json:"contact"`
}

// Merge fills empty fields of d from other, leaving set fields alone.
func (d Details) Merge(other Details) Details {
	fill := func(own, fallback string) string {
		if own != "" {
			return own
		}
		return fallback
	}
	return Details{
		Description:  fill(d.Description, other.Description),
		Flow:         fill(d.Flow, other.Flow),
		Risks:        fill(d.Risks, other.Risks),
		Materials:    fill(d.Materials, other.Materials),
		Objectives:   fill(d.Objectives, other.Objectives),
		Requirements: fill(d.Requirements, other.Requirements),
		Resources:    fill(d.Resources, other.Resources),
		Reflection:   fill(d.Reflection, other.Reflection),
		Contact:      fill(d.Contact, other.Contact),
	}
}

// Item is a placed unit on the grid. Start and end are absolute minutes
// from midnight, both aligned to the configuration's base slot. UID is
// assigned at creation and never changes or gets reused.
type Item struct {
	UID            string   `json:"uid"`
	Kind           ItemKind `json:"kind"`
	Title          string   `json:"title"`
	StartMinutes   int      `json:"startMin"`
	EndMinutes     int      `json:"endMin"`
	SourceRef      string   `json:"entryId,omitempty"`
	Details        Details  `json:"details"`
	RenderFragment string   `json:"cardHtml,omitempty"`
}

// DurationMinutes returns the item's length.
func (it Item) DurationMinutes() int {
	return it.EndMinutes - it.StartMinutes
}

// Plan maps day labels to their items in insertion order. Temporal
// ordering is a read-time concern; see ItemsByTime.
type Plan struct {
	Days map[string][]Item `json:"days"`
}

// NewPlan creates an empty plan with one entry per configured day.
func NewPlan(days []string) *Plan {
	p := &Plan{Days: make(map[string][]Item, len(days))}
	for _, day := range days {
		p.Days[day] = []Item{}
	}
	return p
}

// Clone returns a deep copy.
func (p *Plan) Clone() *Plan {
	clone := &Plan{Days: make(map[string][]Item, len(p.Days))}
	for day, items := range p.Days {
		clone.Days[day] = append([]Item{}, items...)
	}
	return clone
}

// ItemsByTime returns a copy of a day's items sorted by start time.
func (p *Plan) ItemsByTime(day string) []Item {
	items := append([]Item{}, p.Days[day]...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartMinutes < items[j].StartMinutes
	})
	return items
}

// DayMinutes sums the scheduled minutes of a day.
func (p *Plan) DayMinutes(day string) int {
	total := 0
	for _, it := range p.Days[day] {
		total += it.DurationMinutes()
	}
	return total
}

func (p *Plan) findItem(day, uid string) (int, bool) {
	for i, it := range p.Days[day] {
		if it.UID == uid {
			return i, true
		}
	}
	return 0, false
}
