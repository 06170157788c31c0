package plan

import "context"

// EnvelopeVersion is the current export payload version.
const EnvelopeVersion = 1

// Raster describes the grid shape an envelope was produced under, so an
// importer can tell whether migration will be needed.
type Raster struct {
	SlotMinutes int       `json:"slotMinutes"`
	Day         RasterDay `json:"day"`
}

// RasterDay holds the day window bounds of a raster.
type RasterDay struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Envelope is the self-describing export/import payload.
type Envelope struct {
	Version int       `json:"version"`
	Raster  Raster    `json:"raster"`
	Plan    *WirePlan `json:"plan"`
}

// WirePlan is the persisted/exported plan shape.
type WirePlan struct {
	Days map[string][]WireItem `json:"days"`
}

// WireItem is the stored form of an item. Every field is optional on the
// way in: older payloads carry start/end instead of startMin/endMin and
// may omit details entirely. Normalization repairs both.
type WireItem struct {
	UID            string   `json:"uid,omitempty"`
	Kind           ItemKind `json:"kind,omitempty"`
	Title          string   `json:"title,omitempty"`
	StartMinutes   *int     `json:"startMin,omitempty"`
	EndMinutes     *int     `json:"endMin,omitempty"`
	LegacyStart    *int     `json:"start,omitempty"`
	LegacyEnd      *int     `json:"end,omitempty"`
	SourceRef      string   `json:"entryId,omitempty"`
	Details        *Details `json:"details,omitempty"`
	RenderFragment string   `json:"cardHtml,omitempty"`
}

// ToItem adapts a wire record, resolving the legacy field names.
func (w WireItem) ToItem() Item {
	it := Item{
		UID:            w.UID,
		Kind:           w.Kind,
		Title:          w.Title,
		SourceRef:      w.SourceRef,
		RenderFragment: w.RenderFragment,
	}
	switch {
	case w.StartMinutes != nil && w.EndMinutes != nil:
		it.StartMinutes = *w.StartMinutes
		it.EndMinutes = *w.EndMinutes
	case w.LegacyStart != nil && w.LegacyEnd != nil:
		it.StartMinutes = *w.LegacyStart
		it.EndMinutes = *w.LegacyEnd
	}
	if w.Details != nil {
		it.Details = *w.Details
	}
	return it
}

func wireFromItem(it Item) WireItem {
	start, end := it.StartMinutes, it.EndMinutes
	details := it.Details
	return WireItem{
		UID:            it.UID,
		Kind:           it.Kind,
		Title:          it.Title,
		StartMinutes:   &start,
		EndMinutes:     &end,
		SourceRef:      it.SourceRef,
		Details:        &details,
		RenderFragment: it.RenderFragment,
	}
}

// Wire converts a plan to its stored shape.
func (p *Plan) Wire() *WirePlan {
	w := &WirePlan{Days: make(map[string][]WireItem, len(p.Days))}
	for day, items := range p.Days {
		records := make([]WireItem, 0, len(items))
		for _, it := range items {
			records = append(records, wireFromItem(it))
		}
		w.Days[day] = records
	}
	return w
}

// FromWire converts stored records back to a plan without repairing
// them; callers normalize afterwards.
func FromWire(w *WirePlan) *Plan {
	p := &Plan{Days: make(map[string][]Item, len(w.Days))}
	for day, records := range w.Days {
		items := make([]Item, 0, len(records))
		for _, rec := range records {
			items = append(items, rec.ToItem())
		}
		p.Days[day] = items
	}
	return p
}

// Export builds the self-describing payload for the current plan and
// configuration.
func (s *Service) Export() Envelope {
	cfg := s.config.Current()
	return Envelope{
		Version: EnvelopeVersion,
		Raster: Raster{
			SlotMinutes: cfg.BaseSlotMinutes,
			Day:         RasterDay{Start: cfg.DayStart, End: cfg.DayEnd},
		},
		Plan: s.plan.Wire(),
	}
}

// Import replaces the plan wholesale from an envelope. The payload is
// normalized against the current configuration, not the raster it was
// produced under. A payload without a plan structure is rejected and
// the store stays unchanged.
func (s *Service) Import(ctx context.Context, env Envelope) error {
	if env.Plan == nil || env.Plan.Days == nil {
		return ErrFormat
	}
	s.plan = NormalizePlan(FromWire(env.Plan), s.config.Current())
	s.Persist(ctx)
	return nil
}
