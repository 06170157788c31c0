package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `seminargrid plans multi-day seminars on a time grid.

Core concepts (keep this mental model small):
- Grid: the configured day columns, the daily time window, and the base slot granularity. All item times are minutes from midnight and align to the base slot.
- Item: a placed unit, either a method or a break. Items on one day never overlap; ranges are half-open, so one item may end exactly where the next starts.
- Plan: one list of items per configured day. There is a single plan.
- Catalog: reusable method descriptions. Placing an entry copies its details into the item; later catalog edits do not touch placed items.
- Zoom: display density only. It never changes snapping or validation.

Rules of engagement:
1) Orient: call get_grid and get_plan before placing anything.
2) Place: add_item snaps start down and duration up to whole slots. A placement that would overlap or leave the day window is rejected with a coded error; nothing is truncated silently.
3) Rearrange: move_item keeps the duration, resize_item changes it. Breaks cannot be resized.
4) Reshape: configure_grid or apply_preset replace the grid; existing items migrate (dropped days lose their items, survivors re-snap, break rules seed where they fit).
5) Exchange: export_plan produces a self-describing envelope; import_plan replaces the plan wholesale and normalizes against the active grid.

Errors carry a code (COLLISION, OUT_OF_BOUNDS, INVALID_DAY, ...) and a recovery hint. A rejected operation leaves the plan exactly as it was.

Docs:
- seminargrid://docs/concepts (grid model + invariants)
- seminargrid://docs/envelope (export/import payload format)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "seminargrid://docs/concepts",
		Name:        "docs_concepts",
		Title:       "Grid model and invariants",
		Description: "Mental model and invariant rules: slot alignment, half-open collision, break semantics, grid migration.",
		Content: `# Grid model and invariants

## Time model

All times are integer minutes from midnight. The grid defines a daily window
` + "`[day_start, day_end]`" + ` and a base slot size. Every stored item satisfies:

- ` + "`start`" + ` and ` + "`end`" + ` are aligned to the base slot, measured from ` + "`day_start`" + `.
- ` + "`day_start <= start < end <= day_end`" + `.
- ` + "`end - start >= slot_minutes`" + `.

Requests may carry arbitrary minutes; the server snaps start **down** to the
previous slot boundary and rounds duration **up** to whole slots before
validating. Snapping is idempotent: feeding back a returned time changes nothing.

## Collision

Two items overlap when ` + "`a.start < b.end && b.start < a.end`" + `. Ranges are
half-open, so back-to-back items sharing a boundary minute do not collide.
Mutations are atomic: a rejected add, move or resize leaves the plan untouched.

## Breaks

Breaks behave like methods for collision, movement and deletion, but they keep a
fixed duration: resize_item rejects them with BREAK_NOT_RESIZABLE. Break rules in
the grid configuration seed break items on apply; a seeded break that would
collide or fall outside the window is skipped silently, never forced.

## Grid migration

Applying a new configuration conforms the plan to it, in order: days not in the
new set are dropped with their items, surviving items re-snap to the new
granularity and shift backwards when they would overflow the new window, then
break rules seed. Migration is not collision-aware: items forced together by a
shrunken grid stay overlapping rather than being deleted.
`,
	},
	{
		URI:         "seminargrid://docs/envelope",
		Name:        "docs_envelope",
		Title:       "Export/import envelope format",
		Description: "The self-describing payload produced by export_plan and accepted by import_plan, including legacy field names.",
		Content: `# Export/import envelope

` + "```json" + `
{
  "version": 1,
  "raster": {
    "slotMinutes": 15,
    "day": { "start": 510, "end": 1050 }
  },
  "plan": {
    "days": {
      "Montag": [
        {
          "uid": "...",
          "kind": "method",
          "title": "Kennenlernrunde",
          "startMin": 540,
          "endMin": 600,
          "entryId": "...",
          "details": { "description": "...", "flow": "...", "risks": "...",
                       "materials": "...", "objectives": "...", "requirements": "...",
                       "resources": "...", "reflection": "...", "contact": "..." },
          "cardHtml": "..."
        }
      ]
    }
  }
}
` + "```" + `

## Rules

- ` + "`raster`" + ` records the grid shape the plan was exported under. Import does
  **not** restore it; items are normalized against the currently active grid.
- ` + "`plan.days`" + ` is required. A payload without it is rejected with
  FORMAT_ERROR and the stored plan stays unchanged.
- Items may carry legacy ` + "`start`" + `/` + "`end`" + ` keys instead of
  ` + "`startMin`" + `/` + "`endMin`" + `; both are accepted. Missing uids are
  regenerated and missing kinds default to method.
- Import replaces the plan wholesale; there is no merge.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
