package mcp

import (
	"context"

	"github.com/rgeller/seminargrid/internal/domain/catalog"
	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type AddItemParams struct {
	Day         string       `json:"day" jsonschema:"day label, must be one of the configured days"`
	StartMin    int          `json:"start_min" jsonschema:"requested start in minutes from midnight, snapped to the grid"`
	DurationMin int          `json:"duration_min,omitempty" jsonschema:"requested duration in minutes, rounded up to whole slots; omit for one base slot"`
	Kind        string       `json:"kind,omitempty" jsonschema:"item kind: method (default) or break"`
	Title       string       `json:"title,omitempty" jsonschema:"display title; breaks default to Pause"`
	EntryID     string       `json:"entry_id,omitempty" jsonschema:"catalog entry id to copy details from"`
	Details     plan.Details `json:"details,omitempty" jsonschema:"descriptive fields stored on the item"`
	CardHTML    string       `json:"card_html,omitempty" jsonschema:"prerendered card fragment"`
}

type MoveItemParams struct {
	UID      string `json:"uid" jsonschema:"uid of the item to move"`
	FromDay  string `json:"from_day" jsonschema:"day the item currently sits on"`
	ToDay    string `json:"to_day" jsonschema:"target day, may equal from_day"`
	StartMin int    `json:"start_min" jsonschema:"requested new start in minutes from midnight"`
}

type ResizeItemParams struct {
	UID      string `json:"uid" jsonschema:"uid of the item to resize"`
	Day      string `json:"day" jsonschema:"day the item sits on"`
	DeltaMin int    `json:"delta_min" jsonschema:"signed duration change in minutes, aligned to the base slot"`
}

type DeleteItemParams struct {
	Day string `json:"day" jsonschema:"day the item sits on"`
	UID string `json:"uid" jsonschema:"uid of the item to delete"`
}

type GetDayParams struct {
	Day string `json:"day" jsonschema:"day label to read"`
}

type BreakRuleParams struct {
	Days        []string `json:"days" jsonschema:"day labels the break applies to, or the single entry all"`
	StartMin    int      `json:"start_min" jsonschema:"break start in minutes from midnight"`
	DurationMin int      `json:"duration_min" jsonschema:"break length in minutes"`
}

type ConfigureGridParams struct {
	Days        []string          `json:"days" jsonschema:"ordered day labels of the new grid"`
	DayStart    int               `json:"day_start" jsonschema:"daily window start in minutes from midnight"`
	DayEnd      int               `json:"day_end" jsonschema:"daily window end in minutes from midnight"`
	SlotMinutes int               `json:"slot_minutes" jsonschema:"base slot granularity in minutes"`
	BreakRules  []BreakRuleParams `json:"break_rules,omitempty" jsonschema:"recurring breaks seeded on apply"`
	Zoom        string            `json:"zoom,omitempty" jsonschema:"display zoom: fine, medium or coarse"`
}

type SetZoomParams struct {
	Zoom string `json:"zoom" jsonschema:"zoom level id: fine, medium or coarse"`
}

type ApplyPresetParams struct {
	Key string `json:"key" jsonschema:"preset key from list_presets"`
}

type ImportPlanParams struct {
	Envelope plan.Envelope `json:"envelope" jsonschema:"plan envelope as produced by export_plan"`
}

type PutCatalogEntryParams struct {
	ID          string       `json:"id,omitempty" jsonschema:"entry id; generated when omitted"`
	Title       string       `json:"title" jsonschema:"entry title"`
	DurationMin int          `json:"duration_min,omitempty" jsonschema:"default duration in minutes"`
	Details     plan.Details `json:"details,omitempty" jsonschema:"descriptive fields copied into placed items"`
	CardHTML    string       `json:"card_html,omitempty" jsonschema:"prerendered card fragment"`
}

type GetCatalogEntryParams struct {
	ID string `json:"id" jsonschema:"catalog entry id"`
}

type SetPlanMetaParams struct {
	Title   string `json:"title,omitempty" jsonschema:"seminar title"`
	Date    string `json:"date,omitempty" jsonschema:"seminar date, free text"`
	Number  string `json:"number,omitempty" jsonschema:"seminar number"`
	Contact string `json:"contact,omitempty" jsonschema:"contact line"`
}

type emptyParams struct{}

type ItemResult struct {
	Day  string    `json:"day"`
	Item plan.Item `json:"item"`
}

type DeleteItemResult struct {
	Deleted bool `json:"deleted"`
}

type ClearPlanResult struct {
	Cleared bool `json:"cleared"`
}

type DaySchedule struct {
	Day          string      `json:"day"`
	Items        []plan.Item `json:"items"`
	TotalMinutes int         `json:"totalMinutes"`
}

type PlanResult struct {
	Days []DaySchedule `json:"days"`
}

type GridResult struct {
	Config grid.Config    `json:"config"`
	Zoom   grid.ZoomLevel `json:"zoom"`
}

type ZoomResult struct {
	Zoom grid.ZoomLevel `json:"zoom"`
}

type PresetsResult struct {
	Presets []grid.Preset `json:"presets"`
}

type ImportResult struct {
	Imported bool `json:"imported"`
}

type EntriesResult struct {
	Entries []catalog.Entry `json:"entries"`
}

type MetaResult struct {
	Meta plan.Meta `json:"meta"`
}

// registerTools registers every tool on the server. Handlers translate
// wire parameters to domain requests and domain errors to API errors.
func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_item",
		Description: "Place a method or break on the grid. Start and duration snap to the base slot; placements that overlap or leave the day window are rejected.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in AddItemParams) (*sdkmcp.CallToolResult, ItemResult, error) {
		item, err := services.Plan.Add(ctx, plan.AddRequest{
			Day:            in.Day,
			RawStart:       in.StartMin,
			RawDuration:    in.DurationMin,
			Kind:           plan.ItemKind(in.Kind),
			Title:          in.Title,
			SourceRef:      in.EntryID,
			Details:        in.Details,
			RenderFragment: in.CardHTML,
		})
		if err != nil {
			return nil, ItemResult{}, mapError(err)
		}
		return nil, ItemResult{Day: in.Day, Item: *item}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_item",
		Description: "Move an item to a new day and start, keeping its duration. The move is rejected when the target range collides or leaves the day window.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in MoveItemParams) (*sdkmcp.CallToolResult, ItemResult, error) {
		item, err := services.Plan.Move(ctx, plan.MoveRequest{
			UID:         in.UID,
			SourceDay:   in.FromDay,
			TargetDay:   in.ToDay,
			RawNewStart: in.StartMin,
		})
		if err != nil {
			return nil, ItemResult{}, mapError(err)
		}
		return nil, ItemResult{Day: in.ToDay, Item: *item}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "resize_item",
		Description: "Grow or shrink an item by a signed minute delta. Breaks keep their fixed duration; items never shrink below one base slot.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ResizeItemParams) (*sdkmcp.CallToolResult, ItemResult, error) {
		item, err := services.Plan.Resize(ctx, plan.ResizeRequest{
			UID:          in.UID,
			Day:          in.Day,
			DeltaMinutes: in.DeltaMin,
		})
		if err != nil {
			return nil, ItemResult{}, mapError(err)
		}
		return nil, ItemResult{Day: in.Day, Item: *item}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_item",
		Description: "Remove an item from the plan. There is no undo.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in DeleteItemParams) (*sdkmcp.CallToolResult, DeleteItemResult, error) {
		if err := services.Plan.Delete(ctx, in.Day, in.UID); err != nil {
			return nil, DeleteItemResult{}, mapError(err)
		}
		return nil, DeleteItemResult{Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_plan",
		Description: "Replace the plan with an empty one for the configured days.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, ClearPlanResult, error) {
		services.Plan.Clear(ctx)
		return nil, ClearPlanResult{Cleared: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_plan",
		Description: "Read the whole plan: every configured day with its items ordered by start time and its scheduled minute total.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, PlanResult, error) {
		cfg := services.Grid.Current()
		result := PlanResult{Days: make([]DaySchedule, 0, len(cfg.Days))}
		for _, day := range cfg.Days {
			schedule, err := daySchedule(services.Plan, day)
			if err != nil {
				return nil, PlanResult{}, mapError(err)
			}
			result.Days = append(result.Days, schedule)
		}
		return nil, result, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_day",
		Description: "Read one day: its items ordered by start time and its scheduled minute total.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetDayParams) (*sdkmcp.CallToolResult, DaySchedule, error) {
		schedule, err := daySchedule(services.Plan, in.Day)
		if err != nil {
			return nil, DaySchedule{}, mapError(err)
		}
		return nil, schedule, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "configure_grid",
		Description: "Replace the grid shape. Existing items migrate to the new grid: days not in the new set are dropped, surviving items re-snap, and break rules seed where they fit.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ConfigureGridParams) (*sdkmcp.CallToolResult, GridResult, error) {
		rules := make([]grid.BreakRule, 0, len(in.BreakRules))
		for _, rule := range in.BreakRules {
			rules = append(rules, grid.BreakRule{
				Days:            rule.Days,
				StartMinutes:    rule.StartMin,
				DurationMinutes: rule.DurationMin,
			})
		}
		cfg := grid.Config{
			Days:            in.Days,
			DayStart:        in.DayStart,
			DayEnd:          in.DayEnd,
			BaseSlotMinutes: in.SlotMinutes,
			BreakRules:      rules,
			Zoom:            grid.ZoomID(in.Zoom),
		}
		if err := services.Grid.Apply(ctx, cfg); err != nil {
			return nil, GridResult{}, mapError(err)
		}
		return nil, gridResult(services.Grid), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_grid",
		Description: "Read the active grid configuration and zoom level.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, GridResult, error) {
		return nil, gridResult(services.Grid), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_zoom",
		Description: "Switch the display zoom. Zoom never affects snapping or validation.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in SetZoomParams) (*sdkmcp.CallToolResult, ZoomResult, error) {
		level, err := services.Grid.SetZoom(ctx, grid.ZoomID(in.Zoom))
		if err != nil {
			return nil, ZoomResult{}, mapError(err)
		}
		return nil, ZoomResult{Zoom: level}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_presets",
		Description: "List the built-in grid configurations.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, PresetsResult, error) {
		return nil, PresetsResult{Presets: grid.Presets}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "apply_preset",
		Description: "Apply a built-in grid configuration by key. Existing items migrate like configure_grid.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ApplyPresetParams) (*sdkmcp.CallToolResult, GridResult, error) {
		if err := services.Grid.ApplyPreset(ctx, in.Key); err != nil {
			return nil, GridResult{}, mapError(err)
		}
		return nil, gridResult(services.Grid), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_plan",
		Description: "Export the plan as a self-describing envelope with the grid raster it was produced under.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, plan.Envelope, error) {
		return nil, services.Plan.Export(), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_plan",
		Description: "Replace the plan wholesale from an envelope. Items are normalized against the active grid, not the raster they were exported under.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ImportPlanParams) (*sdkmcp.CallToolResult, ImportResult, error) {
		if err := services.Plan.Import(ctx, in.Envelope); err != nil {
			return nil, ImportResult{}, mapError(err)
		}
		return nil, ImportResult{Imported: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "put_catalog_entry",
		Description: "Create or replace a reusable method description. Placed items copy the details at placement time.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in PutCatalogEntryParams) (*sdkmcp.CallToolResult, catalog.Entry, error) {
		entry, err := services.Catalog.Put(ctx, catalog.PutRequest{
			ID:              in.ID,
			Title:           in.Title,
			DurationMinutes: in.DurationMin,
			Details:         in.Details,
			RenderFragment:  in.CardHTML,
		})
		if err != nil {
			return nil, catalog.Entry{}, mapError(err)
		}
		return nil, *entry, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_catalog_entry",
		Description: "Read one catalog entry by id.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetCatalogEntryParams) (*sdkmcp.CallToolResult, catalog.Entry, error) {
		entry, err := services.Catalog.Get(ctx, in.ID)
		if err != nil {
			return nil, catalog.Entry{}, mapError(err)
		}
		return nil, *entry, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_catalog_entries",
		Description: "List all catalog entries ordered by title.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, EntriesResult, error) {
		entries, err := services.Catalog.List(ctx)
		if err != nil {
			return nil, EntriesResult{}, mapError(err)
		}
		return nil, EntriesResult{Entries: entries}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_plan_meta",
		Description: "Replace the plan header shown on printouts.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in SetPlanMetaParams) (*sdkmcp.CallToolResult, MetaResult, error) {
		meta := plan.Meta{Title: in.Title, Date: in.Date, Number: in.Number, Contact: in.Contact}
		if err := services.Meta.Set(ctx, meta); err != nil {
			return nil, MetaResult{}, mapError(err)
		}
		return nil, MetaResult{Meta: meta}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_plan_meta",
		Description: "Read the plan header; empty fields when nothing was stored.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyParams) (*sdkmcp.CallToolResult, MetaResult, error) {
		meta, err := services.Meta.Get(ctx)
		if err != nil {
			return nil, MetaResult{}, mapError(err)
		}
		return nil, MetaResult{Meta: meta}, nil
	})
}

func daySchedule(plans PlanService, day string) (DaySchedule, error) {
	items, err := plans.Items(day)
	if err != nil {
		return DaySchedule{}, err
	}
	minutes, err := plans.DayMinutes(day)
	if err != nil {
		return DaySchedule{}, err
	}
	return DaySchedule{Day: day, Items: items, TotalMinutes: minutes}, nil
}

func gridResult(grids GridService) GridResult {
	return GridResult{Config: grids.Current(), Zoom: grids.Zoom()}
}
