package mcp

import (
	"errors"
	"fmt"

	"github.com/rgeller/seminargrid/internal/domain/catalog"
	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, plan.ErrOutOfBounds):
		return &APIError{Code: "OUT_OF_BOUNDS", Message: "item does not fit inside the day window", RecoveryHint: "Pick an earlier start or a shorter duration"}
	case errors.Is(err, plan.ErrCollision):
		return &APIError{Code: "COLLISION", Message: "item overlaps an existing item", RecoveryHint: "Pick a free time range or move the blocking item"}
	case errors.Is(err, plan.ErrMinimumDuration):
		return &APIError{Code: "MINIMUM_DURATION", Message: "item cannot shrink below one base slot", RecoveryHint: "Delete the item instead of shrinking it further"}
	case errors.Is(err, plan.ErrItemNotFound):
		return &APIError{Code: "ITEM_NOT_FOUND", Message: "no item with that uid on that day", RecoveryHint: "Call get_day to list current uids"}
	case errors.Is(err, plan.ErrInvalidDay):
		return &APIError{Code: "INVALID_DAY", Message: "day is not part of the configured grid", RecoveryHint: "Call get_grid to list configured days"}
	case errors.Is(err, plan.ErrBreakNotResizable):
		return &APIError{Code: "BREAK_NOT_RESIZABLE", Message: "break items keep their fixed duration", RecoveryHint: "Delete the break and add a new one"}
	case errors.Is(err, plan.ErrInvalidKind):
		return &APIError{Code: "INVALID_KIND", Message: "kind must be method or break"}
	case errors.Is(err, plan.ErrFormat):
		return &APIError{Code: "FORMAT_ERROR", Message: "payload is not a valid plan envelope", RecoveryHint: "Export a plan to see the expected shape"}
	case errors.Is(err, grid.ErrInvalidConfig):
		return &APIError{Code: "INVALID_CONFIG", Message: "grid configuration is invalid", RecoveryHint: "Days must be distinct, day_start < day_end, slot_minutes > 0"}
	case errors.Is(err, grid.ErrUnknownZoom):
		return &APIError{Code: "UNKNOWN_ZOOM", Message: "unknown zoom level", RecoveryHint: "Use fine, medium or coarse"}
	case errors.Is(err, grid.ErrUnknownPreset):
		return &APIError{Code: "UNKNOWN_PRESET", Message: "unknown preset key", RecoveryHint: "Call list_presets for valid keys"}
	case errors.Is(err, catalog.ErrEntryNotFound):
		return &APIError{Code: "ENTRY_NOT_FOUND", Message: "catalog entry not found", RecoveryHint: "Call list_catalog_entries for valid ids"}
	case errors.Is(err, catalog.ErrInvalidEntry):
		return &APIError{Code: "INVALID_ENTRY", Message: "catalog entry is invalid", RecoveryHint: "Title is required and duration must not be negative"}
	default:
		return nil
	}
}

// mapError upgrades known domain errors to APIErrors and passes everything
// else through unchanged.
func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
