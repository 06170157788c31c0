package plan

import "errors"

var (
	// ErrOutOfBounds indicates a candidate range outside the day window.
	ErrOutOfBounds = errors.New("item falls outside the day grid")
	// ErrCollision indicates an overlap with an existing item in the target day.
	ErrCollision = errors.New("item overlaps an existing item")
	// ErrMinimumDuration indicates a resize below one base slot.
	ErrMinimumDuration = errors.New("duration below the minimum slot size")
	// ErrItemNotFound indicates the UID does not exist in the expected day.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidDay indicates a day label outside the active configuration.
	ErrInvalidDay = errors.New("day is not part of the grid")
	// ErrBreakNotResizable indicates a resize attempt on a break item.
	ErrBreakNotResizable = errors.New("break items cannot be resized")
	// ErrInvalidKind indicates an unknown item kind.
	ErrInvalidKind = errors.New("invalid item kind")
	// ErrFormat indicates a structurally invalid import payload.
	ErrFormat = errors.New("invalid plan format")
)
