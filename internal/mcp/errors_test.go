package mcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rgeller/seminargrid/internal/domain/catalog"
	"github.com/rgeller/seminargrid/internal/domain/grid"
	"github.com/rgeller/seminargrid/internal/domain/plan"
	"github.com/stretchr/testify/require"
)

func TestMapErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{plan.ErrOutOfBounds, "OUT_OF_BOUNDS"},
		{plan.ErrCollision, "COLLISION"},
		{plan.ErrMinimumDuration, "MINIMUM_DURATION"},
		{plan.ErrItemNotFound, "ITEM_NOT_FOUND"},
		{plan.ErrInvalidDay, "INVALID_DAY"},
		{plan.ErrBreakNotResizable, "BREAK_NOT_RESIZABLE"},
		{plan.ErrInvalidKind, "INVALID_KIND"},
		{plan.ErrFormat, "FORMAT_ERROR"},
		{grid.ErrInvalidConfig, "INVALID_CONFIG"},
		{grid.ErrUnknownZoom, "UNKNOWN_ZOOM"},
		{grid.ErrUnknownPreset, "UNKNOWN_PRESET"},
		{catalog.ErrEntryNotFound, "ENTRY_NOT_FOUND"},
		{catalog.ErrInvalidEntry, "INVALID_ENTRY"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			apiErr := MapError(tc.err)
			require.NotNil(t, apiErr)
			require.Equal(t, tc.code, apiErr.Code)
			require.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestMapErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("placing item: %w", plan.ErrCollision)
	apiErr := MapError(wrapped)
	require.NotNil(t, apiErr)
	require.Equal(t, "COLLISION", apiErr.Code)
}

func TestMapErrorPassesUnknownThrough(t *testing.T) {
	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(errors.New("disk full")))

	err := mapError(errors.New("disk full"))
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
	require.EqualError(t, err, "disk full")
}

func TestAPIErrorString(t *testing.T) {
	apiErr := &APIError{Code: "COLLISION", Message: "item overlaps an existing item"}
	require.Equal(t, "COLLISION: item overlaps an existing item", apiErr.Error())
}
