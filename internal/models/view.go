package models

import (
	"fmt"

	"github.com/dmitrijs2005/unconfessional/internal/common"
)

// ViewMode selects how the entry list is rendered.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode validates s as a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewGrid, ViewList:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, common.ErrInvalidViewMode)
}
