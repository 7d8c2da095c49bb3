package ingest

import (
	"fmt"
	"strings"
)

// Profile names a known input column layout.
type Profile string

const (
	// ProfileStandard expects product_name, quantity and unit_price columns
	// and refuses files that lack any of them.
	ProfileStandard Profile = "standard"
	// ProfileLegacy expects the older product, quantity and price columns.
	// Missing columns are tolerated and default per cell.
	ProfileLegacy Profile = "legacy"
)

// ParseProfile normalises a profile name from config or flag input.
func ParseProfile(s string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfileStandard:
		return ProfileStandard, nil
	case ProfileLegacy:
		return ProfileLegacy, nil
	default:
		return "", fmt.Errorf("unknown input profile %q", s)
	}
}

func (p Profile) columns() (product, quantity, price string) {
	if p == ProfileLegacy {
		return "product", "quantity", "price"
	}
	return "product_name", "quantity", "unit_price"
}
