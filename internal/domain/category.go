package domain

import "encoding/json"

// Category is a chart configuration entry mapping a label to its color.
// The palette is explicit per-user data passed to the rendering boundary,
// not a process-wide default.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ParseCategories decodes a stored category list. The payload is externally
// produced and may be malformed; a payload that does not decode yields an
// empty list rather than an error, so one bad blob never breaks a read.
func ParseCategories(raw []byte) []Category {
	if len(raw) == 0 {
		return nil
	}
	var categories []Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil
	}
	return categories
}

// ColorMap indexes a category list by name for payload assembly.
func ColorMap(categories []Category) map[string]string {
	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		colors[c.Name] = c.Color
	}
	return colors
}
