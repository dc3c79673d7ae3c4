package formatter

import "strings"

// DateLabelPrefix precedes the date in the detail view.
const DateLabelPrefix = "Date: "

// DateLabel renders a record date for display.
// Example: "2024-01-01" -> "Date: 2024-01-01"
func DateLabel(date string) string {
	return DateLabelPrefix + strings.TrimSpace(date)
}

// FirstNonEmpty returns the first argument that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
