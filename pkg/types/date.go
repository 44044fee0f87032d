package types

import "time"

// DateFormat is the layout of createdAt stamps. Dates are stored as plain
// ISO strings so that lexicographic ordering matches chronological ordering
// in the list pipeline.
const DateFormat = "2006-01-02"

// Today returns the current date in DateFormat.
func Today() string {
	return time.Now().Format(DateFormat)
}
