package docdata

import (
	"regexp"
	"strings"
)

var (
	rowOpeningTag = regexp.MustCompile(`(?i)<tr[\s>]`)

	// The portal now and then injects stray characters into closing cell
	// tags (ie "</t\x1ad>"). The character run never crosses '<', '>' or
	// '/' so a repair cannot merge two adjacent tags.
	corruptedCellClosingTag = regexp.MustCompile(`</[^\s<>/]*d>`)
)

// SplitRows splits the docdata HTML fragment into one fragment per table
// row. Empty segments are dropped.
func SplitRows(fragment string) []string {
	indexes := rowOpeningTag.FindAllStringIndex(fragment, -1)

	rows := make([]string, 0, len(indexes)+1)
	start := 0

	for _, idx := range indexes {
		rows = appendRow(rows, fragment[start:idx[0]])
		start = idx[0]
	}

	rows = appendRow(rows, fragment[start:])

	return rows
}

func appendRow(rows []string, row string) []string {
	if strings.TrimSpace(row) == "" {
		return rows
	}
	return append(rows, row)
}

// RepairRow rewrites corrupted closing cell tags to "</td>".
func RepairRow(row string) string {
	return corruptedCellClosingTag.ReplaceAllString(row, "</td>")
}
