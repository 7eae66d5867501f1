package docdata

import (
	"regexp"
	"strings"

	"github.com/bornholm/nokdoc/internal/core/model"
	"github.com/pkg/errors"
)

const cellsPerRow = 5

const (
	cellTitle = iota
	cellIdentifier
	cellIssue
	cellIssueDate
	cellLinks
)

var (
	cellPattern       = regexp.MustCompile(`(?is)<td(?:\s[^>]*)?>(.*?)</td>`)
	identifierPattern = regexp.MustCompile(`>([^<]*)<`)
	nobrPattern       = regexp.MustCompile(`(?i)</?nobr>`)
)

// ParseRow parses a single row fragment. It returns a nil document when the
// fragment is not a document row, or when the document is restricted and
// the caller is not authenticated.
func ParseRow(row string, authenticated bool, productFamily string, funcs ...OptionFunc) (*model.Document, error) {
	funcs = append([]OptionFunc{
		WithAuthenticated(authenticated),
		WithProductFamily(productFamily),
	}, funcs...)

	opts := NewOptions(funcs...)

	cells, ok := extractCells(row)
	if !ok {
		return nil, nil
	}

	if isRestricted(cells, opts) && !opts.Authenticated {
		return nil, nil
	}

	doc, err := newDocument(row, cells, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return doc, nil
}

// extractCells repairs the row and returns the contents of its cells. Rows
// with fewer cells than a document row are rejected; extra cells are
// ignored.
func extractCells(row string) ([]string, bool) {
	matches := cellPattern.FindAllStringSubmatch(RepairRow(row), -1)
	if len(matches) < cellsPerRow {
		return nil, false
	}

	cells := make([]string, cellsPerRow)
	for i := range cellsPerRow {
		cells[i] = matches[i][1]
	}

	return cells, true
}

func isRestricted(cells []string, opts *Options) bool {
	if opts.RestrictedMarker == "" {
		return false
	}
	return strings.Contains(cells[cellIdentifier], opts.RestrictedMarker)
}

func newDocument(row string, cells []string, opts *Options) (*model.Document, error) {
	match := identifierPattern.FindStringSubmatch(cells[cellIdentifier])
	if match == nil {
		return nil, newRowParseError(row, "no identifier found in identifier cell")
	}

	id := strings.TrimSpace(match[1])
	if id == "" {
		return nil, newRowParseError(row, "empty identifier")
	}

	issueDate := nobrPattern.ReplaceAllString(cells[cellIssueDate], "")

	links := classifyLinks(cells[cellLinks], id, opts)

	doc := model.NewDocument(
		model.DocumentID(id),
		strings.TrimSpace(cells[cellTitle]),
		strings.TrimSpace(cells[cellIssue]),
		strings.TrimSpace(issueDate),
		isRestricted(cells, opts),
		links...,
	)

	return doc, nil
}
