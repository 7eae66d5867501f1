package model

import "slices"

type DocumentID string

// Document is a single entry of the portal's document list. It is created
// once per table row and never mutated afterwards.
type Document struct {
	id         DocumentID
	title      string
	issue      string
	issueDate  string
	restricted bool
	links      []Link
}

func (d *Document) ID() DocumentID {
	return d.id
}

func (d *Document) Title() string {
	return d.title
}

func (d *Document) Issue() string {
	return d.issue
}

// IssueDate is kept in the server's free-form format.
func (d *Document) IssueDate() string {
	return d.issueDate
}

// Restricted reports whether a login is required to access the document.
func (d *Document) Restricted() bool {
	return d.restricted
}

// Links returns a copy of the document links, in the order the server
// listed them.
func (d *Document) Links() []Link {
	return slices.Clone(d.links)
}

// LinksByFormat returns the links matching the given format.
func (d *Document) LinksByFormat(format LinkFormat) []Link {
	links := make([]Link, 0)
	for _, l := range d.links {
		if l.Format == format {
			links = append(links, l)
		}
	}
	return links
}

// Equal compares documents field by field, links included and in order.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	return d.id == other.id &&
		d.title == other.title &&
		d.issue == other.issue &&
		d.issueDate == other.issueDate &&
		d.restricted == other.restricted &&
		slices.Equal(d.links, other.links)
}

func NewDocument(id DocumentID, title string, issue string, issueDate string, restricted bool, links ...Link) *Document {
	return &Document{
		id:         id,
		title:      title,
		issue:      issue,
		issueDate:  issueDate,
		restricted: restricted,
		links:      slices.Clone(links),
	}
}
