package htmlfix

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const titleSeparator = "—"

// Title extracts the document name from an index page: the text of the
// <title> element up to its last em dash. It reports false when the page
// has no such title.
func Title(r io.Reader) (string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", false, errors.WithStack(err)
	}

	text := doc.Find("title").First().Text()

	idx := strings.LastIndex(text, titleSeparator)
	if idx <= 0 {
		return "", false, nil
	}

	title := strings.TrimSpace(text[:idx])
	if title == "" {
		return "", false, nil
	}

	return title, true, nil
}

// FormatFilename keeps ASCII letters, digits and the "-_.() " characters of
// s, then turns spaces into underscores.
func FormatFilename(s string) string {
	var sb strings.Builder

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case strings.ContainsRune("-_.() ", r):
			sb.WriteRune(r)
		}
	}

	return strings.ReplaceAll(sb.String(), " ", "_")
}
