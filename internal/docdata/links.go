package docdata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bornholm/nokdoc/internal/core/model"
)

// The portal puts the title on the icon nested inside the anchor, so both
// attributes are looked up on the shortest span holding them, in either
// order. Values are single or double quoted.
var linkPattern = regexp.MustCompile(
	`(?is)\shref\s*=\s*(?:'([^']*)'|"([^"]*)").*?\stitle\s*=\s*(?:'([^']*)'|"([^"]*)")` +
		`|\stitle\s*=\s*(?:'([^']*)'|"([^"]*)").*?\shref\s*=\s*(?:'([^']*)'|"([^"]*)")`,
)

var formatKeywords = []model.LinkFormat{
	model.FormatPDF,
	model.FormatZIP,
	model.FormatHTML,
}

// ClassifyLinks extracts the (url, format) pairs of a links cell.
func ClassifyLinks(cell string, productFamily string, documentID string, funcs ...OptionFunc) []model.Link {
	funcs = append([]OptionFunc{WithProductFamily(productFamily)}, funcs...)
	opts := NewOptions(funcs...)
	return classifyLinks(cell, documentID, opts)
}

func classifyLinks(cell string, documentID string, opts *Options) []model.Link {
	links := make([]model.Link, 0)

	for _, idx := range linkPattern.FindAllStringSubmatchIndex(cell, -1) {
		var href, title string
		if idx[2] >= 0 || idx[4] >= 0 {
			href, title = quotedValue(cell, idx, 1), quotedValue(cell, idx, 3)
		} else {
			title, href = quotedValue(cell, idx, 5), quotedValue(cell, idx, 7)
		}

		format := classifyFormat(title)

		if format == model.FormatHTML && isSynthesizedFamily(opts) {
			href = SynthesizedURL(opts.DocHost, documentID)
		}

		links = append(links, model.NewLink(href, format))
	}

	return links
}

// quotedValue returns the attribute value captured by the single quoted
// group or the double quoted group following it.
func quotedValue(s string, idx []int, group int) string {
	for _, g := range []int{group, group + 1} {
		if start := idx[2*g]; start >= 0 {
			return s[start:idx[2*g+1]]
		}
	}
	return ""
}

func classifyFormat(title string) model.LinkFormat {
	title = strings.ToUpper(title)
	for _, f := range formatKeywords {
		if strings.Contains(title, string(f)) {
			return f
		}
	}
	return model.FormatUnknown
}

func isSynthesizedFamily(opts *Options) bool {
	return opts.SynthesizedFamily != "" && strings.Contains(opts.ProductFamily, opts.SynthesizedFamily)
}

// SynthesizedURL returns the HTML entry point of a document hosted on the
// portal's static documentation tree.
func SynthesizedURL(docHost string, documentID string) string {
	return fmt.Sprintf("https://%s/aces/htdocs/%s/index.html", docHost, documentID)
}
