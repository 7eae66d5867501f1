package docset

import (
	"embed"
	"html/template"
	"io"

	"github.com/bornholm/nokdoc/internal/core/model"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var docsetTemplate = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"formats": formats,
		}).
		ParseFS(templateFS, "templates/*.html"),
)

// Render writes the docset as a standalone HTML page.
func Render(w io.Writer, d Docset) error {
	data := struct {
		Docset
		Documents   []*model.Document
		GeneratedOn string
	}{
		Docset:      d,
		Documents:   d.Documents.Documents(),
		GeneratedOn: d.GeneratedAt.Format("2006/01/02"),
	}

	if err := docsetTemplate.ExecuteTemplate(w, "docset.html", data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

type formatGroup struct {
	Label string
	Links []model.Link
}

// formats groups the links of a document per format, in order of first
// appearance.
func formats(doc *model.Document) []formatGroup {
	groups := make([]formatGroup, 0)
	index := make(map[model.LinkFormat]int)

	for _, l := range doc.Links() {
		i, exists := index[l.Format]
		if !exists {
			i = len(groups)
			index[l.Format] = i
			groups = append(groups, formatGroup{Label: l.Format.String()})
		}

		groups[i].Links = append(groups[i].Links, l)
	}

	return groups
}
