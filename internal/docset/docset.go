package docset

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bornholm/nokdoc/internal/core/model"
	"github.com/pkg/errors"
	"github.com/redmatter/go-globre/v2"
)

// Docset is a rendered list of documents for a product release.
type Docset struct {
	Product     string
	Release     string
	GeneratedAt time.Time
	Documents   model.ResultSet
}

const filenamePrefix = "nokdoc"

// Filename returns the name of the HTML file listing a product release.
func Filename(product string, release string) string {
	return baseName(product, release) + ".html"
}

// CollectionFilename returns the name of a downloaded collection archive.
// An empty format stands for every format.
func CollectionFilename(product string, release string, format string, date time.Time) string {
	format = strings.ToUpper(format)
	if format == "" {
		format = "ALL"
	}

	return fmt.Sprintf("%s__%s__%s.zip", baseName(product, release), format, date.Format("2006_01_02"))
}

func baseName(product string, release string) string {
	name := filenamePrefix + "__" + strings.ToUpper(product)
	if release != "" {
		name += "__" + strings.ReplaceAll(strings.ToUpper(release), " ", "_")
	}
	return name
}

// TitleFilter returns a predicate matching document titles against a glob
// pattern, ignoring case.
func TitleFilter(glob string) (func(doc *model.Document) bool, error) {
	pattern := globre.RegexFromGlob(
		glob,
		globre.ExtendedSyntaxEnabled(true),
		globre.GlobStarEnabled(true),
	)

	titleRegExp, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse title filter '%s'", glob)
	}

	return func(doc *model.Document) bool {
		return titleRegExp.MatchString(doc.Title())
	}, nil
}
