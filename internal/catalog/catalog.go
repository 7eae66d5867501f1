package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownFormat  = errors.New("unknown format")
	ErrUnknownSort    = errors.New("unknown sort key")
)

// LoginFamily is the product family whose documentation is only served to
// authenticated users.
const LoginFamily = "nuage"

type Product struct {
	Name     string
	EntryIDs []string
}

// Combined reports whether the product aggregates several portal entries.
func (p Product) Combined() bool {
	return len(p.EntryIDs) > 1
}

// RequiresLogin reports whether the product documentation needs an
// authenticated portal session.
func (p Product) RequiresLogin() bool {
	return RequiresLogin(p.Name)
}

var products = map[string][]string{
	"nuage-vsp": {"1-0000000000662"},
	"nuage-vns": {"1-0000000004080"},
	"nuage":     {"1-0000000000662", "1-0000000004080"},
	"1350oms":   {"1-0000000003304"},
	"7850vsa":   {"1-0000000004076"},
	"7850vsg":   {"1-0000000004076"},
	"7850-8vsg": {"1-0000000000459"},
	"5620sam":   {"1-0000000002372"},
	"7210sas":   {"1-0000000003348"},
	"7450ess":   {"1-0000000002317"},
	"7705sar":   {"1-0000000002735"},
	"7750sr":    {"1-0000000002238"},
	"7950xrs":   {"1-0000000003922"},
	"vsr":       {"1-0000000004075"},
}

func Lookup(name string) (Product, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	entryIDs, exists := products[name]
	if !exists {
		return Product{}, errors.Wrapf(ErrUnknownProduct, "'%s'", name)
	}

	return Product{
		Name:     name,
		EntryIDs: slices.Clone(entryIDs),
	}, nil
}

// Names returns the known product names, sorted.
func Names() []string {
	names := make([]string, 0, len(products))
	for n := range products {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

func RequiresLogin(product string) bool {
	return strings.Contains(strings.ToLower(product), LoginFamily)
}

var formats = map[string]string{
	"zip":  "Zip Collection",
	"html": "HTML",
	"pdf":  "PDF",
	"epub": "ePub",
	"mobi": "MOBI",
}

// Format maps a format short name to the value expected by the portal. An
// empty name selects every format.
func Format(name string) (string, error) {
	if name == "" {
		return "", nil
	}

	value, exists := formats[strings.ToLower(name)]
	if !exists {
		return "", errors.Wrapf(ErrUnknownFormat, "'%s'", name)
	}

	return value, nil
}

func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

const (
	SortTitle     = "title"
	SortIssueDate = "issue_date"
)

var sortKeys = map[string]string{
	SortTitle:     "Title, A-Z",
	SortIssueDate: "Issue Date",
}

// Sort maps a sort key to the value expected by the portal. An empty key
// sorts by title.
func Sort(key string) (string, error) {
	if key == "" {
		key = SortTitle
	}

	value, exists := sortKeys[strings.ToLower(key)]
	if !exists {
		return "", errors.Wrapf(ErrUnknownSort, "'%s'", key)
	}

	return value, nil
}
