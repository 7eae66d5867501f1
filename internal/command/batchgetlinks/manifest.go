package batchgetlinks

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidManifest = errors.New("invalid manifest")

// Entry is a product of the manifest with the releases to fetch. An empty
// release selects every release.
type Entry struct {
	Product  string
	Releases []string
}

type manifestProduct struct {
	// Null items stand for every release
	Releases []*string `yaml:"releases"`
}

// ParseManifest reads a YAML document mapping product names to their
// releases, keeping the document order:
//
//	nuage:
//	  releases: [4.0.r6, 5.0]
//	7750sr:
//	  releases:
//	    - 14.0
func ParseManifest(r io.Reader) ([]Entry, error) {
	var root yaml.Node

	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return []Entry{}, nil
		}

		return nil, errors.Wrap(ErrInvalidManifest, err.Error())
	}

	if len(root.Content) == 0 {
		return []Entry{}, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrInvalidManifest, "line %d: expected a mapping of products", mapping.Line)
	}

	entries := make([]Entry, 0, len(mapping.Content)/2)

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]

		var product manifestProduct

		if err := value.Decode(&product); err != nil {
			return nil, errors.Wrapf(ErrInvalidManifest, "line %d: product '%s': %s", value.Line, key.Value, err.Error())
		}

		releases := make([]string, 0, len(product.Releases))
		for _, r := range product.Releases {
			if r == nil {
				releases = append(releases, "")
				continue
			}

			releases = append(releases, *r)
		}

		if len(releases) == 0 {
			releases = []string{""}
		}

		entries = append(entries, Entry{
			Product:  key.Value,
			Releases: releases,
		})
	}

	return entries, nil
}
