package batchgetlinks

import (
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseManifest(t *testing.T) {
	manifest := `
nuage:
  releases: [4.0.r6, "5.0"]
7750sr:
  releases:
    - 14.0
    - 13.10
    - ~
7450ess:
`

	entries, err := ParseManifest(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := []Entry{
		{Product: "nuage", Releases: []string{"4.0.r6", "5.0"}},
		{Product: "7750sr", Releases: []string{"14.0", "13.10", ""}},
		{Product: "7450ess", Releases: []string{""}},
	}

	if e, g := len(expected), len(entries); e != g {
		t.Fatalf("len(entries): expected '%v', got '%v'", e, g)
	}

	for i := range expected {
		if e, g := expected[i].Product, entries[i].Product; e != g {
			t.Errorf("entries[%d].Product: expected '%v', got '%v'", i, e, g)
		}

		if e, g := expected[i].Releases, entries[i].Releases; !slices.Equal(e, g) {
			t.Errorf("entries[%d].Releases: expected '%v', got '%v'", i, e, g)
		}
	}
}

func TestParseManifestInvalid(t *testing.T) {
	testCases := []string{
		"- nuage\n- 7750sr\n",
		"nuage:\n  releases: 5.0\n",
		"nuage: [",
	}

	for _, tc := range testCases {
		if _, err := ParseManifest(strings.NewReader(tc)); !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("%q: expected '%v', got '%v'", tc, ErrInvalidManifest, err)
		}
	}
}

func TestParseManifestEmpty(t *testing.T) {
	entries, err := ParseManifest(strings.NewReader(""))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(entries); e != g {
		t.Errorf("len(entries): expected '%v', got '%v'", e, g)
	}
}
