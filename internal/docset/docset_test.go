package docset

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/nokdoc/internal/core/model"
	"github.com/pkg/errors"
)

func TestFilename(t *testing.T) {
	type testCase struct {
		Product  string
		Release  string
		Expected string
	}

	testCases := []testCase{
		{Product: "7750sr", Release: "", Expected: "nokdoc__7750SR.html"},
		{Product: "7750sr", Release: "14.0", Expected: "nokdoc__7750SR__14.0.html"},
		{Product: "nuage", Release: "4.0.r6 beta", Expected: "nokdoc__NUAGE__4.0.R6_BETA.html"},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, Filename(tc.Product, tc.Release); e != g {
			t.Errorf("Filename(%s, %s): expected '%v', got '%v'", tc.Product, tc.Release, e, g)
		}
	}
}

func TestCollectionFilename(t *testing.T) {
	date := time.Date(2017, time.March, 4, 12, 0, 0, 0, time.UTC)

	if e, g := "nokdoc__NUAGE__4.0.R6__ALL__2017_03_04.zip", CollectionFilename("nuage", "4.0.r6", "", date); e != g {
		t.Errorf("CollectionFilename(): expected '%v', got '%v'", e, g)
	}

	if e, g := "nokdoc__NUAGE-VSP__PDF__2017_03_04.zip", CollectionFilename("nuage-vsp", "", "pdf", date); e != g {
		t.Errorf("CollectionFilename(): expected '%v', got '%v'", e, g)
	}
}

func TestTitleFilter(t *testing.T) {
	filter, err := TitleFilter("*routing*")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	matching := model.NewDocument("DOC-1", "Multicast Routing Protocols Guide", "1", "Dec 2, 2016", false)
	other := model.NewDocument("DOC-2", "Troubleshooting Guide", "1", "Dec 8, 2016", false)

	if !filter(matching) {
		t.Errorf("filter(%s): expected a match", matching.Title())
	}

	if filter(other) {
		t.Errorf("filter(%s): expected no match", other.Title())
	}
}

func TestRender(t *testing.T) {
	set := model.Accumulate(
		model.NewDocument("3HE 10795 AAAB TQZZA 02", "Multicast Routing Protocols Guide", "2", "Dec 2, 2016", false,
			model.NewLink("https://example.com/guide.pdf", model.FormatPDF),
			model.NewLink("https://example.com/guide.zip", model.FormatZIP),
		),
		model.NewDocument("3HE 11475 AAAA TQZZA 01", "Troubleshooting <Guide>", "1", "Dec 8, 2016", true,
			model.NewLink("https://example.com/restricted.pdf", model.FormatPDF),
		),
	)

	var buff bytes.Buffer

	err := Render(&buff, Docset{
		Product:     "7750sr",
		Release:     "14.0",
		GeneratedAt: time.Date(2017, time.March, 4, 0, 0, 0, 0, time.UTC),
		Documents:   set,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	page := buff.String()

	expected := []string{
		"<title>7750sr 14.0 documentation</title>",
		"3HE 10795 AAAB TQZZA 02",
		`href="https://example.com/guide.zip"`,
		"PDF:",
		"ZIP:",
		"Troubleshooting &lt;Guide&gt;",
		`class="restricted"`,
		"2 documents",
		"generated on 2017/03/04",
	}

	for _, e := range expected {
		if !strings.Contains(page, e) {
			t.Errorf("page: expected to contain '%s'", e)
		}
	}

	if e, g := 1, strings.Count(page, `class="restricted"`); e != g {
		t.Errorf("restricted markers: expected '%v', got '%v'", e, g)
	}
}

func TestFormats(t *testing.T) {
	doc := model.NewDocument("DOC-1", "Guide", "1", "Jan 1, 2020", false,
		model.NewLink("a.pdf", model.FormatPDF),
		model.NewLink("a.html", model.FormatHTML),
		model.NewLink("b.pdf", model.FormatPDF),
		model.NewLink("odd", model.FormatUnknown),
	)

	groups := formats(doc)

	if e, g := 3, len(groups); e != g {
		t.Fatalf("len(groups): expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(groups[0].Links); e != g {
		t.Errorf("len(groups[0].Links): expected '%v', got '%v'", e, g)
	}

	if e, g := "unknown", groups[2].Label; e != g {
		t.Errorf("groups[2].Label: expected '%v', got '%v'", e, g)
	}
}
