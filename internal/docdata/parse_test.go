package docdata

import (
	"os"
	"testing"

	"github.com/bornholm/nokdoc/internal/core/model"
	"github.com/pkg/errors"
)

func TestParseResponsesEndToEnd(t *testing.T) {
	response := `{"proddata":{"docdata":"<tr><td>Title A</td><td><nobr>DOC-1</nobr></td><td>1</td><td><nobr>Jan 1, 2020</nobr></td><td><a href='u1' title='PDF document'></a></td></tr>"}}`

	set, err := ParseResponses([]string{response}, WithAuthenticated(false))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, set.Len(); e != g {
		t.Fatalf("set.Len(): expected '%d', got '%d'", e, g)
	}

	expected := model.NewDocument("DOC-1", "Title A", "1", "Jan 1, 2020", false, model.NewLink("u1", model.FormatPDF))

	if got := set.Documents()[0]; !expected.Equal(got) {
		t.Errorf("set.Documents()[0]: expected '%+v', got '%+v'", expected, got)
	}
}

func TestParseFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/7750sr_14.0_garbage.txt")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Name            string
		Authenticated   bool
		ExpectedIDs     []model.DocumentID
		ExpectedNotices []Notice
	}

	testCases := []testCase{
		{
			Name:          "unauthenticated",
			Authenticated: false,
			ExpectedIDs:   []model.DocumentID{"3HE 10795 AAAB TQZZA 02"},
			ExpectedNotices: []Notice{
				{Kind: NoticeRestrictedDocuments},
				{Kind: NoticeRestrictedSkipped, Title: "7450 ESS and 7750 SR Troubleshooting Guide"},
			},
		},
		{
			Name:            "authenticated",
			Authenticated:   true,
			ExpectedIDs:     []model.DocumentID{"3HE 11475 AAAA TQZZA 01", "3HE 10795 AAAB TQZZA 02"},
			ExpectedNotices: []Notice{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			notices := make([]Notice, 0)

			set, err := ParseResponses(
				[]string{string(data)},
				WithAuthenticated(tc.Authenticated),
				WithProductFamily("7750sr"),
				WithNoticeFunc(func(n Notice) {
					notices = append(notices, n)
				}),
			)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			docs := set.Documents()

			if e, g := len(tc.ExpectedIDs), len(docs); e != g {
				t.Fatalf("len(docs): expected '%d', got '%d'", e, g)
			}

			for i, d := range docs {
				if e, g := tc.ExpectedIDs[i], d.ID(); e != g {
					t.Errorf("docs[%d].ID(): expected '%s', got '%s'", i, e, g)
				}

				if d.Restricted() && !tc.Authenticated {
					t.Errorf("docs[%d].Restricted(): unauthenticated parse returned a restricted document", i)
				}
			}

			if e, g := len(tc.ExpectedNotices), len(notices); e != g {
				t.Fatalf("len(notices): expected '%d', got '%d'", e, g)
			}

			for i, n := range notices {
				if e, g := tc.ExpectedNotices[i], n; e != g {
					t.Errorf("notices[%d]: expected '%+v', got '%+v'", i, e, g)
				}
			}

			last := docs[len(docs)-1]

			expectedLinks := []model.Link{
				model.NewLink("https://infoproducts.alcatel-lucent.com/cgi-bin/dbaccessfilename.cgi/3HE10795AAABTQZZA02_V1_7450 ESS 7750 SR and 7950 XRS Multicast Routing Protocols Guide R14.0.R4.pdf", model.FormatPDF),
				model.NewLink("https://infoproducts.alcatel-lucent.com/cgi-bin/dbaccessfilename.cgi/3HE10795AAABTQZZA02_V1.zip", model.FormatZIP),
			}

			if !model.NewDocument(last.ID(), last.Title(), last.Issue(), last.IssueDate(), last.Restricted(), expectedLinks...).Equal(last) {
				t.Errorf("last.Links(): expected '%v', got '%v'", expectedLinks, last.Links())
			}
		})
	}
}

func TestParseNoticeOncePerCall(t *testing.T) {
	fragment := restrictedRow + restrictedRow + openRow

	for range 2 {
		restrictedNotices := 0
		skipped := 0

		set, err := Parse(fragment, WithNoticeFunc(func(n Notice) {
			switch n.Kind {
			case NoticeRestrictedDocuments:
				if skipped > 0 {
					t.Errorf("restricted documents notice sent after a skipped notice")
				}
				restrictedNotices++
			case NoticeRestrictedSkipped:
				skipped++
			}
		}))
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 1, restrictedNotices; e != g {
			t.Errorf("restrictedNotices: expected '%d', got '%d'", e, g)
		}

		if e, g := 2, skipped; e != g {
			t.Errorf("skipped: expected '%d', got '%d'", e, g)
		}

		if e, g := 1, set.Len(); e != g {
			t.Errorf("set.Len(): expected '%d', got '%d'", e, g)
		}
	}
}

func TestParseResponsesMergesCombinedFamilies(t *testing.T) {
	vsp := `{"proddata":{"format":[["PDF"]],"docdata":"<tr><td>Shared</td><td><nobr>DOC-1</nobr></td><td>1</td><td>Jan 1, 2020</td><td><a href='s' title='HTML'></a></td></tr><tr><td>VSP only</td><td><nobr>DOC-2</nobr></td><td>1</td><td>Jan 2, 2020</td><td></td></tr>"}}`
	vns := `junk {"proddata":{"format":[["PDF"]],"docdata":"<tr><td>VNS only</td><td><nobr>DOC-3</nobr></td><td>4</td><td>Jan 3, 2020</td><td></td></tr><tr><td>Shared</td><td><nobr>DOC-1</nobr></td><td>1</td><td>Jan 1, 2020</td><td><a href='other' title='HTML'></a></td></tr>"}}`

	set, err := ParseResponses([]string{vsp, vns}, WithAuthenticated(true), WithProductFamily("nuage"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expectedIDs := []model.DocumentID{"DOC-1", "DOC-2", "DOC-3"}

	docs := set.Documents()
	if e, g := len(expectedIDs), len(docs); e != g {
		t.Fatalf("len(docs): expected '%d', got '%d'", e, g)
	}

	for i, d := range docs {
		if e, g := expectedIDs[i], d.ID(); e != g {
			t.Errorf("docs[%d].ID(): expected '%s', got '%s'", i, e, g)
		}
	}
}

func TestParseDecoded(t *testing.T) {
	raw := `{"proddata":{"format":[["PDF"]],"docdata":"<tr><td>Title A</td><td><nobr>DOC-1</nobr></td><td>1</td><td>Jan 1, 2020</td><td><a href='u1' title='PDF document'></a></td></tr>"}}`

	res, err := DecodeQueryResponse(raw)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	decoded, err := ParseDecoded([]*QueryResponse{res, res})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	fromRaw, err := ParseResponses([]string{raw, raw})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, decoded.Len(); e != g {
		t.Fatalf("decoded.Len(): expected '%d', got '%d'", e, g)
	}

	if e, g := fromRaw.Len(), decoded.Len(); e != g {
		t.Fatalf("decoded.Len(): expected '%d', got '%d'", e, g)
	}

	if !fromRaw.Documents()[0].Equal(decoded.Documents()[0]) {
		t.Errorf("documents: expected '%+v', got '%+v'", fromRaw.Documents()[0], decoded.Documents()[0])
	}
}

func TestParseResponsesMalformed(t *testing.T) {
	_, err := ParseResponses([]string{"<html>maintenance</html>"})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("err: expected '%v', got '%v'", ErrMalformedResponse, err)
	}
}
