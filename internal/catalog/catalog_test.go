package catalog

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestLookup(t *testing.T) {
	type testCase struct {
		Name             string
		ExpectedEntryIDs []string
		ExpectedCombined bool
		ExpectedLogin    bool
		ExpectedErr      error
	}

	testCases := []testCase{
		{
			Name:             "7750sr",
			ExpectedEntryIDs: []string{"1-0000000002238"},
		},
		{
			Name:             "nuage",
			ExpectedEntryIDs: []string{"1-0000000000662", "1-0000000004080"},
			ExpectedCombined: true,
			ExpectedLogin:    true,
		},
		{
			Name:             " Nuage-VSP ",
			ExpectedEntryIDs: []string{"1-0000000000662"},
			ExpectedLogin:    true,
		},
		{
			Name:        "7x50",
			ExpectedErr: ErrUnknownProduct,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			product, err := Lookup(tc.Name)
			if tc.ExpectedErr != nil {
				if !errors.Is(err, tc.ExpectedErr) {
					t.Fatalf("err: expected '%v', got '%v'", tc.ExpectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedEntryIDs, product.EntryIDs; !slices.Equal(e, g) {
				t.Errorf("product.EntryIDs: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedCombined, product.Combined(); e != g {
				t.Errorf("product.Combined(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedLogin, product.RequiresLogin(); e != g {
				t.Errorf("product.RequiresLogin(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	product, err := Lookup("nuage")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	product.EntryIDs[0] = "changed"

	product, err = Lookup("nuage")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "1-0000000000662", product.EntryIDs[0]; e != g {
		t.Errorf("product.EntryIDs[0]: expected '%s', got '%s'", e, g)
	}
}

func TestNames(t *testing.T) {
	names := Names()

	if !slices.IsSorted(names) {
		t.Errorf("Names(): expected sorted names, got '%v'", names)
	}

	if !slices.Contains(names, "nuage") {
		t.Errorf("Names(): expected 'nuage' to be listed")
	}
}

func TestFormatAndSort(t *testing.T) {
	format, err := Format("zip")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Zip Collection", format; e != g {
		t.Errorf("Format(zip): expected '%s', got '%s'", e, g)
	}

	format, err = Format("")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "", format; e != g {
		t.Errorf("Format(): expected '%s', got '%s'", e, g)
	}

	if _, err := Format("docx"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Format(docx): expected '%v', got '%v'", ErrUnknownFormat, err)
	}

	sortBy, err := Sort("")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Title, A-Z", sortBy; e != g {
		t.Errorf("Sort(): expected '%s', got '%s'", e, g)
	}

	sortBy, err = Sort(SortIssueDate)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Issue Date", sortBy; e != g {
		t.Errorf("Sort(issue_date): expected '%s', got '%s'", e, g)
	}

	if _, err := Sort("author"); !errors.Is(err, ErrUnknownSort) {
		t.Errorf("Sort(author): expected '%v', got '%v'", ErrUnknownSort, err)
	}
}
