package docdata

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestNormalize(t *testing.T) {
	type testCase struct {
		Name          string
		Text          string
		Expected      any
		ExpectedError error
	}

	testCases := []testCase{
		{
			Name:     "valid json",
			Text:     `{"a":1}`,
			Expected: map[string]any{"a": float64(1)},
		},
		{
			Name:     "garbage around payload",
			Text:     `garbage-prefix{"a":1}garbage-suffix`,
			Expected: map[string]any{"a": float64(1)},
		},
		{
			Name:     "line breaks inside payload",
			Text:     "junk\r\n{\"a\":\r\n\"multi\nline\"}\r\n",
			Expected: map[string]any{"a": "multiline"},
		},
		{
			Name:          "no payload",
			Text:          "<html>Internal Server Error</html>",
			ExpectedError: ErrMalformedResponse,
		},
		{
			Name:          "unrecoverable payload",
			Text:          `junk{"a":}junk`,
			ExpectedError: ErrMalformedResponse,
		},
		{
			Name:          "braces in wrong order",
			Text:          `} nothing here {`,
			ExpectedError: ErrMalformedResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			value, err := Normalize(tc.Text)

			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("err: expected '%v', got '%v'", tc.ExpectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, value; !reflect.DeepEqual(e, g) {
				t.Errorf("Normalize(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestNormalizeIdempotence(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,null,"c"]}`,
		`{"proddata":{"docdata":"<tr><td>x</td></tr>","release":["1.0"]}}`,
		`[]`,
	}

	for _, input := range inputs {
		first, err := Normalize(input)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		data, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		second, err := Normalize(string(data))
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("Normalize(%q): expected '%v', got '%v'", input, first, second)
		}
	}
}

func TestDecodeQueryResponse(t *testing.T) {
	clean, err := os.ReadFile("testdata/7750sr_14.0.json")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	garbage, err := os.ReadFile("testdata/7750sr_14.0_garbage.txt")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected, err := DecodeQueryResponse(string(clean))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	recovered, err := DecodeQueryResponse(string(garbage))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !reflect.DeepEqual(expected, recovered) {
		t.Errorf("DecodeQueryResponse(): recovered response differs from clean response")
	}

	if !recovered.HasDocuments() {
		t.Errorf("recovered.HasDocuments(): expected true")
	}

	if e, g := []string{"13.0", "14.0", "15.0"}, recovered.ProdData.Release; !reflect.DeepEqual(e, g) {
		t.Errorf("recovered.ProdData.Release: expected '%v', got '%v'", e, g)
	}
}

func TestHasDocuments(t *testing.T) {
	type testCase struct {
		Text     string
		Expected bool
	}

	testCases := []testCase{
		{Text: `{"proddata":{"format":[]}}`, Expected: false},
		{Text: `{"proddata":{"format":[[],[[]]]}}`, Expected: false},
		{Text: `{"proddata":{}}`, Expected: false},
		{Text: `{"proddata":{"format":[["PDF"]]}}`, Expected: true},
		{Text: `{"proddata":{"format":["HTML","PDF"]}}`, Expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Text, func(t *testing.T) {
			res, err := DecodeQueryResponse(tc.Text)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, res.HasDocuments(); e != g {
				t.Errorf("res.HasDocuments(): expected '%v', got '%v'", e, g)
			}
		})
	}
}
