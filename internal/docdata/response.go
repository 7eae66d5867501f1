package docdata

import "github.com/pkg/errors"

// QueryResponse is the payload returned by the portal's document list
// endpoint.
type QueryResponse struct {
	ProdData ProdData `json:"proddata"`
}

type ProdData struct {
	DocData    string   `json:"docdata"`
	DocSummary string   `json:"doc_summary"`
	Release    []string `json:"release"`
	// Format holds the formats available for the query, as nested lists.
	// It is empty when nothing matched.
	Format any `json:"format"`
}

// HasDocuments reports whether the query matched at least one document.
func (r *QueryResponse) HasDocuments() bool {
	return !isEmptyValue(r.ProdData.Format)
}

func DecodeQueryResponse(text string) (*QueryResponse, error) {
	var res QueryResponse

	if err := Decode(text, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

// HasDocuments reports whether at least one of the responses matched a
// document.
func HasDocuments(responses ...*QueryResponse) bool {
	for _, r := range responses {
		if r.HasDocuments() {
			return true
		}
	}
	return false
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case []any:
		for _, item := range v {
			if !isEmptyValue(item) {
				return false
			}
		}
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
