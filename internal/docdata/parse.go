package docdata

import (
	"strings"

	"github.com/bornholm/nokdoc/internal/core/model"
	"github.com/pkg/errors"
)

// Parse turns the docdata HTML fragment of a query response into a result
// set. Every call tracks its own restricted notice, so Parse can be called
// concurrently on independent fragments.
func Parse(docdata string, funcs ...OptionFunc) (model.ResultSet, error) {
	opts := NewOptions(funcs...)

	set := model.ResultSet{}
	restrictedNoticeSent := false

	for _, row := range SplitRows(docdata) {
		cells, ok := extractCells(row)
		if !ok {
			continue
		}

		if isRestricted(cells, opts) && !opts.Authenticated {
			if !restrictedNoticeSent {
				opts.NoticeFunc(Notice{Kind: NoticeRestrictedDocuments})
				restrictedNoticeSent = true
			}

			opts.NoticeFunc(Notice{
				Kind:  NoticeRestrictedSkipped,
				Title: strings.TrimSpace(cells[cellTitle]),
			})

			continue
		}

		doc, err := newDocument(row, cells, opts)
		if err != nil {
			return model.ResultSet{}, errors.WithStack(err)
		}

		set.Add(doc)
	}

	return set, nil
}

// ParseResponses decodes raw query responses and parses their merged
// docdata fragments, in the given order.
func ParseResponses(responses []string, funcs ...OptionFunc) (model.ResultSet, error) {
	decoded := make([]*QueryResponse, 0, len(responses))

	for _, r := range responses {
		res, err := DecodeQueryResponse(r)
		if err != nil {
			return model.ResultSet{}, errors.WithStack(err)
		}

		decoded = append(decoded, res)
	}

	set, err := ParseDecoded(decoded, funcs...)
	if err != nil {
		return model.ResultSet{}, errors.WithStack(err)
	}

	return set, nil
}

// ParseDecoded parses the merged docdata fragments of already decoded
// responses, in the given order.
func ParseDecoded(responses []*QueryResponse, funcs ...OptionFunc) (model.ResultSet, error) {
	var docdata strings.Builder

	for _, r := range responses {
		docdata.WriteString(r.ProdData.DocData)
	}

	set, err := Parse(docdata.String(), funcs...)
	if err != nil {
		return model.ResultSet{}, errors.WithStack(err)
	}

	return set, nil
}
