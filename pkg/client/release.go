package client

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/bornholm/nokdoc/internal/docdata"
	"github.com/facette/natsort"
	"github.com/pkg/errors"
)

const documentListPath = "/cgi-bin/get_doc_list.pl"

// Releases lists the releases the portal knows for an entry.
func (c *Client) Releases(ctx context.Context, entryID string) ([]string, error) {
	query := url.Values{}
	query.Set("entry_id", entryID)

	var res docdata.QueryResponse
	if err := c.jsonRequest(ctx, http.MethodGet, c.endpoint(documentListPath, query), nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	if res.ProdData.Release == nil {
		return []string{}, nil
	}

	return res.ProdData.Release, nil
}

// CommonReleases returns the releases shared by every given entry, in
// natural case-insensitive order.
func (c *Client) CommonReleases(ctx context.Context, entryIDs ...string) ([]string, error) {
	var common map[string]struct{}

	for _, id := range entryIDs {
		releases, err := c.Releases(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "could not retrieve releases of entry '%s'", id)
		}

		current := make(map[string]struct{}, len(releases))
		for _, r := range releases {
			if common != nil {
				if _, exists := common[r]; !exists {
					continue
				}
			}
			current[r] = struct{}{}
		}

		common = current
	}

	releases := make([]string, 0, len(common))
	for r := range common {
		releases = append(releases, r)
	}

	SortReleases(releases)

	return releases, nil
}

// SortReleases sorts releases in natural order, ignoring case.
func SortReleases(releases []string) {
	sort.SliceStable(releases, func(i, j int) bool {
		left, right := strings.ToLower(releases[i]), strings.ToLower(releases[j])
		if left == right {
			return releases[i] < releases[j]
		}
		return natsort.Compare(left, right)
	})
}
