package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bornholm/nokdoc/pkg/client"
)

type fakePortal struct {
	authenticated bool
	releases      map[string][]string
	documents     map[string]string
	archive       string
	queries       []*client.QueryDocumentsOptions
}

func (p *fakePortal) Authenticated() bool {
	return p.authenticated
}

func (p *fakePortal) Username() string {
	if p.authenticated {
		return "jdoe"
	}
	return ""
}

func (p *fakePortal) CommonReleases(ctx context.Context, entryIDs ...string) ([]string, error) {
	releases := p.releases[entryIDs[0]]
	for _, id := range entryIDs[1:] {
		common := make([]string, 0)
		for _, r := range releases {
			for _, o := range p.releases[id] {
				if strings.EqualFold(r, o) {
					common = append(common, r)
					break
				}
			}
		}
		releases = common
	}

	client.SortReleases(releases)

	return releases, nil
}

func (p *fakePortal) QueryDocuments(ctx context.Context, entryID string, funcs ...client.QueryDocumentsOptionFunc) (string, error) {
	p.queries = append(p.queries, client.NewQueryDocumentsOptions(funcs...))
	return p.documents[entryID], nil
}

func (p *fakePortal) CreateCollection(ctx context.Context, entryIDs []string, funcs ...client.CreateCollectionOptionFunc) (*client.Collection, error) {
	return &client.Collection{
		URL:  "https://infoproducts.alcatel-lucent.com/aces/cgi-bin/down_col.pl?col_name=nokdoc_XYZ.zip",
		Name: "nokdoc_XYZ",
	}, nil
}

func (p *fakePortal) CollectionSize(ctx context.Context, username string, name string) (int64, error) {
	return int64(len(p.archive)), nil
}

func (p *fakePortal) DownloadCollection(ctx context.Context, collection *client.Collection, w io.Writer, funcs ...client.DownloadCollectionOptionFunc) (int64, error) {
	opts := client.NewDownloadCollectionOptions(funcs...)

	written, err := io.Copy(w, strings.NewReader(p.archive))
	opts.ProgressFunc(written, int64(len(p.archive)))

	return written, err
}

func row(id string, title string, restricted bool, links ...string) string {
	idCell := fmt.Sprintf("<nobr>%s</nobr>", id)
	if restricted {
		idCell += " <img alt='a login is required for access'>"
	}

	return fmt.Sprintf(
		"<tr><td>%s</td><td>%s</td><td>01</td><td><nobr>Mar 4, 2017</nobr></td><td>%s</td></tr>",
		title, idCell, strings.Join(links, " "),
	)
}

func link(url string, title string) string {
	return fmt.Sprintf("<a href='%s' title='%s'>x</a>", url, title)
}

func response(rows ...string) string {
	docdata := strings.ReplaceAll(strings.Join(rows, ""), `"`, `\"`)
	return fmt.Sprintf(`{"proddata":{"docdata":"%s","format":[["PDF"]]}}`, docdata)
}
