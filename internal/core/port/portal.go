package port

import (
	"context"
	"io"

	"github.com/bornholm/nokdoc/pkg/client"
)

// Portal is the documentation portal as seen by the services.
type Portal interface {
	Authenticated() bool
	Username() string
	CommonReleases(ctx context.Context, entryIDs ...string) ([]string, error)
	QueryDocuments(ctx context.Context, entryID string, funcs ...client.QueryDocumentsOptionFunc) (string, error)
	CreateCollection(ctx context.Context, entryIDs []string, funcs ...client.CreateCollectionOptionFunc) (*client.Collection, error)
	CollectionSize(ctx context.Context, username string, name string) (int64, error)
	DownloadCollection(ctx context.Context, collection *client.Collection, w io.Writer, funcs ...client.DownloadCollectionOptionFunc) (int64, error)
}

var _ Portal = &client.Client{}
