package testsuite

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/bornholm/nokdoc/internal/filesystem"
	"github.com/bornholm/nokdoc/internal/filesystem/backend"
	"github.com/pkg/errors"
)

// ReadFunc reads back a published file, given its slash separated name,
// without going through the backend under test.
type ReadFunc func(name string) ([]byte, error)

// TestPublish publishes a docset page and a collection archive on the
// destination given by dsn and checks both were stored.
func TestPublish(t *testing.T, dsn string, read ReadFunc) {
	t.Logf("Using destination '%s'", dsn)

	b, err := backend.New(dsn)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	files := map[string]string{
		"docs/7750sr/nokdoc__7750SR__14.0.html":      "<html><body>7750 SR</body></html>",
		"nokdoc__NUAGE__4.0.R6__ALL__2017_03_04.zip": "PK\x03\x04 not really a zip",
	}

	for name, content := range files {
		err := filesystem.Publish(ctx, b, name, func(w io.Writer) error {
			_, err := fmt.Fprint(w, content)
			return err
		})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	for name, content := range files {
		data, err := read(name)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := content, string(data); e != g {
			t.Errorf("%s: expected '%s', got '%s'", name, e, g)
		}
	}
}
