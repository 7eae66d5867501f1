package local

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/bornholm/nokdoc/internal/filesystem/testsuite"
	"github.com/pkg/errors"
)

func TestPublish(t *testing.T) {
	dir := t.TempDir()

	testsuite.TestPublish(t, "local://"+filepath.ToSlash(dir), func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	})
}

func TestFromDSN(t *testing.T) {
	type testCase struct {
		DSN      string
		Expected string
	}

	testCases := []testCase{
		{DSN: "local://.", Expected: "."},
		{DSN: "local://docs/7750sr", Expected: filepath.FromSlash("docs/7750sr")},
		{DSN: "local:///srv/docs", Expected: filepath.FromSlash("/srv/docs")},
	}

	for _, tc := range testCases {
		dsn, err := url.Parse(tc.DSN)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		b, err := FromDSN(dsn)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := tc.Expected, b.(*Backend).basePath; e != g {
			t.Errorf("FromDSN(%s): expected '%v', got '%v'", tc.DSN, e, g)
		}
	}
}
