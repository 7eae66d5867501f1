package config

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Setenv("NOKDOC_LOGIN", "jdoe")
	t.Setenv("NOKDOC_PORTAL_DOC_HOST", "docs.example.com")
	t.Setenv("NOKDOC_CLIENT_TIMEOUT", "30s")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "jdoe", conf.Login; e != g {
		t.Errorf("conf.Login: expected '%v', got '%v'", e, g)
	}

	if e, g := "docs.example.com", conf.Portal.DocHost; e != g {
		t.Errorf("conf.Portal.DocHost: expected '%v', got '%v'", e, g)
	}

	if e, g := 30*time.Second, conf.Client.Timeout; e != g {
		t.Errorf("conf.Client.Timeout: expected '%v', got '%v'", e, g)
	}

	if e, g := "nuage", conf.Portal.SynthesizedFamily; e != g {
		t.Errorf("conf.Portal.SynthesizedFamily: expected '%v', got '%v'", e, g)
	}

	if e, g := 250*time.Millisecond, conf.Client.RateLimitInterval; e != g {
		t.Errorf("conf.Client.RateLimitInterval: expected '%v', got '%v'", e, g)
	}
}
