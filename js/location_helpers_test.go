package js

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateLocationWarnsOnAboutBlank(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(WithConsoleOutput(&buf))

	ValidateLocation(env)

	out := buf.String()
	if !strings.Contains(out, "about:blank") {
		t.Errorf("Expected a warning mentioning about:blank, got %q", out)
	}
	lines := strings.Count(out, "\n")
	if lines != 1 {
		t.Errorf("Expected exactly one diagnostic line, got %d: %q", lines, out)
	}
	if !strings.HasPrefix(out, "[WARN]") {
		t.Errorf("Expected the warning on the console warn channel, got %q", out)
	}
}

func TestValidateLocationQuietWithURL(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(WithURL("http://localhost:3000/"), WithConsoleOutput(&buf))

	ValidateLocation(env)

	if buf.Len() != 0 {
		t.Errorf("Expected no diagnostic for a configured URL, got %q", buf.String())
	}
}

func TestHasValidLocation(t *testing.T) {
	t.Run("false for about:blank", func(t *testing.T) {
		env := NewEnv()
		if HasValidLocation(env) {
			t.Error("Expected false for the default about:blank location")
		}
	})

	t.Run("true for a configured URL", func(t *testing.T) {
		env := NewEnv(WithURL("http://localhost:3000/"))
		if !HasValidLocation(env) {
			t.Error("Expected true for a configured URL")
		}
	})

	t.Run("true after navigation away from about:blank", func(t *testing.T) {
		env := NewEnv()
		NavigateTo(env, "http://x.test/")
		if !HasValidLocation(env) {
			t.Error("Expected true after navigating to a real URL")
		}
	})
}

func TestNavigateTo(t *testing.T) {
	t.Run("absolute URL", func(t *testing.T) {
		env := NewEnv(WithURL("http://x.test/"))

		NavigateTo(env, "http://x.test/about")

		info := GetLocationInfo(env)
		if info.Pathname != "/about" {
			t.Errorf("Expected pathname '/about', got %q", info.Pathname)
		}
		if info.Origin != "http://x.test" {
			t.Errorf("Expected origin 'http://x.test', got %q", info.Origin)
		}
	})

	t.Run("relative URL resolves against current location", func(t *testing.T) {
		env := NewEnv(WithURL("http://x.test/docs/intro"))

		NavigateTo(env, "advanced")

		if got := GetLocationInfo(env).Pathname; got != "/docs/advanced" {
			t.Errorf("Expected pathname '/docs/advanced', got %q", got)
		}
	})

	t.Run("unparseable URL leaves location unchanged", func(t *testing.T) {
		env := NewEnv(WithURL("http://x.test/start"))

		NavigateTo(env, "http://bad host.test/")

		if got := GetLocationInfo(env).Href; got != "http://x.test/start" {
			t.Errorf("Expected location unchanged, got %q", got)
		}
	})
}

func TestGetLocationInfo(t *testing.T) {
	env := NewEnv(WithURL("https://example.com:8080/path/to/page?query=value#section"))

	info := GetLocationInfo(env)

	expected := LocationInfo{
		Href:     "https://example.com:8080/path/to/page?query=value#section",
		Origin:   "https://example.com:8080",
		Protocol: "https:",
		Host:     "example.com:8080",
		Hostname: "example.com",
		Port:     "8080",
		Pathname: "/path/to/page",
		Search:   "?query=value",
		Hash:     "#section",
	}
	if info != expected {
		t.Errorf("Snapshot mismatch:\n got %+v\nwant %+v", info, expected)
	}
}

func TestGetLocationInfoIsSnapshot(t *testing.T) {
	env := NewEnv(WithURL("http://x.test/first"))

	before := GetLocationInfo(env)
	NavigateTo(env, "http://x.test/second")
	after := GetLocationInfo(env)

	if before.Pathname != "/first" {
		t.Errorf("Earlier snapshot changed retroactively: %+v", before)
	}
	if after.Pathname != "/second" {
		t.Errorf("Later snapshot should see the navigation: %+v", after)
	}
}
