package js

import (
	"bytes"
	"strings"
	"testing"
)

func TestApplyAllInstallsEverything(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(WithConsoleOutput(&buf))
	if err := env.LoadHTML(`<div id="a"></div>`); err != nil {
		t.Fatalf("Failed to load HTML: %v", err)
	}

	ApplyAll(env)

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"requestAnimationFrame installed", "typeof requestAnimationFrame", "function"},
		{"cancelAnimationFrame installed", "typeof cancelAnimationFrame", "function"},
		{"ResizeObserver installed", "typeof ResizeObserver", "function"},
		{"viewport width", "window.innerWidth.toString()", "1280"},
		{"viewport height", "window.innerHeight.toString()", "720"},
		{"fixed bounding rect", "document.getElementById('a').getBoundingClientRect().width.toString()", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := env.Execute(tt.code)
			if err != nil {
				t.Fatalf("Failed to execute %q: %v", tt.code, err)
			}
			if result.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.String())
			}
		})
	}

	t.Run("location validation warned", func(t *testing.T) {
		if !strings.Contains(buf.String(), "about:blank") {
			t.Errorf("Expected the about:blank warning, got %q", buf.String())
		}
	})
}

func TestApplyAllQuietWithConfiguredURL(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(WithURL("http://localhost:3000/"), WithConsoleOutput(&buf))

	ApplyAll(env)
	ApplyAll(env)

	if buf.Len() != 0 {
		t.Errorf("Expected no diagnostics for a configured URL, got %q", buf.String())
	}
}

func TestApplyAllIdempotent(t *testing.T) {
	env := NewEnv(WithURL("http://localhost:3000/"))
	if err := env.LoadHTML(`<div id="a"></div>`); err != nil {
		t.Fatalf("Failed to load HTML: %v", err)
	}

	ApplyAll(env)
	ApplyAll(env)

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"fixed rect still reported", "document.getElementById('a').getBoundingClientRect().height.toString()", "50"},
		{"viewport still fixed", "window.innerWidth.toString()", "1280"},
		{"fresh handle table", "requestAnimationFrame(function(){}).toString()", "1"},
		{"observer still synchronous", `
			(function(){
				var count = 0;
				new ResizeObserver(function(){ count++; }).observe(document.getElementById('a'));
				return count.toString();
			})()
		`, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := env.Execute(tt.code)
			if err != nil {
				t.Fatalf("Failed to execute: %v", err)
			}
			if result.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.String())
			}
		})
	}
}

func TestApplyAllIndependentTargets(t *testing.T) {
	envA := NewEnv(WithURL("http://a.test/"))
	envB := NewEnv(WithURL("http://b.test/"))

	ApplyAll(envA)
	ApplyAll(envB)

	// Handle sequences are per-environment.
	a1, err := envA.Execute("requestAnimationFrame(function(){})")
	if err != nil {
		t.Fatalf("Failed to schedule in envA: %v", err)
	}
	a2, err := envA.Execute("requestAnimationFrame(function(){})")
	if err != nil {
		t.Fatalf("Failed to schedule in envA: %v", err)
	}
	b1, err := envB.Execute("requestAnimationFrame(function(){})")
	if err != nil {
		t.Fatalf("Failed to schedule in envB: %v", err)
	}

	if a1.ToInteger() != 1 || a2.ToInteger() != 2 {
		t.Errorf("Expected envA handles 1,2, got %v,%v", a1, a2)
	}
	if b1.ToInteger() != 1 {
		t.Errorf("Expected envB handle 1, got %v", b1)
	}

	// Locations stay independent too.
	NavigateTo(envA, "/moved")
	if got := GetLocationInfo(envB).Pathname; got != "/" {
		t.Errorf("Navigation in envA leaked into envB: %q", got)
	}
}
