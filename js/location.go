// This file implements the location object (window.location).
package js

import (
	"net/url"
	"sync"

	"github.com/dop251/goja"
)

// aboutBlank is the URL a document reports when none was configured.
const aboutBlank = "about:blank"

// LocationManager holds the environment's current URL and backs the
// window.location object. URL parsing and relative resolution use net/url;
// unparseable input is ignored rather than raised.
type LocationManager struct {
	env *Env
	url *url.URL
	mu  sync.RWMutex
}

// newLocationManager creates a location manager starting at about:blank.
func newLocationManager(env *Env) *LocationManager {
	initialURL, _ := url.Parse(aboutBlank)
	return &LocationManager{
		env: env,
		url: initialURL,
	}
}

// SetURL replaces the current URL outright, without relative resolution.
// Unparseable input leaves the location unchanged.
func (m *LocationManager) SetURL(urlStr string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return
	}
	m.url = parsed
}

// Navigate resolves urlStr against the current URL and makes the result the
// new location. Unparseable input leaves the location unchanged.
func (m *LocationManager) Navigate(urlStr string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return
	}
	if parsed.IsAbs() || m.url == nil {
		m.url = parsed
		return
	}
	m.url = m.url.ResolveReference(parsed)
}

// Href returns the full URL.
func (m *LocationManager) Href() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil {
		return aboutBlank
	}
	return m.url.String()
}

// Protocol returns the scheme with a trailing colon, e.g. "https:".
func (m *LocationManager) Protocol() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil || m.url.Scheme == "" {
		return "about:"
	}
	return m.url.Scheme + ":"
}

// Host returns "hostname:port", or just the hostname for default ports.
func (m *LocationManager) Host() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil {
		return ""
	}
	return m.url.Host
}

// Hostname returns the hostname without the port.
func (m *LocationManager) Hostname() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil {
		return ""
	}
	return m.url.Hostname()
}

// Port returns the port, or "" when none is present.
func (m *LocationManager) Port() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil {
		return ""
	}
	return m.url.Port()
}

// Pathname returns the path, defaulting to "/" when empty.
func (m *LocationManager) Pathname() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil || m.url.Path == "" {
		return "/"
	}
	return m.url.Path
}

// Search returns the query string including the leading "?", or "".
func (m *LocationManager) Search() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil || m.url.RawQuery == "" {
		return ""
	}
	return "?" + m.url.RawQuery
}

// Hash returns the fragment including the leading "#", or "".
func (m *LocationManager) Hash() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil || m.url.Fragment == "" {
		return ""
	}
	return "#" + m.url.Fragment
}

// Origin returns scheme://host, or "null" for about: and javascript: URLs.
func (m *LocationManager) Origin() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.url == nil || m.url.Scheme == "about" || m.url.Scheme == "javascript" {
		return "null"
	}
	return m.url.Scheme + "://" + m.url.Host
}

// setup creates the location object with its accessor properties.
func (m *LocationManager) setup() *goja.Object {
	vm := m.env.vm
	location := vm.NewObject()

	// href is the only writable component; setting it navigates.
	location.DefineAccessorProperty("href",
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(m.Href())
		}),
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 1 {
				return goja.Undefined()
			}
			m.Navigate(call.Arguments[0].String())
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	readOnly := map[string]func() string{
		"protocol": m.Protocol,
		"host":     m.Host,
		"hostname": m.Hostname,
		"port":     m.Port,
		"pathname": m.Pathname,
		"search":   m.Search,
		"hash":     m.Hash,
		"origin":   m.Origin,
	}
	for name, get := range readOnly {
		get := get
		location.DefineAccessorProperty(name,
			vm.ToValue(func(call goja.FunctionCall) goja.Value {
				return vm.ToValue(get())
			}),
			nil,
			goja.FLAG_FALSE, goja.FLAG_TRUE)
	}

	// assign(url) and replace(url) both navigate; there is no history here,
	// so the replace distinction has nothing to record.
	location.Set("assign", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		m.Navigate(call.Arguments[0].String())
		return goja.Undefined()
	})

	location.Set("replace", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		m.Navigate(call.Arguments[0].String())
		return goja.Undefined()
	})

	// toString() returns href (per Location spec)
	location.Set("toString", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(m.Href())
	})

	return location
}
