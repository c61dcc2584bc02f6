// Package js hosts a goja-backed window environment and the deterministic
// browser-behavior patches used by headless tests: element geometry,
// animation-frame scheduling, resize notifications and location
// introspection.
package js

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/mockdom/dom"
	"github.com/chrisuehlinger/mockdom/html"
)

// Env wraps a goja runtime with the window surface the patches operate on:
// a global window object, a console, a high-resolution clock, a location
// object and an optional bound document.
type Env struct {
	vm       *goja.Runtime
	window   *goja.Object
	out      io.Writer
	location *LocationManager
	doc      *dom.Document
	nodeMap  map[*dom.Node]*goja.Object

	// schedulers holds every frame scheduler installed on this environment.
	// Re-applying the animation-frame patch adds a fresh one; earlier
	// installations keep their pending frames until they fire.
	schedulers []*frameScheduler

	// fixedRect, when set by the geometry patch, is the rect every bound
	// element reports from getBoundingClientRect.
	fixedRect *dom.DOMRect

	start time.Time

	// mu serializes script execution. It must never be acquired from
	// inside a binding: bindings run while Execute holds it.
	mu sync.Mutex

	// stateMu guards the installed-patch state (schedulers, fixedRect),
	// which bindings do read mid-script.
	stateMu sync.Mutex
}

// Option configures an Env at construction time.
type Option func(*Env)

// WithURL sets the environment's document URL. Without it the location
// stays at about:blank and ValidateLocation will warn.
func WithURL(raw string) Option {
	return func(e *Env) {
		e.location.SetURL(raw)
	}
}

// WithConsoleOutput redirects console and diagnostic output. The default
// is os.Stdout.
func WithConsoleOutput(w io.Writer) Option {
	return func(e *Env) {
		e.out = w
	}
}

// NewEnv creates a window environment with a console, performance clock and
// location object installed. None of the patches are applied; see ApplyAll.
func NewEnv(opts ...Option) *Env {
	vm := goja.New()

	e := &Env{
		vm:      vm,
		out:     os.Stdout,
		nodeMap: make(map[*dom.Node]*goja.Object),
		start:   time.Now(),
	}
	e.location = newLocationManager(e)

	e.setupWindow()
	e.setupConsole()

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// VM returns the underlying goja runtime.
func (e *Env) VM() *goja.Runtime {
	return e.vm
}

// Window returns the window object (the goja global object).
func (e *Env) Window() *goja.Object {
	return e.window
}

// Location returns the environment's location layer.
func (e *Env) Location() *LocationManager {
	return e.location
}

// Document returns the currently loaded document, or nil.
func (e *Env) Document() *dom.Document {
	return e.doc
}

// Now returns milliseconds elapsed since the environment was created,
// from the monotonic clock. This is what performance.now() reports.
func (e *Env) Now() float64 {
	return float64(time.Since(e.start).Nanoseconds()) / 1e6
}

// Execute runs JavaScript code and returns the result.
func (e *Env) Execute(code string) (result goja.Value, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Recover from panics in the goja parser/runtime
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
		}
	}()

	return e.vm.RunString(code)
}

// LoadHTML parses an HTML document and installs it as the environment's
// document object. Loading a new document discards previous bindings.
func (e *Env) LoadHTML(src string) error {
	doc, err := html.Parse(src)
	if err != nil {
		return err
	}
	e.doc = doc
	e.nodeMap = make(map[*dom.Node]*goja.Object)
	e.vm.Set("document", e.bindDocument(doc))
	return nil
}

// RunFrames fires every frame callback that is currently due, across all
// installed frame schedulers, and reports whether any frames remain pending.
func (e *Env) RunFrames() bool {
	e.stateMu.Lock()
	schedulers := append([]*frameScheduler(nil), e.schedulers...)
	e.stateMu.Unlock()

	pending := false
	for _, fs := range schedulers {
		fs.process()
		if fs.hasPending() {
			pending = true
		}
	}
	return pending
}

// FlushFrames blocks until every pending frame callback has fired.
// Callbacks that schedule further frames keep the flush running.
func (e *Env) FlushFrames() {
	for {
		wait, ok := e.nextFrameDue()
		if !ok {
			return
		}
		if wait > 0 {
			time.Sleep(wait)
		}
		e.RunFrames()
	}
}

// nextFrameDue returns the wait until the earliest pending frame across all
// schedulers, and whether any frame is pending at all.
func (e *Env) nextFrameDue() (time.Duration, bool) {
	e.stateMu.Lock()
	schedulers := append([]*frameScheduler(nil), e.schedulers...)
	e.stateMu.Unlock()

	var min time.Duration
	found := false
	for _, fs := range schedulers {
		d, ok := fs.nextDue()
		if !ok {
			continue
		}
		if !found || d < min {
			min = d
			found = true
		}
	}
	return min, found
}

// registerScheduler records a frame scheduler so the environment's pump
// can drive it.
func (e *Env) registerScheduler(fs *frameScheduler) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.schedulers = append(e.schedulers, fs)
}

// fixedBoundingRect returns the rect installed by the geometry patch, or
// nil. Called from the getBoundingClientRect binding mid-script, so it
// must stay off e.mu.
func (e *Env) fixedBoundingRect() *dom.DOMRect {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.fixedRect
}

// warnf writes a warning through the same channel console.warn uses.
func (e *Env) warnf(format string, args ...interface{}) {
	fmt.Fprintln(e.out, "[WARN]", fmt.Sprintf(format, args...))
}

// setupWindow creates the window object and its baseline surface.
func (e *Env) setupWindow() {
	vm := e.vm

	// Use the global object as window/self/globalThis so properties set on
	// window are available globally.
	window := vm.GlobalObject()
	vm.Set("window", window)
	vm.Set("self", window)
	vm.Set("globalThis", window)

	// window.navigator (basic stub)
	navigator := vm.NewObject()
	navigator.Set("userAgent", "mockdom/1.0")
	navigator.Set("language", "en-US")
	navigator.Set("platform", "mockdom")
	window.Set("navigator", navigator)

	// window.performance
	performance := vm.NewObject()
	performance.Set("now", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(e.Now())
	})
	performance.Set("timeOrigin", float64(e.start.UnixNano())/1e6)
	window.Set("performance", performance)

	// window.location
	location := e.location.setup()
	window.Set("location", location)
	vm.Set("location", location)

	e.window = window
}

// setupConsole creates the console object. Output goes to the environment's
// writer, so tests can capture it.
func (e *Env) setupConsole() {
	vm := e.vm
	console := vm.NewObject()

	console.Set("log", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(e.out, formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(e.out, "[WARN]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("error", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(e.out, "[ERROR]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("info", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(e.out, "[INFO]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("debug", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(e.out, "[DEBUG]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	vm.Set("console", console)
}

// formatArgs formats function call arguments for console output.
func formatArgs(args []goja.Value) string {
	result := ""
	for i, arg := range args {
		if i > 0 {
			result += " "
		}
		result += formatValue(arg)
	}
	return result
}

// formatValue formats a single value for output.
func formatValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	return v.String()
}
