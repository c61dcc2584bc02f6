// This file implements the resize-notification shim: a ResizeObserver whose
// observe call synchronously reports a fixed content rect.
package js

import "github.com/dop251/goja"

// Fixed content rect dimensions the shim reports for every observation.
const (
	observedContentWidth  = 100
	observedContentHeight = 100
)

// PatchResizeObserver installs a ResizeObserver constructor on the
// environment. Observation is simulated, not detected: every observe call
// invokes the bound callback exactly once, synchronously, with a
// single-entry list carrying the observed target and a fixed content rect.
// An options argument is accepted and ignored. disconnect and unobserve
// are no-ops in any state.
func PatchResizeObserver(env *Env) {
	vm := env.vm

	vm.Set("ResizeObserver", func(call goja.ConstructorCall) *goja.Object {
		if len(call.Arguments) < 1 {
			panic(vm.NewTypeError("Failed to construct 'ResizeObserver': 1 argument required"))
		}
		callback, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			panic(vm.NewTypeError("Failed to construct 'ResizeObserver': parameter 1 is not a function"))
		}

		jsObserver := call.This

		jsObserver.Set("observe", func(call goja.FunctionCall) goja.Value {
			target := goja.Undefined()
			if len(call.Arguments) > 0 {
				target = call.Arguments[0]
			}

			contentRect := vm.NewObject()
			contentRect.Set("x", 0)
			contentRect.Set("y", 0)
			contentRect.Set("top", 0)
			contentRect.Set("left", 0)
			contentRect.Set("width", observedContentWidth)
			contentRect.Set("height", observedContentHeight)
			contentRect.Set("right", observedContentWidth)
			contentRect.Set("bottom", observedContentHeight)

			entry := vm.NewObject()
			entry.Set("target", target)
			entry.Set("contentRect", contentRect)

			entries := vm.NewArray(entry)

			_, _ = callback(jsObserver, entries, jsObserver)
			return goja.Undefined()
		})

		jsObserver.Set("unobserve", func(call goja.FunctionCall) goja.Value {
			return goja.Undefined()
		})

		jsObserver.Set("disconnect", func(call goja.FunctionCall) goja.Value {
			return goja.Undefined()
		})

		return jsObserver
	})
}
