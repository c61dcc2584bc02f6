// This file implements the geometry patch: a fixed bounding box for every
// element and fixed viewport size readouts.
package js

import "github.com/chrisuehlinger/mockdom/dom"

// Fixed values the geometry patch reports. There is no layout engine
// behind them; deterministic output is the point.
const (
	mockRectWidth  = 100
	mockRectHeight = 50

	mockViewportWidth  = 1280
	mockViewportHeight = 720
)

// PatchGeometry makes getBoundingClientRect return a fixed rect for every
// bound element, regardless of the element's assigned geometry, and sets
// innerWidth/innerHeight to fixed values.
//
// The viewport properties are plain data properties: callers may overwrite
// them afterwards and the patch will not re-assert its values until it is
// applied again. Re-applying replaces the overrides with identical ones.
func PatchGeometry(env *Env) {
	env.stateMu.Lock()
	env.fixedRect = dom.NewDOMRect(0, 0, mockRectWidth, mockRectHeight)
	env.stateMu.Unlock()

	env.window.Set("innerWidth", mockViewportWidth)
	env.window.Set("innerHeight", mockViewportHeight)
}
