package js

// ApplyAll applies every patch to the environment, in a fixed order:
// geometry, animation frames, resize observer, then location validation.
//
// Applying it twice to the same environment re-applies every patch under
// that patch's own idempotence rules; note the animation-frame patch
// installs a fresh handle table each time. Two environments patched
// separately share no installed state.
func ApplyAll(env *Env) {
	PatchGeometry(env)
	PatchAnimationFrames(env)
	PatchResizeObserver(env)
	ValidateLocation(env)
}
