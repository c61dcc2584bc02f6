// This file implements the animation-frame shim: requestAnimationFrame and
// cancelAnimationFrame backed by a per-installation frame scheduler.
package js

import (
	"sort"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// framePeriod is the nominal period of one 60 Hz frame. Frames fire
// approximately one period after scheduling, not on an exact cadence.
const framePeriod = 16 * time.Millisecond

// frame represents a scheduled animation-frame callback.
type frame struct {
	id       int
	callback goja.Callable
	due      time.Time
}

// frameScheduler tracks pending animation frames for one installation of
// the shim. A handle appears in the table exactly while its callback has
// neither fired nor been cancelled. Each installation gets its own table
// and counter; handles are never shared between installations.
type frameScheduler struct {
	env    *Env
	frames map[int]*frame
	nextID int
	mu     sync.Mutex
}

// newFrameScheduler creates an empty scheduler. The first handle issued is 1.
func newFrameScheduler(env *Env) *frameScheduler {
	return &frameScheduler{
		env:    env,
		frames: make(map[int]*frame),
	}
}

// schedule arms a frame due one period from now and returns its handle.
func (fs *frameScheduler) schedule(callback goja.Callable) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.nextID++
	id := fs.nextID

	fs.frames[id] = &frame{
		id:       id,
		callback: callback,
		due:      time.Now().Add(framePeriod),
	}
	return id
}

// cancel disarms a pending frame. Unknown, already-fired and
// already-cancelled handles are ignored.
func (fs *frameScheduler) cancel(id int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.frames, id)
}

// process fires every due frame, oldest handle first. An entry is removed
// from the table before its callback runs; the callback receives the
// high-resolution timestamp sampled at the moment of firing.
func (fs *frameScheduler) process() {
	fs.mu.Lock()
	now := time.Now()
	var due []*frame
	for _, f := range fs.frames {
		if !f.due.After(now) {
			due = append(due, f)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].id < due[j].id })
	for _, f := range due {
		delete(fs.frames, f.id)
	}
	fs.mu.Unlock()

	for _, f := range due {
		_, _ = f.callback(goja.Undefined(), fs.env.vm.ToValue(fs.env.Now()))
	}
}

// hasPending returns true if any frames are still scheduled.
func (fs *frameScheduler) hasPending() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.frames) > 0
}

// nextDue returns the wait until the earliest pending frame. The second
// return is false when nothing is pending.
func (fs *frameScheduler) nextDue() (time.Duration, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if len(fs.frames) == 0 {
		return 0, false
	}

	now := time.Now()
	var min time.Duration
	first := true
	for _, f := range fs.frames {
		d := f.due.Sub(now)
		if d < 0 {
			d = 0
		}
		if first || d < min {
			min = d
			first = false
		}
	}
	return min, true
}

// PatchAnimationFrames installs requestAnimationFrame and
// cancelAnimationFrame on the environment. Each call installs a fresh
// scheduler with its own handle table and counter; frames pending on an
// earlier installation still fire through the environment's pump.
func PatchAnimationFrames(env *Env) {
	vm := env.vm
	fs := newFrameScheduler(env)
	env.registerScheduler(fs)

	vm.Set("requestAnimationFrame", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		callback, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return goja.Undefined()
		}
		return vm.ToValue(fs.schedule(callback))
	})

	vm.Set("cancelAnimationFrame", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		fs.cancel(int(call.Arguments[0].ToInteger()))
		return goja.Undefined()
	})
}
