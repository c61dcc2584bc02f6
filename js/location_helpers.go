// This file implements the location helpers: validation, presence check,
// navigation and snapshotting over the environment's location object.
// None of them patch the location; they read it or delegate to it.
package js

// LocationInfo is a point-in-time snapshot of a window's location. Every
// field is copied at call time; later navigation does not change it.
type LocationInfo struct {
	Href     string
	Origin   string
	Protocol string
	Host     string
	Hostname string
	Port     string
	Pathname string
	Search   string
	Hash     string
}

// ValidateLocation warns when the environment's location was left at the
// about:blank placeholder. Advisory only: nothing is mutated, nothing is
// returned, and a configured location produces no output.
func ValidateLocation(env *Env) {
	if env.Location().Href() == aboutBlank {
		env.warnf("window.location.href is %q; construct the environment with an explicit URL (NewEnv(WithURL(...))) so code that reads the location behaves realistically", aboutBlank)
	}
}

// HasValidLocation reports whether the environment has a real document URL
// rather than the about:blank placeholder.
func HasValidLocation(env *Env) bool {
	return env.Location().Href() != aboutBlank
}

// NavigateTo sets the location's href. URL parsing, relative resolution and
// rejection of unparseable input are the location layer's business; this
// helper adds no validation of its own.
func NavigateTo(env *Env, url string) {
	env.Location().Navigate(url)
}

// GetLocationInfo returns a snapshot of the current location.
func GetLocationInfo(env *Env) LocationInfo {
	loc := env.Location()
	return LocationInfo{
		Href:     loc.Href(),
		Origin:   loc.Origin(),
		Protocol: loc.Protocol(),
		Host:     loc.Host(),
		Hostname: loc.Hostname(),
		Port:     loc.Port(),
		Pathname: loc.Pathname(),
		Search:   loc.Search(),
		Hash:     loc.Hash(),
	}
}
