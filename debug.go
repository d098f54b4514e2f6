package burst

import (
	"fmt"
	"log"
)

// globalDebug enables verbose playback logging. Like the rest of the package it
// is not synchronized: set it before driving any controller.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, playback state
// transitions (play, stop, finish, reset) are logged in addition to the
// advisory diagnostics that are always printed.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// warnf prints an advisory diagnostic. Diagnostics never change state.
func warnf(format string, args ...any) {
	log.Printf("burst: "+format, args...)
}

// debugf prints only in debug mode.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	log.Print("[burst] " + fmt.Sprintf(format, args...))
}
