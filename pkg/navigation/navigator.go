// Package navigation loads pages through a browser with bounded, linearly
// backed-off retries.
package navigation

import "time"

// ReadyState is the condition a navigation waits for before it is
// considered complete.
type ReadyState int

const (
	// ReadyLoad waits for the window load event (all sub-resources loaded).
	ReadyLoad ReadyState = iota
	// ReadyDOMContentLoaded waits only until the document has been parsed.
	ReadyDOMContentLoaded
)

// String returns a string representation of the ReadyState.
func (r ReadyState) String() string {
	switch r {
	case ReadyLoad:
		return "load"
	case ReadyDOMContentLoaded:
		return "domcontentloaded"
	default:
		return "unknown"
	}
}

// Navigator is the page-navigation capability consumed by GotoWithRetry.
//
// Goto must report failures through its error return. A Navigator is owned
// by a single test flow and is not expected to be safe for concurrent use.
type Navigator interface {
	// SetDefaultNavigationTimeout bounds every subsequent Goto call.
	SetDefaultNavigationTimeout(d time.Duration)
	// Goto navigates to url and blocks until the ready state is reached.
	Goto(url string, until ReadyState) error
	// WaitForTimeout suspends the caller for d.
	WaitForTimeout(d time.Duration)
}
