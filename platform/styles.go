// Package platform resolves the host platform once and maps it to the
// layout rules the UI expects. Styles is a pure function: no state, no
// side effects.
package platform

import "os"

type Platform string

const (
	Web    Platform = "web"
	Native Platform = "native"
)

// Current resolves the host platform from the environment. It is meant
// to be called once at startup and the result passed down to layout
// code.
func Current() Platform {
	if os.Getenv("OMEX_PLATFORM") == "web" {
		return Web
	}
	return Native
}

// Style is one slot's layout rule set.
type Style map[string]interface{}

// StyleSheet maps the named style slots to their rules.
type StyleSheet map[string]Style

// Styles returns the layout rules for the given platform. Web needs
// explicit viewport-bound heights and its own scroll containers; native
// scroll views manage that themselves.
func Styles(p Platform) StyleSheet {
	if p == Web {
		return StyleSheet{
			"scrollView": {
				"height":                  "100vh",
				"overflowY":               "auto",
				"webkitOverflowScrolling": "touch",
			},
			"container": {
				"flex":      1,
				"height":    "100vh",
				"overflowY": "auto",
			},
			"content": {
				"flexGrow":      1,
				"paddingBottom": 120,
			},
			"flatList": {
				"height":    "100vh",
				"overflowY": "auto",
			},
			"safeArea": {
				"flex":      1,
				"height":    "100vh",
				"overflowY": "auto",
			},
		}
	}

	return StyleSheet{
		"scrollView": {
			"flex": 1,
		},
		"container": {
			"flex": 1,
		},
		"content": {
			"flexGrow":      1,
			"paddingBottom": 80,
		},
		"flatList": {
			"flex": 1,
		},
		"safeArea": {
			"flex": 1,
		},
	}
}
