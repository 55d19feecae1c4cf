// Package offline supervises registration of the background asset-cache
// worker. Registration is a one-shot, fire-and-forget startup action: on
// hosts without the capability it does nothing, and every failure is a
// logged degraded-mode condition, never an error for the caller.
package offline

import (
	"log"
	"sync"
)

// State of the bootstrap lifecycle:
// unregistered -> registering -> installed -> (activated | update-available).
type State int

const (
	StateUnregistered State = iota
	StateRegistering
	StateInstalled
	StateActivated
	StateUpdateAvailable
)

func (s State) String() string {
	switch s {
	case StateUnregistered:
		return "unregistered"
	case StateRegistering:
		return "registering"
	case StateInstalled:
		return "installed"
	case StateActivated:
		return "activated"
	case StateUpdateAvailable:
		return "update-available"
	default:
		return "unknown"
	}
}

// WorkerState is the lifecycle of an individual worker version as
// reported by the host.
type WorkerState int

const (
	WorkerInstalling WorkerState = iota
	WorkerInstalled
	WorkerActivated
)

// Worker is one version of the cache worker.
type Worker interface {
	// OnStateChange registers a callback invoked on every worker state
	// transition.
	OnStateChange(fn func(WorkerState))
}

// Registration is the handle returned by a successful registration.
type Registration interface {
	// HasController reports whether a previously installed worker is
	// already controlling the application.
	HasController() bool
	// OnUpdateFound registers a callback invoked when a new worker
	// version begins installing.
	OnUpdateFound(fn func(Worker))
}

// Registrar is the host capability for registering a cache worker. Hosts
// without the capability pass nil to Register.
type Registrar interface {
	Register(scriptPath string) (Registration, error)
}

// Events are the two application-visible signals of the bootstrap.
type Events struct {
	// Ready fires on first install with no prior controller: assets are
	// cached and the app can work offline.
	Ready func()
	// UpdateAvailable fires when a new worker version finished installing
	// while an old one is still controlling the page.
	UpdateAvailable func()
}

type Bootstrap struct {
	mu     sync.Mutex
	state  State
	events Events
}

// Register wires up the cache worker and returns the bootstrap handle.
// A nil registrar means the host lacks the capability: no-op, not an
// error. Registration failure is logged and the app continues
// online-only.
func Register(r Registrar, scriptPath string, events Events) *Bootstrap {
	b := &Bootstrap{events: events}
	if r == nil {
		return b
	}

	b.setState(StateRegistering)
	reg, err := r.Register(scriptPath)
	if err != nil {
		log.Printf("offline: worker registration failed, continuing online-only: %v", err)
		b.setState(StateUnregistered)
		return b
	}

	reg.OnUpdateFound(func(w Worker) {
		// Whether an old worker controls the app decides how an install
		// is interpreted, so capture it before the new one settles.
		hadController := reg.HasController()
		w.OnStateChange(func(st WorkerState) {
			b.onWorkerState(st, hadController)
		})
	})

	return b
}

func (b *Bootstrap) onWorkerState(st WorkerState, hadController bool) {
	switch st {
	case WorkerInstalled:
		if hadController {
			b.setState(StateUpdateAvailable)
			log.Println("offline: new version available, will apply on next restart")
			if b.events.UpdateAvailable != nil {
				b.events.UpdateAvailable()
			}
		} else {
			b.setState(StateInstalled)
			log.Println("offline: content cached, ready for offline use")
			if b.events.Ready != nil {
				b.events.Ready()
			}
		}
	case WorkerActivated:
		b.mu.Lock()
		// An update waiting for an explicit apply keeps that state; only
		// a fresh install advances to activated.
		if b.state == StateInstalled {
			b.state = StateActivated
		}
		b.mu.Unlock()
	}
}

func (b *Bootstrap) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// State returns the current lifecycle state.
func (b *Bootstrap) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
