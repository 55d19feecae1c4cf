package offline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorker struct {
	fn func(WorkerState)
}

func (w *fakeWorker) OnStateChange(fn func(WorkerState)) { w.fn = fn }

func (w *fakeWorker) transition(st WorkerState) {
	if w.fn != nil {
		w.fn(st)
	}
}

type fakeRegistration struct {
	controller bool
	updateFn   func(Worker)
}

func (r *fakeRegistration) HasController() bool          { return r.controller }
func (r *fakeRegistration) OnUpdateFound(fn func(Worker)) { r.updateFn = fn }

func (r *fakeRegistration) updateFound(w Worker) {
	if r.updateFn != nil {
		r.updateFn(w)
	}
}

type fakeRegistrar struct {
	reg *fakeRegistration
	err error

	registered bool
	script     string
}

func (f *fakeRegistrar) Register(scriptPath string) (Registration, error) {
	f.registered = true
	f.script = scriptPath
	if f.err != nil {
		return nil, f.err
	}
	return f.reg, nil
}

func TestRegisterWithoutCapabilityIsNoOp(t *testing.T) {
	b := Register(nil, "/service-worker.js", Events{
		Ready:           func() { t.Fatal("ready must not fire") },
		UpdateAvailable: func() { t.Fatal("update must not fire") },
	})
	assert.Equal(t, StateUnregistered, b.State())
}

func TestRegistrationFailureIsNonFatal(t *testing.T) {
	r := &fakeRegistrar{err: errors.New("registration denied")}
	b := Register(r, "/service-worker.js", Events{})
	assert.True(t, r.registered)
	assert.Equal(t, StateUnregistered, b.State())
}

func TestFirstInstallSignalsReady(t *testing.T) {
	reg := &fakeRegistration{controller: false}
	r := &fakeRegistrar{reg: reg}

	ready := false
	b := Register(r, "/service-worker.js", Events{
		Ready:           func() { ready = true },
		UpdateAvailable: func() { t.Fatal("update must not fire on first install") },
	})
	assert.Equal(t, "/service-worker.js", r.script)
	assert.Equal(t, StateRegistering, b.State())

	w := &fakeWorker{}
	reg.updateFound(w)
	w.transition(WorkerInstalling)
	assert.Equal(t, StateRegistering, b.State())

	w.transition(WorkerInstalled)
	require.True(t, ready)
	assert.Equal(t, StateInstalled, b.State())

	w.transition(WorkerActivated)
	assert.Equal(t, StateActivated, b.State())
}

func TestNewVersionBehindControllerSignalsUpdate(t *testing.T) {
	reg := &fakeRegistration{controller: true}
	r := &fakeRegistrar{reg: reg}

	updates := 0
	b := Register(r, "/service-worker.js", Events{
		Ready:           func() { t.Fatal("ready must not fire behind a controller") },
		UpdateAvailable: func() { updates++ },
	})

	w := &fakeWorker{}
	reg.updateFound(w)
	w.transition(WorkerInstalled)

	assert.Equal(t, 1, updates)
	assert.Equal(t, StateUpdateAvailable, b.State())

	// Applying the update is an explicit user action; activation of the
	// waiting worker does not clear the flag by itself.
	w.transition(WorkerActivated)
	assert.Equal(t, StateUpdateAvailable, b.State())
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "unregistered", StateUnregistered.String())
	assert.Equal(t, "registering", StateRegistering.String())
	assert.Equal(t, "installed", StateInstalled.String())
	assert.Equal(t, "activated", StateActivated.String())
	assert.Equal(t, "update-available", StateUpdateAvailable.String())
}
