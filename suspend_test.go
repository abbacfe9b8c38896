package conduit

import (
	"errors"
	"testing"
)

func TestSuspend_Brackets(t *testing.T) {
	m, k1, _ := newTestManager(t)

	m.Register(k1)

	err := m.Suspend(func() {
		if m.RegisteredCount() != 0 {
			t.Error("expected a fresh region inside the suspension")
		}
		if m.SuspensionDepth() != 1 {
			t.Errorf("expected depth 1 inside the suspension, got %d", m.SuspensionDepth())
		}
		m.Raise(k1)
	})
	if err != nil {
		t.Fatalf("unexpected suspend error: %v", err)
	}

	if m.SuspensionDepth() != 0 {
		t.Errorf("expected depth 0 after suspend, got %d", m.SuspensionDepth())
	}
	if k, ok := m.DrainPending(); !ok || k != k1 {
		t.Errorf("expected (k1, true) after suspend, got (%d, %v)", k, ok)
	}
}

// The frame is popped even when the pump panics, so the region stack
// stays aligned with the call stack during unwinds.
func TestSuspend_PanicSafe(t *testing.T) {
	m, k1, _ := newTestManager(t)

	m.Register(k1)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the pump panic to propagate")
			}
		}()
		m.Suspend(func() {
			m.Raise(k1)
			panic("pump failed")
		})
	}()

	if m.SuspensionDepth() != 0 {
		t.Fatalf("expected the frame popped during the unwind, got depth %d", m.SuspensionDepth())
	}
	if k, ok := m.DrainPending(); !ok || k != k1 {
		t.Errorf("expected the raise to survive the panic, got (%d, %v)", k, ok)
	}
}

// A pump that breaks the nesting contract surfaces as a boundary error,
// never as a delivered condition.
func TestSuspend_CorruptedBoundary(t *testing.T) {
	m, _, _ := newTestManager(t)

	err := m.Suspend(func() {
		// A misbehaving collaborator enters without leaving.
		m.EnterSuspension()
	})
	if !errors.Is(err, ErrBoundaryMismatch) {
		t.Fatalf("expected ErrBoundaryMismatch, got %v", err)
	}
}

func TestSuspend_Nested(t *testing.T) {
	m, k1, _ := newTestManager(t)

	m.Register(k1)

	err := m.Suspend(func() {
		m.Suspend(func() {
			m.Raise(k1)
		})
		if _, ok := m.DrainPending(); ok {
			t.Error("expected nothing deliverable in the middle region")
		}
	})
	if err != nil {
		t.Fatalf("unexpected suspend error: %v", err)
	}

	if k, ok := m.DrainPending(); !ok || k != k1 {
		t.Errorf("expected (k1, true) in the outermost region, got (%d, %v)", k, ok)
	}
}
