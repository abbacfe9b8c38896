package conduit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/conduit/cond"
)

// Scope tracks the catch set of one handler scope and guarantees the
// whole set is unregistered when the scope closes, on every exit path.
// It removes the chief source of leaked-registration bugs: a forgotten
// Unregister on an abnormal exit.
//
// Usage follows the handler-scope contract:
//
//	scope := mgr.NewScope()
//	defer scope.Close()
//
//	scope.Register(kindGeneric)
//	scope.Register(kindSpecific) // most specific last: highest priority
//
//	// ... guarded body, possibly suspending into the dispatcher ...
//
// After a delivery, close the scope before running recovery, then call
// DrainPending again so conditions belonging to enclosing scopes surface
// before control returns upward.
type Scope struct {
	id     string
	m      *Manager
	kinds  []cond.Kind
	closed bool
}

// NewScope creates an empty handler scope bound to the manager.
func (m *Manager) NewScope() *Scope {
	return &Scope{
		id: uuid.NewString(),
		m:  m,
	}
}

// ID returns the scope's unique identifier, used in diagnostics.
func (s *Scope) ID() string {
	return s.id
}

// Register registers k with the manager and adds it to the catch set.
// Registering after Close is a contract violation and panics.
func (s *Scope) Register(k cond.Kind) {
	if s.closed {
		panic("conduit: Register on closed scope " + s.id)
	}
	s.m.Register(k)
	s.kinds = append(s.kinds, k)
}

// Contains reports whether k is part of the catch set.
func (s *Scope) Contains(k cond.Kind) bool {
	for _, have := range s.kinds {
		if have == k {
			return true
		}
	}
	return false
}

// Kinds returns the catch set in registration order.
func (s *Scope) Kinds() []cond.Kind {
	if len(s.kinds) == 0 {
		return nil
	}
	result := make([]cond.Kind, len(s.kinds))
	copy(result, s.kinds)
	return result
}

// Close unregisters the catch set, most recent first. It is idempotent;
// only the first call does anything.
//
// Close returns ErrUnbalancedScope when an occurrence this scope
// registered was already gone, which means some collaborator removed a
// registration it did not own. The remaining occurrences are still
// released before returning.
func (s *Scope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	missing := 0
	for i := len(s.kinds) - 1; i >= 0; i-- {
		if !s.m.Unregister(s.kinds[i]) {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%w: scope %s: %d of %d registrations already removed",
			ErrUnbalancedScope, s.id, missing, len(s.kinds))
	}
	return nil
}
