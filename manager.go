package conduit

import (
	"fmt"
	"log/slog"

	"github.com/dshills/conduit/cond"
	"github.com/dshills/conduit/region"
)

// Manager tracks condition registrations across suspension regions and
// delivers pending conditions when their own region resumes.
//
// A Manager serves exactly one logical thread of control. It is not safe
// for concurrent use: the model is single-threaded cooperative
// reentrancy, not parallelism. Create one Manager per cooperative
// execution context and pass it explicitly to collaborators.
type Manager struct {
	current *region.List
	stack   region.Stack

	catalog *cond.Catalog
	logger  *slog.Logger
	verbose bool
	metrics *Metrics
}

// New creates a manager that resolves kind descriptions through catalog.
func New(catalog *cond.Catalog, opts ...Option) *Manager {
	m := &Manager{
		current: region.NewList(),
		catalog: catalog,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register appends a registration for k to the current region. From this
// moment until the entry is removed, any Raise(k) marks it pending.
func (m *Manager) Register(k cond.Kind) {
	m.current.Append(k)
}

// Unregister removes the most recently registered occurrence of k from
// the current region, preserving the order of the remaining entries. It
// reports whether an entry was removed; removing an absent kind is a
// no-op, which tolerates the same kind being registered and released
// independently at two nesting levels.
func (m *Manager) Unregister(k cond.Kind) bool {
	return m.current.RemoveLast(k)
}

// Raise marks every registration for k pending, in the current region
// and in every suspended region. Raising a kind with no registration
// anywhere is a silent no-op: deeply nested code reports conditions
// without knowing whether any enclosing scope cares.
//
// Raise never delivers. Each region observes its own flagged entries
// through DrainPending when it is the current region again.
func (m *Manager) Raise(k cond.Kind) {
	flagged := m.current.FlagAll(k)
	m.stack.Each(func(l *region.List) {
		flagged += l.FlagAll(k)
	})

	if flagged == 0 {
		if m.metrics != nil {
			m.metrics.RecordDrop(k)
		}
		return
	}

	if m.metrics != nil {
		m.metrics.RecordRaise(k, flagged)
	}
	if m.verbose {
		m.logger.Debug("condition raised",
			"kind", int(k),
			"desc", m.Describe(k),
			"entries", flagged,
		)
	}
}

// EnterSuspension establishes a region boundary. It must be called
// immediately before handing control to the external dispatcher, with no
// other manager call in between. The current registration list is saved
// as a new frame and replaced with a fresh empty one; the returned token
// identifies the frame for the matching LeaveSuspension.
func (m *Manager) EnterSuspension() region.Token {
	tok := m.stack.Push(m.current)
	m.current = region.NewList()
	return tok
}

// LeaveSuspension closes the region boundary opened by the
// EnterSuspension that returned tok. It must be called immediately after
// the dispatcher returns, with no other manager call in between. The
// saved frame becomes the current registration list again.
//
// The token must identify the topmost frame; anything else means the
// suspension calls are misnested and returns ErrBoundaryMismatch (or
// ErrNoFrame when nothing is suspended) without touching the stack.
//
// LeaveSuspension never delivers. Callers follow it with DrainPending.
func (m *Manager) LeaveSuspension(tok region.Token) error {
	if m.stack.Depth() == 0 {
		return fmt.Errorf("%w: token %d", ErrNoFrame, tok)
	}
	if top := m.stack.Top(); top != tok {
		return fmt.Errorf("%w: token %d, stack top %d", ErrBoundaryMismatch, tok, top)
	}

	// Entries left in the dying list were registered during the
	// suspension and never released: a collaborator bug worth noting.
	if n := m.current.Len(); n != 0 {
		m.logger.Warn("registrations leaked across suspension boundary",
			"token", int(tok),
			"count", n,
		)
	}

	m.current = m.stack.Pop()
	return nil
}

// DrainPending reports the highest-priority pending condition in the
// current region: the pending entry registered most recently. It returns
// (cond.None, false) when nothing is pending here; conditions pending
// only in suspended regions are left untouched until those regions
// resume.
//
// The reported entry stays registered and pending. The caller performs
// the non-local transfer to its handler, which removes its whole catch
// set and calls DrainPending again before returning control upward.
func (m *Manager) DrainPending() (cond.Kind, bool) {
	k, ok := m.current.LatestPending()
	if !ok {
		return cond.None, false
	}

	if m.metrics != nil {
		m.metrics.RecordDelivery(k)
	}
	if m.verbose {
		m.logger.Debug("condition delivered",
			"kind", int(k),
			"desc", m.Describe(k),
		)
	}
	return k, true
}

// IsPending reports whether k is flagged pending in any suspended
// region. The current region is not consulted; use DrainPending for
// that. Hosts use this to decide whether resumed work is still worth
// finishing.
func (m *Manager) IsPending(k cond.Kind) bool {
	pending := false
	m.stack.Each(func(l *region.List) {
		if l.PendingFor(k) {
			pending = true
		}
	})
	return pending
}

// Describe returns the catalog description for k.
func (m *Manager) Describe(k cond.Kind) string {
	if m.catalog == nil {
		return ""
	}
	return m.catalog.Description(k)
}

// Matches reports whether delivered is the kind want. A match is logged
// when the manager is verbose, naming where the condition was caught.
func (m *Manager) Matches(delivered, want cond.Kind, context string) bool {
	if delivered != want {
		return false
	}
	if m.verbose {
		m.logger.Debug("condition caught",
			"desc", m.Describe(want),
			"in", context,
		)
	}
	return true
}

// SuspensionDepth returns the number of currently suspended regions.
func (m *Manager) SuspensionDepth() int {
	return m.stack.Depth()
}

// RegisteredCount returns the number of live registrations in the
// current region.
func (m *Manager) RegisteredCount() int {
	return m.current.Len()
}
