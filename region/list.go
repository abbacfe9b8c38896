package region

import "github.com/dshills/conduit/cond"

// Entry is one live registration: a condition kind some scope asked to
// observe, and whether that condition has occurred since.
type Entry struct {
	Kind    cond.Kind
	Pending bool
}

// List is the ordered registration list of a single region.
//
// Entries keep insertion order, and position doubles as priority: a later
// entry outranks an earlier one. Removal never reorders survivors.
type List struct {
	entries []Entry
}

// NewList creates an empty registration list.
func NewList() *List {
	return &List{}
}

// Append adds a non-pending registration for k.
func (l *List) Append(k cond.Kind) {
	l.entries = append(l.entries, Entry{Kind: k})
}

// RemoveLast removes the most recently appended entry for k, preserving
// the order of the remaining entries. It returns false when no entry
// matches.
func (l *List) RemoveLast(k cond.Kind) bool {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Kind == k {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// FlagAll marks every entry for k pending and returns the number of
// entries flagged.
func (l *List) FlagAll(k cond.Kind) int {
	flagged := 0
	for i := range l.entries {
		if l.entries[i].Kind == k {
			l.entries[i].Pending = true
			flagged++
		}
	}
	return flagged
}

// PendingFor reports whether an entry for k is flagged pending.
func (l *List) PendingFor(k cond.Kind) bool {
	for i := range l.entries {
		if l.entries[i].Kind == k && l.entries[i].Pending {
			return true
		}
	}
	return false
}

// LatestPending returns the kind of the most recently appended pending
// entry. It returns (cond.None, false) when nothing is pending.
func (l *List) LatestPending() (cond.Kind, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Pending {
			return l.entries[i].Kind, true
		}
	}
	return cond.None, false
}

// Len returns the number of live entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *List) Entries() []Entry {
	if len(l.entries) == 0 {
		return nil
	}
	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}
