// Package cond defines condition kinds: opaque identifiers for classes of
// abnormal situations that handler scopes register interest in.
//
// Kinds carry no payload. A Catalog allocates them and keeps a
// human-readable description for each, used only for logging and
// diagnostics.
package cond

// Kind identifies a class of abnormal condition. Kinds are allocated by a
// Catalog; the zero Kind is never allocated and means "no condition".
type Kind int

// None is the zero Kind. A Catalog never allocates it.
const None Kind = 0

// Valid reports whether k could have been allocated by a catalog.
func (k Kind) Valid() bool {
	return k > None
}

// Catalog allocates kinds and records a description for each.
// Allocation starts at 1 so the zero Kind stays distinguishable from any
// real condition.
type Catalog struct {
	descriptions []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	// Slot 0 belongs to None.
	return &Catalog{descriptions: []string{""}}
}

// Define allocates the next kind and associates desc with it.
func (c *Catalog) Define(desc string) Kind {
	c.descriptions = append(c.descriptions, desc)
	return Kind(len(c.descriptions) - 1)
}

// Description returns the description recorded for k. It returns the
// empty string for None and for kinds this catalog did not allocate.
func (c *Catalog) Description(k Kind) string {
	if k <= None || int(k) >= len(c.descriptions) {
		return ""
	}
	return c.descriptions[k]
}

// Len returns the number of kinds allocated so far.
func (c *Catalog) Len() int {
	return len(c.descriptions) - 1
}
