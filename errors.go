package conduit

import "errors"

// Manager errors. These indicate collaborator contract violations and are
// distinct from any condition kind: a programming bug must never
// masquerade as a delivered condition.
var (
	// ErrBoundaryMismatch indicates LeaveSuspension was called with a
	// token that is not the top of the region stack. The suspension
	// calls are misnested, or a manager call slipped between the save
	// and the suspension itself.
	ErrBoundaryMismatch = errors.New("conduit: suspension boundary mismatch")

	// ErrNoFrame indicates LeaveSuspension was called with no suspended
	// region on the stack.
	ErrNoFrame = errors.New("conduit: no suspended region")

	// ErrUnbalancedScope indicates a registration owned by a closing
	// scope had already been removed by someone else.
	ErrUnbalancedScope = errors.New("conduit: scope registrations unbalanced")
)
