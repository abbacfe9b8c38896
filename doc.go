// Package conduit delivers abnormal conditions across cooperative
// reentrancy boundaries.
//
// In a single-threaded program built around an event pump, a routine may
// hand control to the dispatcher mid-operation. The dispatcher runs
// arbitrary other work - including recursive calls back into routines
// still on the stack - before returning. Structured error propagation
// does not cross that boundary: a condition raised by code running
// during the pump is, from the stack's point of view, unrelated to any
// handler established before the pump call. Conduit closes the gap by
// persisting only the decision data (which condition kinds are pending,
// per region) across the boundary, and letting each region deliver its
// own conditions when control returns to it.
//
// # Architecture
//
//	                ┌─────────────────────────────────────┐
//	                │              Manager                │
//	                │  - Register / Unregister / Raise    │
//	                │  - Region boundaries (suspensions)  │
//	                │  - DrainPending (delivery)          │
//	                └─────────────────────────────────────┘
//	                                  │
//	              ┌───────────────────┼───────────────────┐
//	              ▼                   ▼                   ▼
//	    ┌─────────────────┐ ┌─────────────────┐ ┌─────────────────┐
//	    │  region.List    │ │  region.Stack   │ │  cond.Catalog   │
//	    │  current region │ │  one frame per  │ │  kind identity  │
//	    │  registrations  │ │  suspension     │ │  + descriptions │
//	    └─────────────────┘ └─────────────────┘ └─────────────────┘
//
// # Regions
//
// A region is the span of execution between two consecutive suspension
// boundaries. Exactly one region is current; its registrations are
// directly mutable. Suspending saves the current list on a LIFO stack
// and installs a fresh one; resuming restores it. The stack mirrors the
// call-stack nesting of the suspension calls exactly.
//
// # Delivery model
//
// Raise marks every matching registration pending, in every region.
// Nothing is delivered at raise time. When a suspension call returns,
// the resuming region asks DrainPending for its highest-priority pending
// condition - the pending entry registered most recently, so the most
// specific active interest wins - and performs its own non-local
// transfer (an error return, a panic, whatever the host uses). The
// handler removes its whole catch set, runs recovery, and drains again
// so conditions belonging to enclosing scopes surface before control
// returns upward.
//
// # Basic usage
//
//	kinds := cond.NewCatalog()
//	kindInvalidated := kinds.Define("buffer invalidated")
//
//	mgr := conduit.New(kinds)
//
//	scope := mgr.NewScope()
//	defer scope.Close()
//	scope.Register(kindInvalidated)
//
//	// Hand control to the event pump.
//	if err := mgr.Suspend(pumpEvents); err != nil {
//	    return err // misnested boundary: a bug, not a condition
//	}
//
//	// Anything raised while control was away is delivered now.
//	if k, ok := mgr.DrainPending(); ok {
//	    scope.Close()
//	    return handle(k)
//	}
//
// Deeply nested code reports a condition with a single call, with no
// knowledge of who (if anyone) is listening:
//
//	mgr.Raise(kindInvalidated)
//
// # Thread safety
//
// A Manager serves one logical thread of control and is not safe for
// concurrent use. "Concurrency" here means reentrancy through
// suspension, never parallelism. Metrics is the one exception: hosts may
// read it from other goroutines.
package conduit
