package conduit_test

import (
	"fmt"

	"github.com/dshills/conduit"
	"github.com/dshills/conduit/cond"
)

// Example_deferredDelivery shows a condition raised by reentrant work
// during an event-pump call being delivered after the pump returns.
func Example_deferredDelivery() {
	kinds := cond.NewCatalog()
	kindDiscarded := kinds.Define("buffer discarded")

	mgr := conduit.New(kinds)

	scope := mgr.NewScope()
	defer scope.Close()
	scope.Register(kindDiscarded)

	// The pump stands in for the external dispatcher. Work running
	// inside it knows nothing about our scope; it just raises.
	pump := func() {
		mgr.Raise(kindDiscarded)
	}

	if err := mgr.Suspend(pump); err != nil {
		fmt.Println("boundary error:", err)
		return
	}

	if k, ok := mgr.DrainPending(); ok {
		scope.Close()
		fmt.Println("delivered:", mgr.Describe(k))
	}

	// Output: delivered: buffer discarded
}

// Example_priority shows the most recently registered pending kind
// winning delivery: the most specific active interest fires first.
func Example_priority() {
	kinds := cond.NewCatalog()
	kindGeneric := kinds.Define("operation failed")
	kindSpecific := kinds.Define("index write failed")

	mgr := conduit.New(kinds)

	scope := mgr.NewScope()
	defer scope.Close()
	scope.Register(kindGeneric)
	scope.Register(kindSpecific) // most specific last

	mgr.Raise(kindGeneric)
	mgr.Raise(kindSpecific)

	k, _ := mgr.DrainPending()
	fmt.Println("first:", mgr.Describe(k))

	scope.Close()
	if _, ok := mgr.DrainPending(); !ok {
		fmt.Println("nothing further")
	}

	// Output:
	// first: index write failed
	// nothing further
}

// Example_unregisteredRaise shows that raising a kind nobody registered
// is a silent no-op.
func Example_unregisteredRaise() {
	kinds := cond.NewCatalog()
	kindUnwatched := kinds.Define("nobody cares")

	mgr := conduit.New(kinds)
	mgr.Raise(kindUnwatched)

	if _, ok := mgr.DrainPending(); !ok {
		fmt.Println("dropped")
	}

	// Output: dropped
}
