// Package region holds the per-region bookkeeping behind the conduit
// manager: the ordered registration list of the currently executing
// region, and the LIFO stack of lists saved across suspension calls.
//
// A region is the span of execution between two consecutive suspension
// boundaries. Exactly one region is current at any instant; its List is
// directly mutable. Every other region is suspended, its List frozen on
// the Stack until the matching boundary is crossed on the way back.
package region
