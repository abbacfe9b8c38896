package conduit

import (
	"sync"
	"time"

	"github.com/dshills/conduit/cond"
)

// Metrics collects condition statistics for a manager.
//
// The manager itself is single-threaded, but hosts commonly read metrics
// from a separate goroutine (a status line, a debug overlay), so Metrics
// locks independently.
type Metrics struct {
	mu sync.RWMutex

	// Per-kind metrics
	kindMetrics map[cond.Kind]*KindMetrics

	// Global counters
	totalRaises     uint64
	totalDrops      uint64
	totalDeliveries uint64
}

// KindMetrics holds statistics for a single condition kind.
type KindMetrics struct {
	Kind           cond.Kind
	RaiseCount     uint64
	DropCount      uint64
	DeliveryCount  uint64
	EntriesFlagged uint64
	LastRaise      time.Time
	LastDelivery   time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		kindMetrics: make(map[cond.Kind]*KindMetrics),
	}
}

func (m *Metrics) forKind(k cond.Kind) *KindMetrics {
	km := m.kindMetrics[k]
	if km == nil {
		km = &KindMetrics{Kind: k}
		m.kindMetrics[k] = km
	}
	return km
}

// RecordRaise records a raise that flagged entries in one or more
// regions.
func (m *Metrics) RecordRaise(k cond.Kind, flagged int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRaises++

	km := m.forKind(k)
	km.RaiseCount++
	km.EntriesFlagged += uint64(flagged)
	km.LastRaise = time.Now()
}

// RecordDrop records a raise that found no registration anywhere.
func (m *Metrics) RecordDrop(k cond.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDrops++
	m.forKind(k).DropCount++
}

// RecordDelivery records a pending condition reported by DrainPending.
func (m *Metrics) RecordDelivery(k cond.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDeliveries++

	km := m.forKind(k)
	km.DeliveryCount++
	km.LastDelivery = time.Now()
}

// TotalRaises returns the number of raises that flagged at least one
// entry.
func (m *Metrics) TotalRaises() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.totalRaises
}

// TotalDrops returns the number of raises that found no registration.
func (m *Metrics) TotalDrops() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.totalDrops
}

// TotalDeliveries returns the number of conditions reported for
// delivery.
func (m *Metrics) TotalDeliveries() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.totalDeliveries
}

// ForKind returns a copy of the statistics for k.
func (m *Metrics) ForKind(k cond.Kind) (KindMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	km := m.kindMetrics[k]
	if km == nil {
		return KindMetrics{}, false
	}
	return *km, true
}

// Reset clears all statistics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.kindMetrics = make(map[cond.Kind]*KindMetrics)
	m.totalRaises = 0
	m.totalDrops = 0
	m.totalDeliveries = 0
}
