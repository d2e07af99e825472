package state

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of the pipeline counters.
type Snapshot struct {
	Read      int // lines read from the source
	Rendered  int // records written
	Passed    int // unmatched lines written through
	Unmatched int // lines that were not records, written or not
	Filtered  int // records skipped by the pid or level filter
	Started   time.Time
	LastLine  time.Time
}

// Dropped returns how many lines produced no output.
func (s Snapshot) Dropped() int {
	return s.Read - s.Rendered - s.Passed
}

// Store accumulates counters. It is safe to read a Snapshot from another
// goroutine while the read loop updates it.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Outcome classifies one processed line.
type Outcome int

const (
	OutcomeRendered Outcome = iota
	OutcomePassed
	OutcomeUnmatched
	OutcomeFiltered
)

// Start records the time the loop began.
func (s *Store) Start(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Started = now
}

// Record counts one line read at now and what became of it.
func (s *Store) Record(outcome Outcome, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Read++
	s.snapshot.LastLine = now
	switch outcome {
	case OutcomeRendered:
		s.snapshot.Rendered++
	case OutcomePassed:
		s.snapshot.Passed++
		s.snapshot.Unmatched++
	case OutcomeUnmatched:
		s.snapshot.Unmatched++
	case OutcomeFiltered:
		s.snapshot.Filtered++
	}
}

// Snapshot returns a copy of the current counters.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
