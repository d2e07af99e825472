// Package state keeps running counters for the read loop.
//
// The loop calls Store.Record once per line with the line's Outcome. A
// Snapshot is a value copy, so it can be logged or inspected after (or
// while) the loop runs. Counters are informational only; nothing in the
// pipeline branches on them.
//
// Outcomes:
//
//   - OutcomeRendered: a record was written
//   - OutcomePassed: a non-record line was written through unchanged
//   - OutcomeUnmatched: a non-record line was dropped
//   - OutcomeFiltered: a record was skipped by the pid or level filter
//
// Snapshot.Dropped counts every line that produced no output.
package state
