// Package logging builds the zap logger lcat uses for its own diagnostics.
//
// Diagnostics go to stderr so they never mix with rendered records on
// stdout. Entries use a compact console layout: HH:MM:SS, a single level
// letter (D, I, W, E) and the message followed by fields, e.g.
//
//	10:22:01	W	package not running, showing all processes	{"package": "com.example"}
package logging
