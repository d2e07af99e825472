// Package app provides the orchestration layer for lcat.
//
// # Overview
//
// Run is the composition root: it loads configuration, builds the zap
// logger, measures the terminal, resolves the optional package filter,
// chooses the input and then hands everything to a pipeline.Pipeline.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/lcat/config.toml
//	       ├─────> logging.New()        Diagnostics on stderr
//	       ├─────> Terminal.Size()      Width, or fallback_width
//	       ├─────> Resolver.ResolvePID() Package name to pid filter
//	       ├─────> openInput()          Piped stdin or `adb logcat`
//	       └─────> pipeline.Run()       Blocks until EOF or interrupt
//
// # Input Selection
//
// When stdin is a terminal nothing is piped in, so Run starts the log
// producer through LogSource using the configured logcat_args. Otherwise the
// piped stream is read as-is.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file
//   - Failure to start the log producer
//   - Read or write failures on the streams
//
// Recoverable conditions (logged, processing continues):
//   - Package not running: the pid filter is disabled
//   - Terminal size unavailable: fallback_width is used
//   - Unknown theme name: Classic is used
//
// # Interrupts
//
// Cancelling ctx closes the input so a blocked read returns. The pipeline
// notices the cancellation at the next line boundary and Run returns nil.
package app
