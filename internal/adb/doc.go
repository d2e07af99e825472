// Package adb wraps the two adb invocations lcat needs: `adb logcat -v time`
// as the live record source and `adb shell ps` to turn a package name into a
// PID filter.
//
// Callers depend on PIDResolver and on io.ReadCloser for the stream, so the
// pipeline can be driven without a device.
//
// # Process lookup
//
// ResolvePID parses the ps table (toolbox and toybox layouts both carry USER
// and PID first) and prefers an exact match on the process name before
// falling back to the first row containing the name. A missing process is
// reported as ErrProcessNotFound; callers treat it, and any failure running
// ps, as "no filter".
//
// # Log stream lifetime
//
// Logcat returns a Stream reading the child's stdout. Cancelling the context
// passed to Logcat interrupts the child, which closes stdout and ends the
// stream. Stream.Close interrupts the child if it is still running, kills it
// after two seconds, and reaps it. Exits caused by either path are not
// reported as errors.
package adb
