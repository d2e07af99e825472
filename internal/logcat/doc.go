// Package logcat parses Android `logcat -v time` output into records.
//
// A record line looks like
//
//	03-14 10:22:01.123 D/MyTag(  123): hello world
//
// Parse returns ErrNoMatch for anything else. That is not a failure: logcat
// interleaves buffer banners and blank lines with records, and callers decide
// whether to drop or pass those through.
package logcat
