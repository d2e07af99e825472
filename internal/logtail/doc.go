// Package logtail reads a live log stream line by line.
//
// The stream is either piped standard input or the stdout of a spawned
// `adb logcat` process. Reader.Next blocks on the underlying reader and
// distinguishes three outcomes:
//
//   - a line (terminator stripped, "\r\n" tolerated)
//   - io.EOF when the producer closed the stream, checked with IsEnd
//   - a wrapped read error, including bufio.ErrTooLong for lines over 1 MiB
//
// Buffers start at 64 KiB and grow to 1 MiB, enough for the longest lines
// logcat emits (stack traces are split per line by the device).
//
// Reader does no cancellation of its own. To interrupt a blocked Next, close
// the underlying stream; the caller then inspects its context to tell an
// interrupt from a genuine read failure.
package logtail
