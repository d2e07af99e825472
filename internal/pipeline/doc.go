// Package pipeline drives the read → parse → filter → render loop.
//
// A Pipeline is ACTIVE from construction until Run returns, then TERMINATED.
// Run handles one line per iteration and never overlaps iterations:
//
//	for each line:
//	    interrupted?            → stop (Interrupted)
//	    not a record            → drop, or write through with PassUnmatched
//	    pid or level mismatch   → skip
//	    otherwise               → render and write, one Write per line
//
// End of input and context cancellation end the loop without error. Read
// and write failures end it with one.
//
// Cancellation is observed between lines only. To interrupt a Run blocked in
// a read, close the underlying reader after cancelling the context; the
// resulting read error is reported as an interrupt, not a failure.
package pipeline
