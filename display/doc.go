// Package display turns wrapped caption lines into the fixed-geometry block
// sent to a display sink.
//
// Fit pads or trims to exactly the configured line count, dropping the
// oldest (top) lines on overflow. A Cleaner strips leading punctuation from
// the joined block without changing its line count. Update is the outbound
// message and Sink is the collaborator that renders it.
package display
