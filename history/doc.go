// Package history keeps the bounded sequence of finalized transcripts that a
// caption session re-renders on every update.
package history
