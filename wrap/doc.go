// Package wrap breaks caption text into lines no wider than a fixed number
// of characters, preferring the break points reported by a segment.Segmenter.
//
// Widths count runes. A token longer than the width is force-split at the
// width. Wrapping is a pure function: the same text, width and segmenter
// always produce the same lines.
package wrap
