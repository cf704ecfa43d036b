// Package settings resolves user caption settings (line width, line count,
// language) into the concrete layout a caption session renders with.
//
// Widths may be a character count or a named preset. Presets resolve to
// narrower counts for logographic scripts. Malformed values never fail: each
// bad field falls back to the last known good value, then to the defaults,
// and is reported back to the caller for logging.
package settings
