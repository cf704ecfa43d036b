package caption

import (
	"time"

	"github.com/kbukum/captionkit/display"
	"github.com/kbukum/captionkit/history"
	"github.com/kbukum/captionkit/settings"
	"github.com/kbukum/captionkit/validation"
)

// Defaults for Config.
const (
	DefaultDebounceInterval     = 400 * time.Millisecond
	DefaultInactivityDelay      = 40 * time.Second
	DefaultFinalDisplayDuration = 20 * time.Second
	DefaultOutboxSize           = 32
	DefaultLineWidth            = settings.Width("medium")
)

// Config holds engine-wide caption settings. Per-session layout comes from
// settings snapshots; the Default* fields seed sessions whose snapshot is
// empty.
type Config struct {
	// DebounceInterval is the minimum gap between non-final renders.
	DebounceInterval time.Duration `yaml:"debounce_interval" mapstructure:"debounce_interval" validate:"gt=0"`
	// InactivityDelay blanks a session after this long without events.
	InactivityDelay time.Duration `yaml:"inactivity_delay" mapstructure:"inactivity_delay" validate:"gt=0"`
	HistoryCapacity int           `yaml:"history_capacity" mapstructure:"history_capacity" validate:"gt=0"`

	// Display durations suggested to the sink. Zero leaves it to the sink,
	// negative asks for no timeout.
	FinalDisplayDuration   time.Duration `yaml:"final_display_duration" mapstructure:"final_display_duration"`
	PartialDisplayDuration time.Duration `yaml:"partial_display_duration" mapstructure:"partial_display_duration"`

	// OutboxSize bounds queued updates per session before the oldest is dropped.
	OutboxSize         int    `yaml:"outbox_size" mapstructure:"outbox_size" validate:"gt=0"`
	LeadingPunctuation string `yaml:"leading_punctuation" mapstructure:"leading_punctuation"`

	DefaultLineWidth settings.Width `yaml:"default_line_width" mapstructure:"default_line_width"`
	DefaultLineCount int            `yaml:"default_line_count" mapstructure:"default_line_count" validate:"gt=0"`
	DefaultLanguage  string         `yaml:"default_language" mapstructure:"default_language" validate:"required"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.DebounceInterval == 0 {
		c.DebounceInterval = DefaultDebounceInterval
	}
	if c.InactivityDelay == 0 {
		c.InactivityDelay = DefaultInactivityDelay
	}
	if c.HistoryCapacity == 0 {
		c.HistoryCapacity = history.DefaultCapacity
	}
	if c.FinalDisplayDuration == 0 {
		c.FinalDisplayDuration = DefaultFinalDisplayDuration
	}
	if c.OutboxSize == 0 {
		c.OutboxSize = DefaultOutboxSize
	}
	if c.LeadingPunctuation == "" {
		c.LeadingPunctuation = display.DefaultLeadingPunctuation
	}
	if c.DefaultLineWidth == "" {
		c.DefaultLineWidth = DefaultLineWidth
	}
	if c.DefaultLineCount == 0 {
		c.DefaultLineCount = settings.DefaultLineCount
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = settings.DefaultLanguage
	}
}

// Validate checks the configuration after defaults are applied.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// baseSnapshot is the snapshot every new session starts from.
func (c *Config) baseSnapshot() settings.Snapshot {
	return settings.Snapshot{
		LineWidth:       c.DefaultLineWidth,
		LineCount:       c.DefaultLineCount,
		Language:        c.DefaultLanguage,
		HistoryCapacity: c.HistoryCapacity,
	}
}

func (c *Config) displayDuration(final bool) time.Duration {
	d := c.PartialDisplayDuration
	if final {
		d = c.FinalDisplayDuration
	}
	if d < 0 {
		return display.Unlimited
	}
	return d
}
