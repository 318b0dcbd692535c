package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/editor"
	"github.com/dshills/richtext/logging"
)

// ErrInvalidSetting is returned when a settings value is out of range or not
// one of its allowed names.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings is the full configuration schema. Loaders fill it over
// DefaultSettings so partial files keep defaults for everything they omit.
type Settings struct {
	Editor     EditorSettings     `toml:"editor" yaml:"editor"`
	Attachment AttachmentSettings `toml:"attachment" yaml:"attachment"`
	Logging    LoggingSettings    `toml:"logging" yaml:"logging"`
}

// EditorSettings tune editing behavior.
type EditorSettings struct {
	// NudgeDelay is how long after a qualifying newline edit the deferred
	// caret refresh fires.
	NudgeDelay Duration `toml:"nudge_delay" yaml:"nudge_delay"`

	// ListMarker is the glyph prefix written on unordered list items.
	// Empty keeps list presence attribute-only.
	ListMarker string `toml:"list_marker" yaml:"list_marker"`

	// OrderedSuffix follows the item number on ordered list items, such as
	// ". " producing "1. ". Empty keeps list presence attribute-only.
	OrderedSuffix string `toml:"ordered_suffix" yaml:"ordered_suffix"`

	// BlockquoteIndent is the head indent, in points, hosts draw for
	// blockquote paragraphs.
	BlockquoteIndent float64 `toml:"blockquote_indent" yaml:"blockquote_indent"`
}

// AttachmentSettings default the display state of newly inserted attachments.
type AttachmentSettings struct {
	// Alignment is one of "left", "center", "right".
	Alignment string `toml:"alignment" yaml:"alignment"`

	// SizeMode is one of "intrinsic", "fit", "fixed".
	SizeMode string `toml:"size_mode" yaml:"size_mode"`

	// ProgressColor tints fetch progress indicators.
	ProgressColor Color `toml:"progress_color" yaml:"progress_color"`
}

// LoggingSettings configure the library logger.
type LoggingSettings struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level" yaml:"level"`
}

// DefaultSettings returns the settings used when no file overrides them.
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			NudgeDelay:       Duration(editor.DefaultNudgeDelay),
			BlockquoteIndent: document.BlockquoteIndent,
		},
		Attachment: AttachmentSettings{
			Alignment:     "center",
			SizeMode:      "intrinsic",
			ProgressColor: defaultProgressColor(),
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// Validate checks every value against its allowed range.
func (s *Settings) Validate() error {
	if s.Editor.NudgeDelay < 0 {
		return fmt.Errorf("%w: nudge_delay must not be negative", ErrInvalidSetting)
	}
	if s.Editor.BlockquoteIndent <= 0 {
		return fmt.Errorf("%w: blockquote_indent must be positive", ErrInvalidSetting)
	}
	switch s.Attachment.Alignment {
	case "left", "center", "right":
	default:
		return fmt.Errorf("%w: alignment %q", ErrInvalidSetting, s.Attachment.Alignment)
	}
	switch s.Attachment.SizeMode {
	case "intrinsic", "fit", "fixed":
	default:
		return fmt.Errorf("%w: size_mode %q", ErrInvalidSetting, s.Attachment.SizeMode)
	}
	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging level %q", ErrInvalidSetting, s.Logging.Level)
	}
	return nil
}

// EditorOptions translates the editor section into editor constructor
// options.
func (s *Settings) EditorOptions() []editor.Option {
	opts := []editor.Option{
		editor.WithNudgeDelay(s.Editor.NudgeDelay.Duration()),
	}
	if s.Editor.ListMarker != "" || s.Editor.OrderedSuffix != "" {
		opts = append(opts, editor.WithListMarkers(s.Editor.ListMarker, s.Editor.OrderedSuffix))
	}
	return opts
}

// NewLogger builds a logger honoring the configured level.
func (s *Settings) NewLogger() *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = s.Logging.LevelValue()
	return logging.New(cfg)
}

// AlignmentValue returns the typed alignment, defaulting to center for
// unvalidated input.
func (a AttachmentSettings) AlignmentValue() attachment.Alignment {
	switch a.Alignment {
	case "left":
		return attachment.AlignLeft
	case "right":
		return attachment.AlignRight
	default:
		return attachment.AlignCenter
	}
}

// SizeModeValue returns the typed size mode, defaulting to intrinsic for
// unvalidated input.
func (a AttachmentSettings) SizeModeValue() attachment.SizeMode {
	switch a.SizeMode {
	case "fit":
		return attachment.SizeFit
	case "fixed":
		return attachment.SizeFixed
	default:
		return attachment.SizeIntrinsic
	}
}

// Progress builds a progress overlay at the given fraction using the
// configured tint.
func (a AttachmentSettings) Progress(fraction float64) *attachment.Progress {
	return &attachment.Progress{Fraction: fraction, Color: a.ProgressColor.Color}
}

// LevelValue returns the typed logging level.
func (l LoggingSettings) LevelValue() logging.Level {
	return logging.ParseLevel(l.Level)
}

// Duration is a time.Duration that reads from config files as a string like
// "50ms".
type Duration time.Duration

// Duration returns the standard library value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// encoding.TextUnmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Color is an sRGB color that reads from config files as a hex string like
// "#4c6ef5".
type Color struct {
	colorful.Color
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := colorful.Hex(string(text))
	if err != nil {
		return fmt.Errorf("parsing color %q: %w", string(text), err)
	}
	c.Color = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Color.Hex()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// encoding.TextUnmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.Color.Hex(), nil
}

func defaultProgressColor() Color {
	c, _ := colorful.Hex("#4c6ef5")
	return Color{Color: c}
}
