package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables overriding individual settings. All share the
// RICHTEXT_ prefix; unset variables leave the current value alone.
const (
	EnvNudgeDelay       = "RICHTEXT_NUDGE_DELAY"
	EnvListMarker       = "RICHTEXT_LIST_MARKER"
	EnvOrderedSuffix    = "RICHTEXT_ORDERED_SUFFIX"
	EnvBlockquoteIndent = "RICHTEXT_BLOCKQUOTE_INDENT"
	EnvAlignment        = "RICHTEXT_ATTACHMENT_ALIGNMENT"
	EnvSizeMode         = "RICHTEXT_ATTACHMENT_SIZE_MODE"
	EnvProgressColor    = "RICHTEXT_PROGRESS_COLOR"
	EnvLogLevel         = "RICHTEXT_LOG_LEVEL"
)

// ApplyEnv overlays environment variables onto the settings and revalidates.
// The first unparseable variable aborts with an error naming it.
func (s *Settings) ApplyEnv() error {
	appliers := []struct {
		key   string
		apply func(string) error
	}{
		{EnvNudgeDelay, func(v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return err
			}
			s.Editor.NudgeDelay = Duration(d)
			return nil
		}},
		{EnvListMarker, func(v string) error {
			s.Editor.ListMarker = v
			return nil
		}},
		{EnvOrderedSuffix, func(v string) error {
			s.Editor.OrderedSuffix = v
			return nil
		}},
		{EnvBlockquoteIndent, func(v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			s.Editor.BlockquoteIndent = f
			return nil
		}},
		{EnvAlignment, func(v string) error {
			s.Attachment.Alignment = v
			return nil
		}},
		{EnvSizeMode, func(v string) error {
			s.Attachment.SizeMode = v
			return nil
		}},
		{EnvProgressColor, func(v string) error {
			return s.Attachment.ProgressColor.UnmarshalText([]byte(v))
		}},
		{EnvLogLevel, func(v string) error {
			s.Logging.Level = v
			return nil
		}},
	}

	for _, a := range appliers {
		v, ok := os.LookupEnv(a.key)
		if !ok {
			continue
		}
		if err := a.apply(v); err != nil {
			return fmt.Errorf("config: %s: %w", a.key, err)
		}
	}
	return s.Validate()
}
