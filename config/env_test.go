package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv(EnvNudgeDelay, "80ms")
	t.Setenv(EnvListMarker, "* ")
	t.Setenv(EnvOrderedSuffix, ") ")
	t.Setenv(EnvBlockquoteIndent, "28.5")
	t.Setenv(EnvAlignment, "left")
	t.Setenv(EnvSizeMode, "fit")
	t.Setenv(EnvProgressColor, "#00ff00")
	t.Setenv(EnvLogLevel, "debug")

	s := DefaultSettings()
	if err := s.ApplyEnv(); err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if got := s.Editor.NudgeDelay.Duration(); got != 80*time.Millisecond {
		t.Errorf("expected 80ms, got %v", got)
	}
	if s.Editor.ListMarker != "* " || s.Editor.OrderedSuffix != ") " {
		t.Errorf("expected markers, got %q %q", s.Editor.ListMarker, s.Editor.OrderedSuffix)
	}
	if s.Editor.BlockquoteIndent != 28.5 {
		t.Errorf("expected 28.5, got %v", s.Editor.BlockquoteIndent)
	}
	if s.Attachment.Alignment != "left" || s.Attachment.SizeMode != "fit" {
		t.Errorf("expected left fit, got %q %q", s.Attachment.Alignment, s.Attachment.SizeMode)
	}
	if got := s.Attachment.ProgressColor.Hex(); got != "#00ff00" {
		t.Errorf("expected #00ff00, got %s", got)
	}
	if s.Logging.Level != "debug" {
		t.Errorf("expected debug, got %q", s.Logging.Level)
	}
}

func TestApplyEnv_UnsetKeepsValues(t *testing.T) {
	s := DefaultSettings()
	s.Logging.Level = "warn"

	if err := s.ApplyEnv(); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if s.Logging.Level != "warn" {
		t.Errorf("expected warn kept, got %q", s.Logging.Level)
	}
}

func TestApplyEnv_BadDuration(t *testing.T) {
	t.Setenv(EnvNudgeDelay, "soon")

	err := DefaultSettings().ApplyEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), EnvNudgeDelay) {
		t.Errorf("expected error to name %s, got %v", EnvNudgeDelay, err)
	}
}

func TestApplyEnv_BadColor(t *testing.T) {
	t.Setenv(EnvProgressColor, "bright red")

	if err := DefaultSettings().ApplyEnv(); err == nil {
		t.Fatal("expected error")
	}
}

func TestApplyEnv_InvalidEnumFailsValidation(t *testing.T) {
	t.Setenv(EnvSizeMode, "huge")

	err := DefaultSettings().ApplyEnv()
	if !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("expected ErrInvalidSetting, got %v", err)
	}
}
