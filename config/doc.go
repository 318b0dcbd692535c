// Package config loads editor settings from TOML or YAML files with
// environment overrides and live reload.
//
// Loading is layered: DefaultSettings supplies every value, a settings file
// overrides the keys it names, and RICHTEXT_* environment variables override
// the file. A missing file is not an error; loaders return nil and callers
// fall back to defaults. Parse failures surface as *ParseError carrying the
// file position when the parser reports one.
//
// The Watcher delivers freshly parsed settings on a channel after each
// debounced change to the file, for hosts that reload live.
//
// Basic usage:
//
//	settings, err := config.Load("richtext.toml")
//	if err != nil {
//		return err
//	}
//	if settings == nil {
//		settings = config.DefaultSettings()
//	}
//	if err := settings.ApplyEnv(); err != nil {
//		return err
//	}
//
//	ed := editor.New(settings.EditorOptions()...)
package config
