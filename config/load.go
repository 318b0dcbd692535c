package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Load when the file extension names no
// supported format.
var ErrUnknownFormat = errors.New("unknown config format")

// ParseError reports a malformed configuration file with its position when
// the parser provides one.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads settings from the file, picking the format by extension
// (.toml, .yaml, .yml). A missing file is not an error and yields nil.
func Load(path string) (*Settings, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return LoadTOML(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadTOML reads settings from a TOML file over the defaults. A missing
// file yields nil. Parse errors carry the file position.
func LoadTOML(path string) (*Settings, error) {
	data, ok, err := readFile(path)
	if err != nil || !ok {
		return nil, err
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
			perr.Message = derr.Error()
		}
		return nil, perr
	}
	return validated(path, s)
}

// LoadYAML reads settings from a YAML file over the defaults. A missing
// file yields nil.
func LoadYAML(path string) (*Settings, error) {
	data, ok, err := readFile(path)
	if err != nil || !ok {
		return nil, err
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return validated(path, s)
}

func readFile(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return data, true, nil
}

func validated(path string, s *Settings) (*Settings, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}
