// Package main is a document-processing front end for the richtext library:
// it reads a JSON document, optionally toggles a style over a range, and
// writes the result back out.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/codec"
	"github.com/dshills/richtext/config"
	"github.com/dshills/richtext/editor"
	"github.com/dshills/richtext/format"
	"github.com/dshills/richtext/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	input      string
	output     string
	toggle     string
	rangeSpec  string
	configPath string
	logLevel   string
	indent     bool
}

var toggles = map[string]func(*editor.Editor){
	string(format.Bold):          (*editor.Editor).ToggleBold,
	string(format.Italic):        (*editor.Editor).ToggleItalic,
	string(format.Underline):     (*editor.Editor).ToggleUnderline,
	string(format.Strikethrough): (*editor.Editor).ToggleStrikethrough,
	string(format.OrderedList):   (*editor.Editor).ToggleOrderedList,
	string(format.UnorderedList): (*editor.Editor).ToggleUnorderedList,
	string(format.Blockquote):    (*editor.Editor).ToggleBlockquote,
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	settings, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := settings.NewLogger()
	logging.SetLogger(logger)

	data, err := readInput(opts.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", opts.input, err)
		return 1
	}

	registry := attachment.NewRegistry(attachment.WithLogger(logger))
	doc, err := codec.Decode(data,
		codec.WithAttachments(registry),
		codec.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding %s: %v\n", opts.input, err)
		return 1
	}

	ed := editor.New(append(settings.EditorOptions(),
		editor.WithLogger(logger),
		editor.WithDocument(doc),
		editor.WithAttachments(registry),
	)...)

	if opts.toggle != "" {
		if err := applyToggle(ed, opts.toggle, opts.rangeSpec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	encodeOpts := []codec.Option{
		codec.WithAttachments(ed.Attachments()),
		codec.WithLogger(logger),
	}
	if opts.indent {
		encodeOpts = append(encodeOpts, codec.WithIndent())
	}
	out, err := codec.Encode(ed.Document(), encodeOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: encoding: %v\n", err)
		return 1
	}

	if err := writeOutput(opts.output, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", opts.output, err)
		return 1
	}

	logger.Info("document processed: length=%d toggle=%q", ed.Len(), opts.toggle)
	return 0
}

func loadSettings(opts options) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		if loaded != nil {
			settings = loaded
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		settings.Logging.Level = opts.logLevel
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

func applyToggle(ed *editor.Editor, name, rangeSpec string) error {
	toggle, ok := toggles[name]
	if !ok {
		return fmt.Errorf("unknown toggle %q (valid: %s)", name, strings.Join(toggleNames(), ", "))
	}

	start, end := 0, ed.Len()
	if rangeSpec != "" {
		var err error
		start, end, err = parseRange(rangeSpec)
		if err != nil {
			return err
		}
	}
	ed.SetSelection(editor.NewSelection(start, end))
	toggle(ed)
	return nil
}

func parseRange(spec string) (int, int, error) {
	left, right, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, 0, fmt.Errorf("range %q must be start:end", spec)
	}
	start, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("range start %q: %w", left, err)
	}
	end, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("range end %q: %w", right, err)
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("range %q is not ascending", spec)
	}
	return start, end, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func toggleNames() []string {
	names := make([]string, 0, len(toggles))
	for name := range toggles {
		names = append(names, name)
	}
	return names
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.input, "in", "-", "Input document JSON path, - for stdin")
	flag.StringVar(&opts.input, "i", "-", "Input document JSON path (shorthand)")
	flag.StringVar(&opts.output, "out", "-", "Output path, - for stdout")
	flag.StringVar(&opts.output, "o", "-", "Output path (shorthand)")
	flag.StringVar(&opts.toggle, "toggle", "", "Style to toggle (bold, italic, underline, strikethrough, orderedlist, unorderedlist, blockquote)")
	flag.StringVar(&opts.toggle, "t", "", "Style to toggle (shorthand)")
	flag.StringVar(&opts.rangeSpec, "range", "", "Character range start:end, empty for the whole document")
	flag.StringVar(&opts.rangeSpec, "r", "", "Character range (shorthand)")
	flag.StringVar(&opts.configPath, "config", "", "Path to settings file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to settings file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.indent, "indent", false, "Indent the output JSON")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "richtext - attributed document processor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: richtext [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  richtext -i doc.json -t bold -r 0:5    Bold the first five characters\n")
		fmt.Fprintf(os.Stderr, "  richtext -i doc.json -t blockquote     Quote every paragraph\n")
		fmt.Fprintf(os.Stderr, "  richtext -i doc.json -indent           Pretty-print a document\n")
		fmt.Fprintf(os.Stderr, "  cat doc.json | richtext -t italic      Read from stdin\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("richtext %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	return opts
}
