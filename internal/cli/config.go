package cli

import "fmt"

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// Config holds all configuration for an mlgrep run.
type Config struct {
	PatternFile   string
	PCRE          bool
	Recursive     bool
	CountOnly     bool
	FilesOnly     bool
	ShowBlocks    bool
	LineNumbers   bool
	JSONOutput    bool
	WatchMode     bool
	Color         ColorMode
	Workers       int
	NoIgnore      bool
	Hidden        bool
	Globs         []string
	MmapThreshold int64
	Paths         []string
}

// Validate checks that the config is usable and returns an error if not.
func (c *Config) Validate() error {
	if c.PatternFile == "" {
		return fmt.Errorf("no pattern file specified (-f)")
	}
	if c.CountOnly && c.FilesOnly {
		return fmt.Errorf("cannot use -c (count) and -l (files-with-matches) together")
	}
	if c.WatchMode && c.Recursive {
		return fmt.Errorf("cannot use --watch and -r (recursive) together")
	}
	if c.WatchMode && len(c.Paths) == 0 {
		return fmt.Errorf("--watch requires at least one path")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}
