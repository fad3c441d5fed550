package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/escscan/internal/inspect"
)

// DefaultTarget is the file escscan inspects when no path is given.
const DefaultTarget = "client/src/pages/community/friends.tsx"

// Config holds CLI configuration for escscan.
type Config struct {
	Target   string
	Encoding string

	// Window bounds are zero-based, end exclusive.
	WindowStart int
	WindowEnd   int
	WindowWidth int
	MatchWidth  int

	Watch    bool
	Debounce time.Duration
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	opts := inspect.DefaultOptions()
	return Config{
		Target:      DefaultTarget,
		Encoding:    string(opts.Encoding),
		WindowStart: opts.WindowStart,
		WindowEnd:   opts.WindowEnd,
		WindowWidth: opts.WindowWidth,
		MatchWidth:  opts.MatchWidth,
		Debounce:    inspect.DefaultDebounce,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors and normalises the encoding.
func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target path is required")
	}
	if c.WindowStart < 0 {
		return fmt.Errorf("window start must not be negative")
	}
	if c.WindowEnd < c.WindowStart {
		return fmt.Errorf("window end %d is before window start %d", c.WindowEnd, c.WindowStart)
	}
	if c.WindowWidth <= 0 || c.MatchWidth <= 0 {
		return fmt.Errorf("window and match widths must be positive")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	enc, err := inspect.ParseEncoding(c.Encoding)
	if err != nil {
		return err
	}
	c.Encoding = string(enc)
	return nil
}

// Options converts the configuration to inspector options.
func (c Config) Options() inspect.Options {
	return inspect.Options{
		Encoding:    inspect.Encoding(c.Encoding),
		WindowStart: c.WindowStart,
		WindowEnd:   c.WindowEnd,
		WindowWidth: c.WindowWidth,
		MatchWidth:  c.MatchWidth,
	}
}

// configSetter applies values only when the matching flag was not set on
// the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if non-nil and flag not changed. Zero is a
// valid window bound, so absence is carried by the pointer.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses an environment value and sets dst.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
