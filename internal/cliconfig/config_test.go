package cliconfig

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/escscan/internal/inspect"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Target != DefaultTarget {
		t.Errorf("Target = %v, want %v", cfg.Target, DefaultTarget)
	}
	if cfg.WindowStart != 209 || cfg.WindowEnd != 216 {
		t.Errorf("window = [%d, %d), want [209, 216)", cfg.WindowStart, cfg.WindowEnd)
	}
	if cfg.WindowWidth != 100 || cfg.MatchWidth != 200 {
		t.Errorf("widths = %d/%d, want 100/200", cfg.WindowWidth, cfg.MatchWidth)
	}
	if cfg.Debounce != 100*time.Millisecond {
		t.Errorf("Debounce = %v, want 100ms", cfg.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config { return DefaultConfig() }

	tests := []struct {
		name         string
		mutate       func(*Config)
		wantErr      bool
		wantEncoding string
	}{
		{
			name:         "defaults",
			mutate:       func(*Config) {},
			wantEncoding: "utf-8",
		},
		{
			name:    "missing target",
			mutate:  func(c *Config) { c.Target = "" },
			wantErr: true,
		},
		{
			name:    "negative window start",
			mutate:  func(c *Config) { c.WindowStart = -1 },
			wantErr: true,
		},
		{
			name:    "window end before start",
			mutate:  func(c *Config) { c.WindowStart = 10; c.WindowEnd = 5 },
			wantErr: true,
		},
		{
			name:         "empty window is allowed",
			mutate:       func(c *Config) { c.WindowStart = 0; c.WindowEnd = 0 },
			wantEncoding: "utf-8",
		},
		{
			name:    "zero match width",
			mutate:  func(c *Config) { c.MatchWidth = 0 },
			wantErr: true,
		},
		{
			name:    "zero debounce",
			mutate:  func(c *Config) { c.Debounce = 0 },
			wantErr: true,
		},
		{
			name:    "unknown encoding",
			mutate:  func(c *Config) { c.Encoding = "ebcdic" },
			wantErr: true,
		},
		{
			name:         "encoding alias is normalised",
			mutate:       func(c *Config) { c.Encoding = "ISO-8859-1" },
			wantEncoding: "latin1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Error("Validate() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if cfg.Encoding != tt.wantEncoding {
				t.Errorf("Encoding = %v, want %v", cfg.Encoding, tt.wantEncoding)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{
		Encoding:    "latin1",
		WindowStart: 1,
		WindowEnd:   4,
		WindowWidth: 10,
		MatchWidth:  20,
	}
	opts := cfg.Options()

	if opts.Encoding != inspect.Latin1 {
		t.Errorf("Encoding = %v, want %v", opts.Encoding, inspect.Latin1)
	}
	if opts.WindowStart != 1 || opts.WindowEnd != 4 {
		t.Errorf("window = [%d, %d), want [1, 4)", opts.WindowStart, opts.WindowEnd)
	}
	if opts.WindowWidth != 10 || opts.MatchWidth != 20 {
		t.Errorf("widths = %d/%d, want 10/20", opts.WindowWidth, opts.MatchWidth)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}

	buf.Reset()
	fallbackLogger := NewLogger(&buf, "bogus")
	fallbackLogger.Info().Msg("fallback")
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("invalid level should fall back to info: %q", buf.String())
	}
}
