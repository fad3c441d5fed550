package cliconfig

import "os"

// ApplyEnvConfig applies ESCSCAN_* environment variables to cfg, skipping
// any value whose flag was explicitly set.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("target", os.Getenv("ESCSCAN_TARGET"), &cfg.Target)
	s.setString("encoding", os.Getenv("ESCSCAN_ENCODING"), &cfg.Encoding)
	s.setString("log-level", os.Getenv("ESCSCAN_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("window-start", os.Getenv("ESCSCAN_WINDOW_START"), &cfg.WindowStart); err != nil {
		return err
	}
	if err := s.setIntFromString("window-end", os.Getenv("ESCSCAN_WINDOW_END"), &cfg.WindowEnd); err != nil {
		return err
	}
	if err := s.setIntFromString("window-width", os.Getenv("ESCSCAN_WINDOW_WIDTH"), &cfg.WindowWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("match-width", os.Getenv("ESCSCAN_MATCH_WIDTH"), &cfg.MatchWidth); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("ESCSCAN_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("ESCSCAN_WATCH"), &cfg.Watch)

	return nil
}
