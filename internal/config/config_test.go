package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.NoLogo || cfg.App.Path != "" {
		t.Fatalf("unexpected defaults: %#v", cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults: %#v", cfg.Logging)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{"--no-logo", "--trace", "--log-file", "/tmp/v.log"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if !cfg.App.NoLogo {
		t.Fatalf("no-logo flag not applied")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/v.log" {
		t.Fatalf("logging flags not applied: %#v", cfg.Logging)
	}
	if cfg.Flags["noLogo"] != "true" || cfg.Flags["logFile"] != "/tmp/v.log" {
		t.Fatalf("flag snapshot wrong: %#v", cfg.Flags)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	environ := []string{
		"VIMVALDI_NO_LOGO=1",
		"VIMVALDI_TRACE=true",
		"VIMVALDI_LOG_FILE=/tmp/env.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if !cfg.App.NoLogo || !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("environment not applied: %#v", cfg)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--log-file", "/tmp/flag.log"}, []string{"VIMVALDI_LOG_FILE=/tmp/env.log"})
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.Logging.FilePath != "/tmp/flag.log" {
		t.Fatalf("flag should win over environment, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsScorePath(t *testing.T) {
	cfg, err := LoadArgs([]string{"--no-logo", "fugue.vv"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	if cfg.App.Path != "fugue.vv" {
		t.Fatalf("positional path not captured: %q", cfg.App.Path)
	}
}

func TestLoadArgsRejectsMultiplePaths(t *testing.T) {
	if _, err := LoadArgs([]string{"a.vv", "b.vv"}, nil); err == nil {
		t.Fatalf("two positional paths should fail")
	}
}

func TestLoadArgsRejectsUnknownFlags(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatalf("unknown flag should fail")
	}
}
