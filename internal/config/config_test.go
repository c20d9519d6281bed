package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultConfig(t *testing.T) {
	opts, err := GetConfig()
	if err != nil {
		t.Fatalf("Error loading config: %s", err)
	}

	t.Logf(`Config
		Host: %s
		Port: %d
		Catalog: %s
		LogLevel: %s
		`, opts.Host, opts.Port, opts.Catalog, opts.LogLevel)

	if opts.Port != defaultPort {
		t.Errorf("port not set")
	}
	if !filepath.IsAbs(opts.Catalog) {
		t.Errorf("catalog path should be absolute, got %s", opts.Catalog)
	}
	if opts.ListPageSize != 6 || opts.GridPageSize != 8 {
		t.Errorf("page sizes incorrect: %d/%d", opts.ListPageSize, opts.GridPageSize)
	}
}

func TestLoadConfigFile(t *testing.T) {
	GetDefaultOptions()
	opts, err := ParseFile("config_test.toml")
	if err != nil {
		t.Fatalf("Error loading config: %s", err)
	}
	if opts.Host != "127.0.0.1" {
		t.Errorf("host incorrect")
	}
	if opts.LogFile != "test.log" {
		t.Errorf("log_file incorrect")
	}
	if opts.Port != 2333 {
		t.Errorf("port incorrect")
	}
	if opts.LogLevel != "debug" {
		t.Errorf("log_level incorrect")
	}
	if opts.SessionTTL != 30*time.Minute {
		t.Errorf("session_ttl incorrect: %s", opts.SessionTTL)
	}
	if opts.GridPageSize != 12 {
		t.Errorf("grid_page_size incorrect")
	}
	// Values absent from the file keep their defaults.
	if opts.ListPageSize != defaultListPageSize {
		t.Errorf("list_page_size should keep its default")
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := ParseFile("does_not_exist.toml"); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LIVRARIA_PORT", "9090")
	opts, err := GetConfig()
	if err != nil {
		t.Fatalf("Error loading config: %s", err)
	}
	if opts.Port != 9090 {
		t.Errorf("port not overridden by environment, got %d", opts.Port)
	}
}

func TestPageSize(t *testing.T) {
	GetDefaultOptions()
	if PageSize("grid") != 8 {
		t.Errorf("grid page size incorrect")
	}
	if PageSize("list") != 6 || PageSize("") != 6 {
		t.Errorf("list page size incorrect")
	}
}
