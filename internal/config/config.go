package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default organization domains. The import derives account addresses from
// legacy DCE identifiers and position addresses from canonical titles.
const (
	DefaultAccountDomain  = "g.rit.edu"
	DefaultPositionDomain = "sse.rit.edu"
	DefaultPrimarySuffix  = "@rit.edu"
)

// Config represents the flat scribe configuration
type Config struct {
	DatabasePath   string `json:"database_path,omitempty"`   // target store file (default ~/.scribe/scribe.db)
	AccountDomain  string `json:"account_domain,omitempty"`  // domain appended to legacy DCE ids
	PositionDomain string `json:"position_domain,omitempty"` // domain for synthesized position addresses
	PrimarySuffix  string `json:"primary_suffix,omitempty"`  // suffix marking hand-managed position addresses
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		AccountDomain:  DefaultAccountDomain,
		PositionDomain: DefaultPositionDomain,
		PrimarySuffix:  DefaultPrimarySuffix,
	}
}

// Load reads .scribe/config.json from the given directory, filling any
// missing fields from Default(). A missing file is not an error; it just
// yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ".scribe", "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.AccountDomain == "" {
		cfg.AccountDomain = DefaultAccountDomain
	}
	if cfg.PositionDomain == "" {
		cfg.PositionDomain = DefaultPositionDomain
	}
	if cfg.PrimarySuffix == "" {
		cfg.PrimarySuffix = DefaultPrimarySuffix
	}

	return cfg, nil
}

// Save writes config.json to directory
func Save(dir string, cfg *Config) error {
	scribeDir := filepath.Join(dir, ".scribe")
	if err := os.MkdirAll(scribeDir, 0755); err != nil {
		return fmt.Errorf("failed to create .scribe dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(scribeDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
