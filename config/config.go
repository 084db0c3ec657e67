// Package config loads the TOML configuration of the desxifra tool.
package config

import (
	"Xifra"
	"Xifra/bitcodec"
	"Xifra/vault"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/op/go-logging.v1"
)

const defaultLogLevel = "NOTICE"

// Logging is the logging configuration
type Logging struct {
	// Level is a go-logging level name: DEBUG, INFO, NOTICE, WARNING, ERROR or CRITICAL
	Level string
	// Debug traces the schedule steps, block passes and bit sequences of the
	// pipeline, logged at DEBUG level
	Debug bool
}

func (l *Logging) validate() error {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if _, err := logging.LogLevel(strings.ToUpper(l.Level)); err != nil {
		return fmt.Errorf("config: Logging: Level '%v' is invalid", l.Level)
	}
	return nil
}

// Config is the top level configuration
type Config struct {
	Logging *Logging
	// Vault maps identifiers to obfuscated payloads
	Vault vault.Table
}

// Validate returns nil if the config is valid
// and otherwise an error is returned.
func (cfg *Config) Validate() error {
	if cfg.Logging == nil {
		cfg.Logging = &Logging{}
	}
	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	if cfg.Vault == nil {
		cfg.Vault = make(vault.Table)
	}
	for _, id := range cfg.Vault.IDs() {
		if id == "" {
			return errors.New("config: Vault: empty identifier")
		}
		if _, err := bitcodec.TextToBits(cfg.Vault[id]); err != nil {
			return fmt.Errorf("config: Vault: payload %q: %w", id, err)
		}
	}
	return nil
}

// Apply configures the shared log backend. Debug lowers the level to DEBUG
// so the pipeline traces are written.
func (cfg *Config) Apply() error {
	if cfg.Logging.Debug {
		return Xifra.SetLogLevel("DEBUG")
	}
	return Xifra.SetLogLevel(cfg.Logging.Level)
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
