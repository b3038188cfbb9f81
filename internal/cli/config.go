// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"github.com/ik5/audmark/watermark"
)

// DefaultID is the identifier used when neither a flag nor a config file
// sets one.
const DefaultID = "wf"

var (
	ErrEmptyID       = errors.New("identifier must not be empty")
	ErrInvalidRepeat = errors.New("repeat must be at least 1")
)

// Config holds the settings shared by wm-embed and wm-check.
type Config struct {
	// ID is the watermark identifier
	ID string `yaml:"id,omitempty"`

	// Repeat is the maximum number of votes taken when checking
	Repeat int `yaml:"repeat,omitempty"`

	// Verbose enables debug logging
	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ID:     DefaultID,
		Repeat: watermark.DefaultVoteRepeat,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Decode into pointers so keys missing from the file, or a file with no
	// document at all, leave the defaults alone.
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if file.ID != nil {
		cfg.ID = *file.ID
	}
	if file.Repeat != nil {
		cfg.Repeat = *file.Repeat
	}
	if file.Verbose != nil {
		cfg.Verbose = *file.Verbose
	}

	return cfg, nil
}

// fileConfig is the on-disk form of Config.
type fileConfig struct {
	ID      *string `yaml:"id"`
	Repeat  *int    `yaml:"repeat"`
	Verbose *bool   `yaml:"verbose"`
}

// Validate reports settings no command can run with.
func (c *Config) Validate() error {
	if c.ID == "" {
		return ErrEmptyID
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRepeat, c.Repeat)
	}
	return nil
}

// ApplyFlags overrides c with the id, repeat and verbose flags that were set
// explicitly on the command line. Flags missing from fs are ignored.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	if fs.Changed("id") {
		if c.ID, err = fs.GetString("id"); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if fs.Changed("repeat") {
		if c.Repeat, err = fs.GetInt("repeat"); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if fs.Changed("verbose") {
		if c.Verbose, err = fs.GetBool("verbose"); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
