// Package config handles the external configuration file read by the
// strvec command line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// SortOrder specifies how the command line tool orders its output lines.
type SortOrder string

const (
	SortNone   SortOrder = ""
	SortAlpha  SortOrder = "alpha"
	SortLength SortOrder = "length"
)

// UnmarshalText parses a text value into a SortOrder, accepting "none"
// (or empty), "alpha" and "length" as valid values.
func (s *SortOrder) UnmarshalText(b []byte) error {
	switch v := string(b); v {
	case "", "none":
		*s = SortNone
	case "alpha":
		*s = SortAlpha
	case "length":
		*s = SortLength
	default:
		return fmt.Errorf("invalid Sort value %q: must be %q or %q", v, SortAlpha, SortLength)
	}
	return nil
}

// UnmarshalFlag implements go-flags Unmarshaler (used by CLI flag parsing).
func (s *SortOrder) UnmarshalFlag(v string) error {
	return s.UnmarshalText([]byte(v))
}

// Config holds all the data that can be configured in the external
// configuration file. Command line flags take precedence over these values.
type Config struct {
	Separator string    `yaml:"Separator"`
	Trim      bool      `yaml:"Trim"`
	Squeeze   bool      `yaml:"Squeeze"`
	Sort      SortOrder `yaml:"Sort"`
	Truncate  int       `yaml:"Truncate"`
}

// New creates a Config initialized with default values.
func New() *Config {
	return &Config{
		Separator: "\n",
	}
}

// ReadFilename reads the config from the given YAML file.
func (c *Config) ReadFilename(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open configuration file %s", filename)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return errors.Wrapf(err, "failed to decode configuration file %s", filename)
	}

	if c.Truncate < 0 {
		return errors.Errorf("invalid Truncate value %d: must not be negative", c.Truncate)
	}
	return nil
}

// Locator locates a config file in a given directory.
type Locator interface {
	Locate(string) (string, error)
}

// LocatorFunc is a function that implements Locator.
type LocatorFunc func(string) (string, error)

// Locate calls the underlying function.
func (f LocatorFunc) Locate(dir string) (string, error) {
	return f(dir)
}

var configFilenames = []string{"config.yaml", "config.yml"}

// DefaultLocator searches for a config file with one of the known
// filenames (config.yaml, config.yml) in the given directory.
var DefaultLocator = LocatorFunc(func(dir string) (string, error) {
	for _, basename := range configFilenames {
		file := filepath.Join(dir, basename)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}
	return "", fmt.Errorf("config file not found in %s", dir)
})

var homedirFunc = os.UserHomeDir

// LocateRcfile attempts to find the config file in various locations
func LocateRcfile(locater Locator) (string, error) {
	// http://standards.freedesktop.org/basedir-spec/basedir-spec-latest.html
	//
	// Try in this order:
	//	  $XDG_CONFIG_HOME/strvec/config.{yaml,yml}
	//    $XDG_CONFIG_DIR/strvec/config.{yaml,yml} (where XDG_CONFIG_DIR is listed in $XDG_CONFIG_DIRS)
	//	  ~/.strvec/config.{yaml,yml}

	home, uErr := homedirFunc()

	// Try dir supplied via env var
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if file, err := locater.Locate(filepath.Join(dir, "strvec")); err == nil {
			return file, nil
		}
	} else if uErr == nil { // silently ignore failure for homedir()
		if file, err := locater.Locate(filepath.Join(home, ".config", "strvec")); err == nil {
			return file, nil
		}
	}

	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, string(filepath.ListSeparator)) {
			if file, err := locater.Locate(filepath.Join(dir, "strvec")); err == nil {
				return file, nil
			}
		}
	}

	if uErr == nil { // silently ignore failure for homedir()
		if file, err := locater.Locate(filepath.Join(home, ".strvec")); err == nil {
			return file, nil
		}
	}

	return "", errors.New("config file not found")
}
