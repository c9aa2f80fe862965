package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdlogger"
)

// Manager resolves the config that applies to an input, loading each
// snyk-to-sarif.toml at most once.
type Manager struct {
	// Override is used in place of any snyk-to-sarif.toml when set
	Override *Config
	// Default is used when there is no snyk-to-sarif.toml to load
	Default Config

	loaded map[string]Config
}

func NewManager() *Manager {
	return &Manager{loaded: make(map[string]Config)}
}

// UseOverride loads the config at configPath and uses it for every input
func (c *Manager) UseOverride(configPath string) error {
	config, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	c.Override = &config

	return nil
}

// Get returns the config for the given input file, which is the
// snyk-to-sarif.toml sitting next to it. An empty inputPath means the input
// came from stdin, in which case the working directory is used.
func (c *Manager) Get(inputPath string) Config {
	if c.Override != nil {
		return *c.Override
	}

	configPath := filepath.Join(configDir(inputPath), ConfigName)

	if config, ok := c.loaded[configPath]; ok {
		return config
	}

	config, err := loadConfig(configPath)
	switch {
	case err == nil:
		cmdlogger.Infof("Loaded filter from: %s", config.LoadPath)
	case errors.Is(err, os.ErrNotExist):
		config = c.Default
	default:
		cmdlogger.Errorf("%s at %s because: %v", cmdlogger.InvalidConfigPrefix, configPath, err)
		config = c.Default
	}
	c.loaded[configPath] = config

	return config
}

// UnusedIgnores returns the ignore entries that matched no rule, keyed by the
// config file that declared them
func (c *Manager) UnusedIgnores() map[string][]*IgnoreEntry {
	configs := slices.Collect(maps.Values(c.loaded))
	if c.Override != nil {
		configs = append(configs, *c.Override)
	}

	unused := make(map[string][]*IgnoreEntry)
	for _, config := range configs {
		if entries := config.UnusedIgnoredRules(); len(entries) > 0 {
			unused[config.LoadPath] = entries
		}
	}

	return unused
}

// configDir is the directory snyk-to-sarif.toml is looked up in for inputPath
func configDir(inputPath string) string {
	if inputPath == "" {
		return "."
	}

	if info, err := os.Stat(inputPath); err == nil && info.IsDir() {
		return inputPath
	}

	return filepath.Dir(inputPath)
}

// loadConfig parses the TOML file at path. Keys that do not map onto Config
// make the file invalid.
func loadConfig(path string) (Config, error) {
	var config Config

	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return Config{}, fmt.Errorf("unknown keys in config file: %s", strings.Join(keys, ", "))
	}

	config.LoadPath = path
	config.warnAboutDuplicates()

	return config, nil
}
