/*
Package config manages the TOML (or YAML) config for WordRank.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/charmbracelet/log"
)

// Engine names accepted by dict.engine
const (
	EngineBinary = "binary"
	EngineTrie   = "trie"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Dict   DictConfig   `toml:"dict" yaml:"dict"`
	CLI    CliConfig    `toml:"cli" yaml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit" yaml:"max_limit"`
	DefaultLimit int `toml:"default_limit" yaml:"default_limit"`
	MaxPrefix    int `toml:"max_prefix" yaml:"max_prefix"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path      string `toml:"path" yaml:"path"`
	Engine    string `toml:"engine" yaml:"engine"`
	MaxChunks int    `toml:"max_chunks" yaml:"max_chunks"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit" yaml:"default_limit"`
	ShowWeights  bool `toml:"show_weights" yaml:"show_weights"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:     64,
			DefaultLimit: 10,
			MaxPrefix:    60,
		},
		Dict: DictConfig{
			Path:      "data/",
			Engine:    EngineBinary,
			MaxChunks: 0,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
			ShowWeights:  true,
		},
	}
}

// Validate reports values the rest of the program cannot run with
func (c *Config) Validate() error {
	switch c.Dict.Engine {
	case EngineBinary, EngineTrie:
	default:
		return fmt.Errorf("unknown dict.engine %q (want %q or %q)", c.Dict.Engine, EngineBinary, EngineTrie)
	}
	if c.Server.MaxLimit < 1 {
		return fmt.Errorf("server.max_limit must be positive, got %d", c.Server.MaxLimit)
	}
	if c.Server.DefaultLimit < 1 || c.Server.DefaultLimit > c.Server.MaxLimit {
		return fmt.Errorf("server.default_limit must be in [1, %d], got %d", c.Server.MaxLimit, c.Server.DefaultLimit)
	}
	if c.Server.MaxPrefix < 0 {
		return fmt.Errorf("server.max_prefix must not be negative, got %d", c.Server.MaxPrefix)
	}
	return nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path inside the user config dir
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	if defaultPath == "" {
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML or YAML file. Values missing from the file
// keep their defaults. A file that fails to decode as a whole is parsed
// section by section, keeping every value of the right type.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadConfigFile(configPath, config); err != nil {
		config, err = tryPartialParse(configPath)
		if err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// tryPartialParse recovers whatever sections of a broken file still parse
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseWithRecovery(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", configPath, err)
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "engine"); ok {
		dict.Engine = val
	}
	if val, ok := utils.ExtractInt(data, "max_chunks"); ok {
		dict.MaxChunks = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_weights"); ok {
		cli.ShowWeights = val
	}
}

// SaveConfig saves into a TOML or YAML file, chosen by extension
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveConfigFile(config, configPath)
}
