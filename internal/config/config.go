package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"headsupholdem-server/internal/util"
)

// Config provides configuration for the heads-up hold'em server
type Config struct {
	loaded     bool
	ListenAddr string `yaml:"listenAddr" envconfig:"listen_addr"`
	Log        struct {
		Level             string
		JSON              bool `yaml:"json" envconfig:"json"`
		DisableAccessLogs bool `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		SmallBlind         int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind           int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingChips      int `yaml:"startingChips" envconfig:"starting_chips"`
		TurnTimeoutSeconds int `yaml:"turnTimeoutSeconds" envconfig:"turn_timeout_seconds"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.ListenAddr = ":5080"
	c.Log.Level = "info"
	c.Game.SmallBlind = 25
	c.Game.BigBlind = 50
	c.Game.StartingChips = 1000
	c.Game.TurnTimeoutSeconds = 30
	return c
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and environment still apply
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HHS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hhs", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
