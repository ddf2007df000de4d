package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	JwtTTLHours            int    `yaml:"jwt_ttl_hours"`
	MessagesPerPage        int    `yaml:"messages_per_page"`        // pagination window for message listings
	NotificationsPageLimit int    `yaml:"notifications_page_limit"` // how many recent notifications a fetch returns
	TagPreviewLen          int    `yaml:"tag_preview_len"`          // chars of the body quoted in a tag notification
	SchedulerTickMs        int    `yaml:"scheduler_tick_ms"`        // deferred-delivery poll interval
	LogLevel               string `yaml:"log_level"`
	LogJSON                bool   `yaml:"log_json"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

// implementing service config interfaces

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return time.Duration(s.Public.JwtTTLHours) * time.Hour
}

func (s *Config) SchedulerTick() time.Duration {
	return time.Duration(s.Public.SchedulerTickMs) * time.Millisecond
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}

// Default returns the config used by tests and local tooling that has no
// yaml folder to load from.
func Default() *Config {
	return &Config{
		Public: Public{
			JwtTTLHours:            24,
			MessagesPerPage:        50,
			NotificationsPageLimit: 20,
			TagPreviewLen:          20,
			SchedulerTickMs:        250,
			LogLevel:               "info",
		},
		private: Private{JwtKey: "test-key"},
	}
}
