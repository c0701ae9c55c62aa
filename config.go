package starnav

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// Config holds the process-wide tunables read from the TOML file
// pointed to by STARNAV_CONFIG. Unlike the body catalog (an Arena,
// constructed explicitly and passed by handle) this is deliberately
// the one piece of global state: every planning request reads the
// same operational knobs regardless of who constructed its PathFinder.
type Config struct {
	OutputDir        string
	LogLevel         string
	SearchLogEnabled bool
	SearchLogPath    string
	DefaultMaxAccelG float64
}

var (
	cfgOnce   sync.Once
	cfgLoaded Config
	cfgErr    error
)

// LoadConfig reads and memoizes the configuration named by the
// STARNAV_CONFIG environment variable (a directory containing
// config.toml). Subsequent calls return the memoized value; a failure
// on the first call is memoized too, matching a lazy singleton that
// should never be re-read mid-process.
func LoadConfig() (Config, error) {
	cfgOnce.Do(func() {
		cfgLoaded, cfgErr = loadConfig()
	})
	return cfgLoaded, cfgErr
}

func loadConfig() (Config, error) {
	dir := os.Getenv("STARNAV_CONFIG")
	if dir == "" {
		return Config{}, fmt.Errorf("starnav: environment variable STARNAV_CONFIG is missing or empty")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetDefault("general.output_path", ".")
	v.SetDefault("general.log_level", "info")
	v.SetDefault("search.log_enabled", false)
	v.SetDefault("search.log_path", "./search_log.txt")
	v.SetDefault("search.default_max_accel_g", MaxAccelG)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("starnav: reading %s/config.toml: %w", dir, err)
	}

	return Config{
		OutputDir:        v.GetString("general.output_path"),
		LogLevel:         v.GetString("general.log_level"),
		SearchLogEnabled: v.GetBool("search.log_enabled"),
		SearchLogPath:    v.GetString("search.log_path"),
		DefaultMaxAccelG: v.GetFloat64("search.default_max_accel_g"),
	}, nil
}

// resetConfigForTest clears the memoized configuration so tests can
// exercise LoadConfig's error and success paths independently.
func resetConfigForTest() {
	cfgOnce = sync.Once{}
	cfgLoaded = Config{}
	cfgErr = nil
}
