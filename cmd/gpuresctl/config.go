package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	cfgKeyBackend    = "backend"
	cfgKeyLogLevel   = "log_level"
	cfgKeyWorkers    = "workers"
	cfgKeyIterations = "iterations"
	cfgKeyBufferSize = "buffer_size"
	cfgKeyRecord     = "record"

	envPrefix = "GPURES"
)

// newConfig returns a Viper instance with defaults applied and GPURES_*
// environment variables bound. An empty backend selects the best
// registered one.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, "")
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyWorkers, 8)
	v.SetDefault(cfgKeyIterations, 1000)
	v.SetDefault(cfgKeyBufferSize, 256)
	v.SetDefault(cfgKeyRecord, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig merges the YAML file at path into v.
// An empty path is not an error.
func loadConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
