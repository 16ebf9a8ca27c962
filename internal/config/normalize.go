package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NormalizeConfig holds configuration for the normalize command.
type NormalizeConfig struct {
	In                 string
	Out                string
	Errors             string
	Append             bool
	WrappedNativeAsset string
	UnwrapNativeAsset  bool
	PGDSN              string
	BatchSize          int
	LogLevel           string
}

// LoadNormalize merges config file, environment variables, and flags into NormalizeConfig.
func LoadNormalize(cfgFile string, flags *pflag.FlagSet) (NormalizeConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("NORMALIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("out", "./data/normalized_pools.jsonl")
	v.SetDefault("errors", "./data/normalize_errors.jsonl")
	v.SetDefault("append", false)
	v.SetDefault("unwrap-native-asset", false)
	v.SetDefault("batch-size", 500)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return NormalizeConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return NormalizeConfig{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return NormalizeConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := NormalizeConfig{
		In:                 v.GetString("in"),
		Out:                v.GetString("out"),
		Errors:             v.GetString("errors"),
		Append:             v.GetBool("append"),
		WrappedNativeAsset: v.GetString("wrapped-native-asset"),
		UnwrapNativeAsset:  v.GetBool("unwrap-native-asset"),
		PGDSN:              v.GetString("pg-dsn"),
		BatchSize:          v.GetInt("batch-size"),
		LogLevel:           v.GetString("log-level"),
	}

	return cfg, nil
}
