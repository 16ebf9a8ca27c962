package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CheckConfig holds configuration for the check command.
type CheckConfig struct {
	In                 string
	Errors             string
	WrappedNativeAsset string
	UnwrapNativeAsset  bool
	LogLevel           string
}

// LoadCheck merges config file, environment variables, and flags into CheckConfig.
func LoadCheck(cfgFile string, flags *pflag.FlagSet) (CheckConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("NORMALIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("unwrap-native-asset", false)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return CheckConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return CheckConfig{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return CheckConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := CheckConfig{
		In:                 v.GetString("in"),
		Errors:             v.GetString("errors"),
		WrappedNativeAsset: v.GetString("wrapped-native-asset"),
		UnwrapNativeAsset:  v.GetBool("unwrap-native-asset"),
		LogLevel:           v.GetString("log-level"),
	}

	return cfg, nil
}
