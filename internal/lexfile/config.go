package lexfile

import (
	"fmt"

	"github.com/ian-shakespeare/libtok/pkg/array"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var formats = []string{"text", "json"}

type Config struct {
	Environment string   `mapstructure:"environment"`
	LogLevel    string   `mapstructure:"log_level"`
	Wide        bool     `mapstructure:"wide"`
	Strict      bool     `mapstructure:"strict"`
	Format      string   `mapstructure:"format"`
	Skip        []string `mapstructure:"skip"`
	Rules       []Rule   `mapstructure:"rules"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"wide":      "wide",
	"strict":    "strict",
	"format":    "format",
	"log-level": "log_level",
}

// LoadConfig reads the rule set at path, which may be empty. Values are
// overridden by LIBTOK_* environment variables and then by any flags that were
// set explicitly.
func LoadConfig(path string, flags *pflag.FlagSet) (config Config, err error) {
	v := viper.New()
	v.SetDefault("environment", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("format", "text")
	v.SetEnvPrefix("LIBTOK")
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					return
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("cannot read rule set: %w", err)
			return
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	if len(config.Rules) == 0 {
		config.Rules = DefaultRules()
	}

	err = config.Validate()
	return
}

func (config *Config) Validate() error {
	if !array.Contains(formats, config.Format) {
		return NewRuleErrorf("unknown format %q", config.Format)
	}
	return ValidateRules(config.Rules)
}
