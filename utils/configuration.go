package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr                 string   `mapstructure:"ADDR"`
	GinMode              string   `mapstructure:"GIN_MODE"`
	LogLevel             string   `mapstructure:"LOG_LEVEL"`
	LogFormat            string   `mapstructure:"LOG_FORMAT"`
	UploadDir            string   `mapstructure:"UPLOAD_DIR"`
	UploadHealthInterval int64    `mapstructure:"UPLOAD_HEALTH_INTERVAL"`
	CORSAllowOrigin      string   `mapstructure:"CORS_ALLOW_ORIGIN"`
	Compression          bool     `mapstructure:"COMPRESSION"`
	TrustedProxies       []string `mapstructure:"TRUSTED_PROXIES"`
}

// UploadHealthEvery - polling period of the upload dir check, zero when disabled.
func (c *Config) UploadHealthEvery() time.Duration {
	if c.UploadHealthInterval <= 0 {
		return 0
	}
	return time.Duration(c.UploadHealthInterval) * time.Second
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ADDR", ":3000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_HEALTH_INTERVAL", 30)
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("COMPRESSION", true)
	v.SetDefault("TRUSTED_PROXIES", []string{"127.0.0.1"})
}

// LoadConfiguration reads a json config file, environment variables prefixed with
// EXERCISES_ take precedence. A missing file leaves the defaults in place.
func LoadConfiguration(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("EXERCISES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
