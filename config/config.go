package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"goflare.io/lookup/models/enum"
)

const (
	ServerStartPort = ":8080"
)

var ErrMissingUserIDKey = errors.New("user id metadata key is not configured")

type Config struct {
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Metadata MetadataConfig `mapstructure:"metadata"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
}

// StripeConfig holds one secret key per regional account. An empty key means
// the region is skipped during lookup.
type StripeConfig struct {
	USDKey string `mapstructure:"usd_key"`
	CADKey string `mapstructure:"cad_key"`
	AUDKey string `mapstructure:"aud_key"`
	APIURL string `mapstructure:"api_url"`
}

// MetadataConfig names the metadata keys read from charges and refunds. An
// empty RefundUserIDKey or UserIDPrefixes leaves the formatter's defaults in place.
type MetadataConfig struct {
	UserIDKey       string   `mapstructure:"user_id_key"`
	RefundUserIDKey string   `mapstructure:"refund_user_id_key"`
	UserIDPrefixes  []string `mapstructure:"user_id_prefixes"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// KeyFor returns the secret key configured for region, or "" when none is.
func (s StripeConfig) KeyFor(region enum.Region) string {
	if !region.IsValid() {
		return ""
	}

	switch region {
	case enum.RegionUSD:
		return s.USDKey
	case enum.RegionCAD:
		return s.CADKey
	}
	return s.AUDKey
}

var envBindings = map[string]string{
	"stripe.usd_key":              "US_API_KEY",
	"stripe.cad_key":              "CA_API_KEY",
	"stripe.aud_key":              "AU_API_KEY",
	"stripe.api_url":              "STRIPE_API_URL",
	"metadata.user_id_key":        "USER_ID_METADATA_KEY",
	"metadata.refund_user_id_key": "REFUND_USER_ID_METADATA_KEY",
	"metadata.user_id_prefixes":   "USER_ID_PREFIXES",
	"log.level":                   "LOG_LEVEL",
	"server.addr":                 "SERVER_ADDR",
}

func ProvideApplicationConfig() (*Config, error) {

	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Load(v)
}

// Load binds the environment variables and defaults onto v and decodes the
// result. Config files, if any, must already have been read into v.
func Load(v *viper.Viper) (*Config, error) {

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ServerStartPort)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Metadata.UserIDKey == "" {
		return nil, ErrMissingUserIDKey
	}

	return &config, nil
}

func ProvideStripeConfig(appConfig *Config) StripeConfig {
	return appConfig.Stripe
}

func NewLogger(appConfig *Config) (*zap.Logger, error) {

	level, err := zapcore.ParseLevel(appConfig.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", appConfig.Log.Level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	return zapConfig.Build()
}
