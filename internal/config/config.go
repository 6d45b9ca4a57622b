package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "https://webservice.thebiogrid.org"
	DefaultTimeout = 30 * time.Second
)

// ErrMissingAccessKey is returned when no BioGRID access key has been configured.
var ErrMissingAccessKey = errors.New("BIOGRID_ACCESS_KEY is not set")

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyTimeout, DefaultTimeout.String())
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp/jsonrpc")
}

func AccessKey() string    { return strings.TrimSpace(viper.GetString(KeyAccessKey)) }
func BaseURL() string      { return viper.GetString(KeyBaseURL) }
func LogLevel() string     { return viper.GetString(KeyLogLevel) }
func Transport() string    { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string         { return viper.GetString(KeyHost) }
func Port() int            { return viper.GetInt(KeyPort) }
func EndpointPath() string { return viper.GetString(KeyEndpointPath) }

// BioGRID holds the settings needed to talk to the upstream service. It is
// built once at startup and never mutated.
type BioGRID struct {
	BaseURL   string
	AccessKey string
	Timeout   time.Duration
}

// LoadBioGRID validates and returns the upstream settings. A missing access key
// yields ErrMissingAccessKey so the caller can decide how to terminate.
func LoadBioGRID() (BioGRID, error) {
	cfg := BioGRID{
		BaseURL:   strings.TrimRight(strings.TrimSpace(BaseURL()), "/"),
		AccessKey: AccessKey(),
	}
	if cfg.AccessKey == "" {
		return BioGRID{}, ErrMissingAccessKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	timeout, err := parseDuration(viper.GetString(KeyTimeout), DefaultTimeout)
	if err != nil {
		return BioGRID{}, fmt.Errorf("invalid %s: %w", KeyTimeout, err)
	}
	if timeout <= 0 {
		return BioGRID{}, fmt.Errorf("invalid %s: must be positive, got %s", KeyTimeout, timeout)
	}
	cfg.Timeout = timeout

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// BindFlag binds a persistent flag whose name differs from its config key.
func BindFlag(root *cobra.Command, key, flag string) {
	if f := root.PersistentFlags().Lookup(flag); f != nil {
		_ = viper.BindPFlag(key, f)
	}
}
