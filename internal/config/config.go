package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/csheth/convoy/internal/api"
)

const (
	KeyAPIBaseURL     = "api_base_url"
	KeyLogFile        = "log_file"
	KeyDebug          = "debug"
	KeyRequestTimeout = "request_timeout"
	KeyNoAltScreen    = "no_alt_screen"
)

// Config is resolved once at process start and never changes afterwards.
type Config struct {
	APIBaseURL     string
	LogFile        string
	Debug          bool
	RequestTimeout time.Duration
	NoAltScreen    bool
}

// NewViper returns a viper instance reading CONVOY_* variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CONVOY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(KeyAPIBaseURL)
	_ = v.BindEnv(KeyLogFile)
	_ = v.BindEnv(KeyDebug)
	_ = v.BindEnv(KeyRequestTimeout)
	_ = v.BindEnv(KeyNoAltScreen)

	v.SetDefault(KeyAPIBaseURL, api.DefaultBaseURL)
	v.SetDefault(KeyRequestTimeout, "0s")
	return v
}

// Load reads envFile into the process environment when it exists, then
// resolves the configuration from v. Flags bound to v take precedence over
// the environment. A nil v uses NewViper.
func Load(envFile string, v *viper.Viper) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if v == nil {
		v = NewViper()
	}

	timeout, err := parseTimeout(v.GetString(KeyRequestTimeout))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		APIBaseURL:     strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
		LogFile:        strings.TrimSpace(v.GetString(KeyLogFile)),
		Debug:          v.GetBool(KeyDebug),
		RequestTimeout: timeout,
		NoAltScreen:    v.GetBool(KeyNoAltScreen),
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = api.DefaultBaseURL
	}
	return cfg, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", KeyRequestTimeout, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", KeyRequestTimeout, raw)
	}
	return d, nil
}
