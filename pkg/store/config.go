package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where the ledger lives when nothing else is configured.
	DefaultPath     = "db.json"
	DefaultCurrency = "USD"
	DefaultFallback = "ancestor"
)

// Config locates the ledger file and carries the session defaults.
type Config interface {
	// Path is the ledger file.
	Path() string
	// Currency is the ISO code new account changes are recorded in.
	Currency() string
	// Fallback names the page fallback policy.
	Fallback() string
	// Source is the config file that was read, empty when none was found.
	Source() string
}

// LoadConfig reads .ledger.yaml from $LEDGER_CONFIG_PATH or the working
// directory. LEDGER_PATH, LEDGER_CURRENCY and LEDGER_FALLBACK override it, and
// flags bound to the same keys override those.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", DefaultPath)
	viper.SetDefault("currency", DefaultCurrency)
	viper.SetDefault("fallback", DefaultFallback)
	viper.SetConfigName(".ledger") // .yaml is implicit
	viper.SetEnvPrefix("LEDGER")
	viper.AutomaticEnv()

	if override := os.Getenv("LEDGER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		path:     filepath.Clean(path),
		currency: viper.GetString("currency"),
		fallback: viper.GetString("fallback"),
		source:   viper.ConfigFileUsed(),
	}, nil
}

// NewConfig builds a Config without consulting viper.
func NewConfig(path, currency, fallback string) Config {
	return &fileConfig{path: path, currency: currency, fallback: fallback}
}

type fileConfig struct {
	path     string
	currency string
	fallback string
	source   string
}

func (f *fileConfig) Path() string {
	return f.path
}

func (f *fileConfig) Currency() string {
	return f.currency
}

func (f *fileConfig) Fallback() string {
	return f.fallback
}

func (f *fileConfig) Source() string {
	return f.source
}
