package arranged

import (
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultThreshold is the classic question: the first arrangement with more
// than a trillion discs.
const DefaultThreshold = "1000000000000"

// Config carries the driver-level settings. The computation itself needs
// none of this; it exists so the CLI and embedding programs resolve
// threshold and logging the same way. Precedence: flags > environment >
// defaults.
type Config struct {
	// Threshold is the total disc count to search past, as a decimal
	// string (values exceed int64 quickly, so it stays a string until
	// parsed into a big.Int).
	Threshold string `env:"ARRANGED_THRESHOLD"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"ARRANGED_LOG_LEVEL"`

	// Verbose logs every intermediate arrangement during the search.
	Verbose bool `env:"ARRANGED_VERBOSE"`
}

// DefaultConfig returns the stock settings: 10^12 threshold, info logging.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		LogLevel:  "info",
	}
}

// LoadConfig returns DefaultConfig overlaid with any ARRANGED_* environment
// variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("arranged: parse environment: %w", err)
	}
	return cfg, nil
}

// ParseThreshold parses a decimal string into a search threshold, enforcing
// the input contract: a positive integer, arbitrary magnitude.
func ParseThreshold(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidThreshold, s)
	}
	if n.Sign() < 1 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidThreshold, n)
	}
	return n, nil
}

// ThresholdInt returns the configured threshold as a big.Int.
func (c Config) ThresholdInt() (*big.Int, error) {
	return ParseThreshold(c.Threshold)
}

// SlogLevel maps the configured level name onto slog. Unknown names fall
// back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
