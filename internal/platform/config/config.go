package config

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	apperrors "jsoncheck/internal/platform/errors"
)

const (
	EnvIndentSize = "INDENT_SIZE"
	EnvSortKeys   = "SORT_KEYS"
	EnvLogLevel   = "JSONCHECK_LOG_LEVEL"

	DefaultIndentSize = 2
	DefaultLogLevel   = "warn"
)

type Config struct {
	IndentSize int
	SortKeys   bool
	LogLevel   string
}

// Lookup has the signature of os.LookupEnv.
type Lookup func(key string) (string, bool)

// InvalidValueError reports an environment value that cannot be used.
type InvalidValueError struct {
	Key   string
	Value string
	Hint  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Key, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return apperrors.ErrInvalidConfig
}

func Load(lookup Lookup) (Config, error) {
	cfg := Config{IndentSize: DefaultIndentSize, LogLevel: DefaultLogLevel}
	if raw, ok := lookup(EnvIndentSize); ok {
		size, err := parseIndent(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.IndentSize = size
	}
	if raw, ok := lookup(EnvSortKeys); ok {
		cfg.SortKeys = strings.EqualFold(raw, "true")
	}
	if raw, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(raw) != "" {
		cfg.LogLevel = strings.TrimSpace(raw)
	}
	return cfg, nil
}

func parseIndent(raw string) (int, error) {
	invalid := &InvalidValueError{Key: EnvIndentSize, Value: raw, Hint: "INDENT_SIZE must be a positive integer"}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		return 0, invalid
	}
	size, err := safecast.Conv[int](n)
	if err != nil {
		return 0, invalid
	}
	return size, nil
}
