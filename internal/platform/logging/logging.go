package logging

import (
	"io"

	hclog "github.com/hashicorp/go-hclog"
)

// New returns a stderr-style logger. Unknown level names fall back to warn.
func New(level string, out io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "jsoncheck",
		Level:  lvl,
		Output: out,
	})
}

func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
