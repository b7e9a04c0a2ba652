package domain

import (
	"fmt"
	"strings"

	apperrors "jsoncheck/internal/platform/errors"
)

type Command string

const CommandCheck Command = "check"

func (c Command) Validate() error {
	switch c {
	case CommandCheck:
		return nil
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownCommand, string(c))
	}
}

var jsonSuffixes = []string{".json", ".jsonc"}

// IsJSONFile reports whether path carries a JSON-family suffix. Matching is
// case-sensitive.
func IsJSONFile(path string) bool {
	for _, suffix := range jsonSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

type FormatOptions struct {
	IndentSize int
	SortKeys   bool
}

func (o FormatOptions) Validate() error {
	if o.IndentSize < 1 {
		return fmt.Errorf("%w: indent size must be positive, got %d", apperrors.ErrInvalidConfig, o.IndentSize)
	}
	return nil
}

// SortKeysLabel spells the flag the way the host's formatter reports it.
func (o FormatOptions) SortKeysLabel() string {
	if o.SortKeys {
		return "True"
	}
	return "False"
}

func (o FormatOptions) String() string {
	return fmt.Sprintf("indent=%d, sort_keys=%s", o.IndentSize, o.SortKeysLabel())
}

type OutcomeKind int

const (
	OutcomeValid OutcomeKind = iota
	OutcomeNeedsFormatting
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeValid:
		return "valid"
	case OutcomeNeedsFormatting:
		return "needs_formatting"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the verdict for a single file. Canonical is set only for
// OutcomeNeedsFormatting and Message only for OutcomeError.
type Outcome struct {
	Kind      OutcomeKind
	Canonical string
	Message   string
}

func Valid() Outcome {
	return Outcome{Kind: OutcomeValid}
}

func NeedsFormatting(canonical string) Outcome {
	return Outcome{Kind: OutcomeNeedsFormatting, Canonical: canonical}
}

func Failed(message string) Outcome {
	return Outcome{Kind: OutcomeError, Message: message}
}

type FileResult struct {
	Path    string
	Outcome Outcome
}
