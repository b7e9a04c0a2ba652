package domain

import (
	"fmt"
	"strings"
)

const SuggestionFixSyntax = "Fix JSON syntax errors in the listed files"

type Verdict struct {
	Success    bool
	Output     string
	Error      string
	Suggestion string
	Modified   []string
}

// Aggregate folds per-file results into one verdict. Errors dominate
// formatting issues; formatting issues are only reported when no file
// errored.
func Aggregate(results []FileResult, opts FormatOptions) Verdict {
	var errs, modified, lines []string
	for _, result := range results {
		switch result.Outcome.Kind {
		case OutcomeError:
			errs = append(errs, fmt.Sprintf("%s: %s", result.Path, result.Outcome.Message))
		case OutcomeNeedsFormatting:
			modified = append(modified, result.Path)
			lines = append(lines, fmt.Sprintf("%s: Needs formatting (%s)", result.Path, opts))
		case OutcomeValid:
		}
	}

	switch {
	case len(errs) > 0:
		return Verdict{
			Error:      strings.Join(errs, "\n"),
			Suggestion: SuggestionFixSyntax,
		}
	case len(modified) > 0:
		return Verdict{
			Error:      fmt.Sprintf("%d file(s) need formatting", len(modified)),
			Suggestion: fmt.Sprintf("Run formatter with indent=%d and sort_keys=%s", opts.IndentSize, opts.SortKeysLabel()),
			Modified:   modified,
			Output:     strings.Join(lines, "\n"),
		}
	default:
		return Verdict{
			Success: true,
			Output:  fmt.Sprintf("All %d JSON file(s) are valid and properly formatted", len(results)),
		}
	}
}
