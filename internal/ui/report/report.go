// Package report renders check results for people reading a terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	checkdto "jsoncheck/internal/modules/check/dto"
	"jsoncheck/internal/ui/theme"
)

const (
	statusValid           = "valid"
	statusNeedsFormatting = "needs_formatting"
	statusError           = "error"
)

type Options struct {
	// ShowCanonical prints the canonical text under each file that needs
	// formatting.
	ShowCanonical bool
}

func Render(out checkdto.CheckOutput, opts Options) string {
	sb := strings.Builder{}
	sb.WriteString(theme.Title.Render("jsoncheck"))
	sb.WriteString("  ")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("indent=%d sort_keys=%t", out.IndentSize, out.SortKeys)))
	sb.WriteString("\n\n")

	for _, f := range out.Files {
		sb.WriteString(fileLine(f))
		sb.WriteString("\n")
		if opts.ShowCanonical && f.Status == statusNeedsFormatting {
			sb.WriteString(theme.Code.Render(f.Canonical))
			sb.WriteString("\n")
		}
	}
	if len(out.Files) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(summary(out))
	if out.Elapsed > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  (%s)", out.Elapsed.Round(time.Microsecond))))
	}
	sb.WriteString("\n")
	return sb.String()
}

func fileLine(f checkdto.FileReport) string {
	switch f.Status {
	case statusValid:
		return theme.Pass.Render("ok  ") + " " + f.Path
	case statusNeedsFormatting:
		return theme.Warn.Render("fmt ") + " " + f.Path
	case statusError:
		return theme.Fail.Render("err ") + " " + f.Path + theme.Muted.Render("  "+f.Message)
	default:
		return "?    " + f.Path
	}
}

func summary(out checkdto.CheckOutput) string {
	if out.Success {
		return theme.Pass.Render(out.Output)
	}
	lines := []string{theme.Fail.Render(headline(out.Error))}
	if out.Suggestion != "" {
		lines = append(lines, theme.Muted.Render(out.Suggestion))
	}
	return strings.Join(lines, "\n")
}

// headline collapses the multi-line error of the syntax branch into a count.
func headline(msg string) string {
	n := strings.Count(msg, "\n") + 1
	if n == 1 {
		return msg
	}
	return fmt.Sprintf("%d file(s) have errors", n)
}
