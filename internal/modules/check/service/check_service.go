package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	hclog "github.com/hashicorp/go-hclog"

	"jsoncheck/internal/modules/check/domain"
	"jsoncheck/internal/modules/check/dto"
	checkout "jsoncheck/internal/modules/check/port/out"
	"jsoncheck/internal/platform/clock"
	apperrors "jsoncheck/internal/platform/errors"
	"jsoncheck/internal/platform/jsoncanon"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type CheckService struct {
	source checkout.FileSource
	opts   domain.FormatOptions
	logger hclog.Logger
	clock  clock.Clock
}

func NewCheckService(source checkout.FileSource, opts domain.FormatOptions, logger hclog.Logger) (*CheckService, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &CheckService{source: source, opts: opts, logger: logger.Named("check"), clock: clock.SystemClock{}}, nil
}

// WithClock replaces the clock used to time check runs.
func (s *CheckService) WithClock(c clock.Clock) *CheckService {
	s.clock = c
	return s
}

func (s *CheckService) Check(ctx context.Context, input dto.CheckInput) (dto.CheckOutput, error) {
	if err := domain.Command(input.Command).Validate(); err != nil {
		return dto.CheckOutput{}, err
	}
	start := s.clock.Now()
	results := s.CheckFiles(ctx, input.Files)
	verdict := domain.Aggregate(results, s.opts)

	reports := make([]dto.FileReport, 0, len(results))
	for _, r := range results {
		reports = append(reports, dto.FileReport{
			Path:      r.Path,
			Status:    r.Outcome.Kind.String(),
			Message:   r.Outcome.Message,
			Canonical: r.Outcome.Canonical,
		})
	}
	elapsed := s.clock.Now().Sub(start)
	s.logger.Debug("check complete", "checked", len(results), "requested", len(input.Files), "success", verdict.Success, "elapsed", elapsed)
	return dto.CheckOutput{
		Success:    verdict.Success,
		Output:     verdict.Output,
		Error:      verdict.Error,
		Suggestion: verdict.Suggestion,
		Modified:   verdict.Modified,
		IndentSize: s.opts.IndentSize,
		SortKeys:   s.opts.SortKeys,
		Files:      reports,
		Elapsed:    elapsed,
	}, nil
}

// CheckFiles checks the JSON-family paths in input order and silently skips
// everything else.
func (s *CheckService) CheckFiles(ctx context.Context, paths []string) []domain.FileResult {
	results := make([]domain.FileResult, 0, len(paths))
	for _, path := range paths {
		if !domain.IsJSONFile(path) {
			s.logger.Trace("skipping file", "path", path)
			continue
		}
		outcome := s.CheckFile(ctx, path)
		s.logger.Debug("checked file", "path", path, "outcome", outcome.Kind)
		results = append(results, domain.FileResult{Path: path, Outcome: outcome})
	}
	return results
}

func (s *CheckService) CheckFile(ctx context.Context, path string) (outcome domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered while checking file", "path", path, "panic", r)
			outcome = domain.Failed(fmt.Sprint(r))
		}
	}()

	content, err := s.source.Read(ctx, path)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Failed("File not found: " + path)
		}
		return domain.Failed(err.Error())
	}
	return Evaluate(content, s.opts)
}

// Evaluate decides the outcome for one file's content. Line endings are
// normalized to "\n" before parsing, and trailing whitespace of the original
// is ignored when comparing against the canonical form.
func Evaluate(content []byte, opts domain.FormatOptions) domain.Outcome {
	if !utf8.Valid(content) {
		return domain.Failed("invalid UTF-8 content")
	}
	text := newlines.Replace(string(content))
	value, err := jsoncanon.Parse([]byte(text))
	if err != nil {
		var syntaxErr *jsoncanon.SyntaxError
		if errors.As(err, &syntaxErr) {
			return domain.Failed(fmt.Sprintf("Invalid JSON at line %d, column %d: %s", syntaxErr.Line, syntaxErr.Column, syntaxErr.Msg))
		}
		return domain.Failed(err.Error())
	}
	canonical := jsoncanon.Encode(value, jsoncanon.Options{Indent: opts.IndentSize, SortKeys: opts.SortKeys})
	if canonical == strings.TrimRightFunc(text, unicode.IsSpace) {
		return domain.Valid()
	}
	return domain.NeedsFormatting(canonical)
}
