package report_test

import (
	"strings"
	"testing"
	"time"

	checkdto "jsoncheck/internal/modules/check/dto"
	"jsoncheck/internal/ui/report"
)

func TestRenderSuccess(t *testing.T) {
	t.Parallel()
	out := checkdto.CheckOutput{
		Success:    true,
		Output:     "All 1 JSON file(s) are valid and properly formatted",
		IndentSize: 2,
		Files:      []checkdto.FileReport{{Path: "a.json", Status: "valid"}},
	}
	got := report.Render(out, report.Options{})
	for _, want := range []string{"indent=2 sort_keys=false", "a.json", "All 1 JSON file(s)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("render missing %q:\n%s", want, got)
		}
	}
}

func TestRenderShowsCanonicalOnlyWhenAsked(t *testing.T) {
	t.Parallel()
	out := checkdto.CheckOutput{
		Error:      "1 file(s) need formatting",
		Suggestion: "Run formatter with indent=2 and sort_keys=False",
		IndentSize: 2,
		Files:      []checkdto.FileReport{{Path: "a.json", Status: "needs_formatting", Canonical: `"canonical-marker"`}},
	}
	if got := report.Render(out, report.Options{}); strings.Contains(got, "canonical-marker") {
		t.Fatalf("canonical text printed without ShowCanonical:\n%s", got)
	}
	got := report.Render(out, report.Options{ShowCanonical: true})
	if !strings.Contains(got, "canonical-marker") || !strings.Contains(got, "Run formatter") {
		t.Fatalf("unexpected render:\n%s", got)
	}
}

func TestRenderCollapsesMultipleErrors(t *testing.T) {
	t.Parallel()
	out := checkdto.CheckOutput{
		Error: "a.json: File not found: a.json\nb.json: Invalid JSON at line 1, column 2: x",
		Files: []checkdto.FileReport{
			{Path: "a.json", Status: "error", Message: "File not found: a.json"},
			{Path: "b.json", Status: "error", Message: "Invalid JSON at line 1, column 2: x"},
		},
	}
	got := report.Render(out, report.Options{})
	if !strings.Contains(got, "2 file(s) have errors") || !strings.Contains(got, "Invalid JSON at line 1, column 2") {
		t.Fatalf("unexpected render:\n%s", got)
	}
}

func TestRenderElapsed(t *testing.T) {
	t.Parallel()
	out := checkdto.CheckOutput{Success: true, Output: "All 0 JSON file(s) are valid and properly formatted"}
	if got := report.Render(out, report.Options{}); strings.Contains(got, "(") {
		t.Fatalf("zero elapsed should not be printed:\n%s", got)
	}
	out.Elapsed = 1500 * time.Millisecond
	if got := report.Render(out, report.Options{}); !strings.Contains(got, "1.5s") {
		t.Fatalf("missing elapsed:\n%s", got)
	}
}
