package dto

import "time"

type CheckInput struct {
	Command string
	Files   []string
	Config  map[string]any
}

type FileReport struct {
	Path      string
	Status    string
	Message   string
	Canonical string
}

type CheckOutput struct {
	Success    bool
	Output     string
	Error      string
	Suggestion string
	Modified   []string
	IndentSize int
	SortKeys   bool
	Files      []FileReport
	Elapsed    time.Duration
}
