package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Category string

const (
	CategoryFormatting    Category = "formatting"
	CategoryLinting       Category = "linting"
	CategorySecurity      Category = "security"
	CategoryTesting       Category = "testing"
	CategoryDocumentation Category = "documentation"
	CategoryCustom        Category = "custom"
)

var categories = []Category{
	CategoryFormatting,
	CategoryLinting,
	CategorySecurity,
	CategoryTesting,
	CategoryDocumentation,
	CategoryCustom,
}

func (c Category) Validate() error {
	for _, known := range categories {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("invalid category %q, must be one of: %v", string(c), categories)
}

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func (f Format) Validate() error {
	switch f {
	case FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown manifest format: %s", f)
	}
}

var (
	ErrInvalidManifest  = errors.New("invalid plugin manifest")
	ErrManifestNotFound = errors.New("no manifest file found (looked for plugin.yaml, plugin.yml, plugin.json)")
)

// FileNames lists manifest file names in lookup order.
var FileNames = []string{"plugin.yaml", "plugin.yml", "plugin.json"}

// Manifest is the registry entry a pre-commit host reads to run a plugin.
type Manifest struct {
	Name          string            `json:"name" yaml:"name"`
	Version       string            `json:"version" yaml:"version"`
	Description   string            `json:"description" yaml:"description"`
	Author        string            `json:"author,omitempty" yaml:"author,omitempty"`
	Executable    string            `json:"executable" yaml:"executable"`
	Args          []string          `json:"args,omitempty" yaml:"args,omitempty"`
	FilePatterns  []string          `json:"file_patterns" yaml:"file_patterns"`
	Timeout       string            `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Category      Category          `json:"category,omitempty" yaml:"category,omitempty"`
	RequiresFiles bool              `json:"requires_files,omitempty" yaml:"requires_files,omitempty"`
	Environment   map[string]string `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// Problems returns every validation failure, in field order.
func (m Manifest) Problems() []string {
	var problems []string
	if m.Name == "" {
		problems = append(problems, "plugin name is required")
	}
	if m.Version == "" {
		problems = append(problems, "plugin version is required")
	}
	if m.Description == "" {
		problems = append(problems, "plugin description is required")
	}
	if m.Executable == "" {
		problems = append(problems, "plugin executable is required")
	}
	if len(m.FilePatterns) == 0 {
		problems = append(problems, "at least one file pattern is required")
	}
	if m.Timeout != "" {
		if _, err := time.ParseDuration(m.Timeout); err != nil {
			problems = append(problems, fmt.Sprintf("invalid timeout format: %v", err))
		}
	}
	if m.Category != "" {
		if err := m.Category.Validate(); err != nil {
			problems = append(problems, err.Error())
		}
	}
	return problems
}

func (m Manifest) Validate() error {
	problems := m.Problems()
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(problems, "; "))
}

// Default describes this plugin, with the environment pinned to the active
// format options.
func Default(version string, indentSize int, sortKeys bool) Manifest {
	return Manifest{
		Name:          "json-validator",
		Version:       version,
		Description:   "Validates JSON syntax and canonical formatting",
		Executable:    "jsoncheck",
		FilePatterns:  []string{"*.json", "*.jsonc"},
		Timeout:       "30s",
		Category:      CategoryFormatting,
		RequiresFiles: true,
		Environment: map[string]string{
			"INDENT_SIZE": strconv.Itoa(indentSize),
			"SORT_KEYS":   strconv.FormatBool(sortKeys),
		},
	}
}
