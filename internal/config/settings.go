// Package config loads persistent junitmig settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = ".junitmig.yml"

// Settings holds the CLI defaults loaded from a config file.
type Settings struct {
	TestDir string `yaml:"test_dir"`
	Pattern string `yaml:"pattern"`

	// Assertion rewriter
	Methods            []string `yaml:"methods,omitempty"`
	ExtendedMethods    []string `yaml:"extended_methods,omitempty"`
	MessageBuilders    []string `yaml:"message_builders,omitempty"`
	ConditionMarkers   []string `yaml:"condition_markers,omitempty"`
	ColumnBudget       int      `yaml:"column_budget"`
	ContinuationIndent int      `yaml:"continuation_indent"`

	JUnit5  *JUnit5Config  `yaml:"junit5,omitempty"`
	Javadoc *JavadocConfig `yaml:"javadoc,omitempty"`
	CI      *CIConfig      `yaml:"ci,omitempty"`
}

// JUnit5Config holds settings for the migrate command.
type JUnit5Config struct {
	// Tags added to classes without one; an empty list disables tagging.
	Tags []string `yaml:"tags"`
}

// JavadocConfig holds settings for the javadoc command.
type JavadocConfig struct {
	Reports string `yaml:"reports"` // glob of checkstyle-result.xml files
}

// CIConfig holds settings for the ci command.
type CIConfig struct {
	Workflow string   `yaml:"workflow"`
	Rules    []CIRule `yaml:"rules,omitempty"`
}

// CIRule is a custom per-line substitution applied to the workflow file.
type CIRule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	return &Settings{
		TestDir:            "object/src/test/java/object",
		Pattern:            "*Test.java",
		Methods:            []string{"assertTrue", "assertFalse"},
		MessageBuilders:    []string{"constructWrongValueMessage"},
		ColumnBudget:       100,
		ContinuationIndent: 4,
		JUnit5:             &JUnit5Config{Tags: []string{"unit", "fast"}},
		Javadoc:            &JavadocConfig{Reports: "*/target/checkstyle-result.xml"},
		CI:                 &CIConfig{Workflow: ".github/workflows/maven-build.yml"},
	}
}

// LoadSettings reads a YAML config file over the defaults.
// If the file does not exist, it returns the defaults and nil error.
func LoadSettings(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}

		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return s, nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (s *Settings) Validate() error {
	if s.ColumnBudget <= 0 {
		return fmt.Errorf("column_budget must be positive, got %d", s.ColumnBudget)
	}

	if s.ContinuationIndent < 0 {
		return fmt.Errorf("continuation_indent must not be negative, got %d", s.ContinuationIndent)
	}

	if strings.TrimSpace(s.Pattern) == "" {
		return errors.New("pattern must not be empty")
	}

	for _, name := range append(append([]string{}, s.Methods...), s.ExtendedMethods...) {
		if strings.TrimSpace(name) == "" {
			return errors.New("method names must not be empty")
		}
	}

	if s.CI != nil {
		for i, rule := range s.CI.Rules {
			if rule.Pattern == "" {
				return fmt.Errorf("ci.rules[%d]: pattern is required", i)
			}

			if _, err := regexp.Compile(rule.Pattern); err != nil {
				return fmt.Errorf("ci.rules[%d] %q: %w", i, rule.Name, err)
			}
		}
	}

	return nil
}

// Tags returns the configured JUnit 5 tags.
func (s *Settings) Tags() []string {
	if s.JUnit5 == nil || s.JUnit5.Tags == nil {
		return []string{"unit", "fast"}
	}

	return s.JUnit5.Tags
}

// Reports returns the checkstyle report glob.
func (s *Settings) Reports() string {
	if s.Javadoc == nil || s.Javadoc.Reports == "" {
		return "*/target/checkstyle-result.xml"
	}

	return s.Javadoc.Reports
}

// Workflow returns the CI workflow file path.
func (s *Settings) Workflow() string {
	if s.CI == nil || s.CI.Workflow == "" {
		return ".github/workflows/maven-build.yml"
	}

	return s.CI.Workflow
}
