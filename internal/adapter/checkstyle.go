package adapter

import (
	"encoding/xml"
	"fmt"
	"strings"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// Violation is one error entry of a checkstyle report.
type Violation struct {
	Path    m.Path
	Line    int
	Message string
}

type checkstyleReport struct {
	Files []struct {
		Name   string `xml:"name,attr"`
		Errors []struct {
			Line     int    `xml:"line,attr"`
			Severity string `xml:"severity,attr"`
			Message  string `xml:"message,attr"`
			Source   string `xml:"source,attr"`
		} `xml:"error"`
	} `xml:"file"`
}

// CheckstyleReader extracts violations from checkstyle XML reports.
type CheckstyleReader interface {
	// Read returns the violations of a report whose message contains filter.
	// An empty filter keeps every violation.
	Read(path m.Path, filter string) ([]Violation, error)
}

type checkstyleReader struct {
	fs SourceFSAdapter
}

// NewCheckstyleReader constructs a CheckstyleReader reading through fs.
func NewCheckstyleReader(fs SourceFSAdapter) CheckstyleReader {
	return &checkstyleReader{fs: fs}
}

func (r *checkstyleReader) Read(path m.Path, filter string) ([]Violation, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checkstyle report: %w", err)
	}

	var report checkstyleReport
	if err := xml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse checkstyle report %s: %w", path, err)
	}

	var violations []Violation

	for _, file := range report.Files {
		for _, e := range file.Errors {
			if filter != "" && !strings.Contains(e.Message, filter) {
				continue
			}

			violations = append(violations, Violation{
				Path:    m.Path(file.Name),
				Line:    e.Line,
				Message: e.Message,
			})
		}
	}

	return violations, nil
}
