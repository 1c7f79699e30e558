package adapter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// ReportStore persists and retrieves run summaries.
type ReportStore interface {
	SaveReport(path m.Path, summary m.Summary) error
	LoadReport(path m.Path) (m.Summary, error)
}

// LocalReportStore writes reports as JSON, or YAML when the path ends in
// .yaml or .yml.
type LocalReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore constructs a ReportStore writing through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveReport encodes summary and atomically writes it to path.
func (rs *LocalReportStore) SaveReport(path m.Path, summary m.Summary) error {
	if path == "" {
		return fmt.Errorf("report path is empty")
	}

	var (
		data []byte
		err  error
	)

	if isYAML(path) {
		data, err = yaml.Marshal(summary)
	} else {
		data, err = json.MarshalIndent(summary, "", "  ")
		data = append(data, '\n')
	}

	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := rs.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.Summary, error) {
	var summary m.Summary

	data, err := rs.fs.ReadFile(path)
	if err != nil {
		return summary, fmt.Errorf("read report: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &summary)
	} else {
		err = json.Unmarshal(data, &summary)
	}

	if err != nil {
		return summary, fmt.Errorf("decode report %s: %w", path, err)
	}

	return summary, nil
}

func isYAML(path m.Path) bool {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
