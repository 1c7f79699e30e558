package model

// FileResult holds the outcome of fixing a single file.
type FileResult struct {
	Path    Path     `json:"path" yaml:"path"`
	Kind    string   `json:"kind" yaml:"kind"`
	Fixes   int      `json:"fixes" yaml:"fixes"`
	Skipped int      `json:"skipped" yaml:"skipped"`
	Ignored int      `json:"ignored" yaml:"ignored"`
	Written bool     `json:"written" yaml:"written"`
	Changes []Change `json:"-" yaml:"-"`
	// Diff is a unified diff of the file before and after the fixes.
	Diff  string `json:"diff,omitempty" yaml:"diff,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Changed reports whether at least one fix was applied (or would be).
func (r FileResult) Changed() bool {
	return r.Fixes > 0
}

// Summary accumulates the results of one run.
type Summary struct {
	Kind    string       `json:"kind" yaml:"kind"`
	Mode    Mode         `json:"mode" yaml:"mode"`
	Files   int          `json:"files" yaml:"files"`
	Changed int          `json:"changed" yaml:"changed"`
	Fixes   int          `json:"fixes" yaml:"fixes"`
	Skipped int          `json:"skipped" yaml:"skipped"`
	Missing []Path       `json:"missing,omitempty" yaml:"missing,omitempty"`
	Failed  []Path       `json:"failed,omitempty" yaml:"failed,omitempty"`
	Results []FileResult `json:"results" yaml:"results,omitempty"`
}

// Add folds a file result into the summary.
func (s *Summary) Add(r FileResult) {
	s.Files++
	s.Fixes += r.Fixes
	s.Skipped += r.Skipped

	if r.Changed() {
		s.Changed++
	}

	if r.Error != "" {
		s.Failed = append(s.Failed, r.Path)
	}

	s.Results = append(s.Results, r)
}

// Clean reports whether no file was missing or failed.
func (s Summary) Clean() bool {
	return len(s.Missing) == 0 && len(s.Failed) == 0
}
