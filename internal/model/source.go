// Package model defines the data structures shared by the migration workflow.
package model

// Path represents a file system path.
type Path string

// Source is a file loaded for fixing: its location, fingerprint and lines.
type Source struct {
	Path Path
	// Hash is the SHA-256 of the bytes the lines were decoded from.
	Hash  string
	Lines []string
	// CRLF is set when every line break in the file is "\r\n".
	CRLF bool
	// TrailingNewline is set when the file ends with a line break.
	TrailingNewline bool
}

// Mode selects whether a run only reports changes or also writes them.
type Mode string

const (
	// ModePreview reports intended changes and writes nothing.
	ModePreview Mode = "preview"
	// ModeApply writes changed files back in place.
	ModeApply Mode = "apply"
)

// Writes reports whether files are written in this mode.
func (md Mode) Writes() bool {
	return md == ModeApply
}
