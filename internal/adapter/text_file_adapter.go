package adapter

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"

	m "github.com/mouse-blink/junitmig/internal/model"
)

// TextFileAdapter converts between file bytes and the line model the fixers
// work on, preserving line endings so untouched lines round-trip exactly.
type TextFileAdapter interface {
	// Decode splits data into lines and records its hash and line endings.
	Decode(path m.Path, data []byte) m.Source
	// Encode joins lines using the line endings recorded in source.
	Encode(source m.Source, lines []string) []byte
}

// LocalTextFileAdapter is the default TextFileAdapter.
type LocalTextFileAdapter struct{}

// NewLocalTextFileAdapter constructs a LocalTextFileAdapter.
func NewLocalTextFileAdapter() *LocalTextFileAdapter {
	return &LocalTextFileAdapter{}
}

// Decode builds a Source from raw file content. A file is treated as CRLF
// only when every line break is "\r\n"; mixed files keep their "\r" bytes
// inside the lines.
func (a *LocalTextFileAdapter) Decode(path m.Path, data []byte) m.Source {
	source := m.Source{
		Path: path,
		Hash: fmt.Sprintf("%x", sha256.Sum256(data)),
	}

	lf := bytes.Count(data, []byte("\n"))
	crlf := bytes.Count(data, []byte("\r\n"))
	source.CRLF = lf > 0 && lf == crlf

	text := string(data)
	if source.CRLF {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}

	if strings.HasSuffix(text, "\n") {
		source.TrailingNewline = true
		text = strings.TrimSuffix(text, "\n")
	}

	if text == "" && !source.TrailingNewline {
		source.Lines = []string{}

		return source
	}

	source.Lines = strings.Split(text, "\n")

	return source
}

// Encode renders lines back to bytes.
func (a *LocalTextFileAdapter) Encode(source m.Source, lines []string) []byte {
	sep := "\n"
	if source.CRLF {
		sep = "\r\n"
	}

	var buf bytes.Buffer

	buf.WriteString(strings.Join(lines, sep))

	if source.TrailingNewline && len(lines) > 0 {
		buf.WriteString(sep)
	}

	return buf.Bytes()
}
