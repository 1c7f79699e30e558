package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/junitmig/internal/adapter"
	m "github.com/mouse-blink/junitmig/internal/model"
)

// ErrSourceChanged is returned when a file changed on disk between reading and
// writing it.
var ErrSourceChanged = errors.New("file changed since it was read")

// Committer writes fixed lines back over the file they were read from.
type Committer interface {
	Commit(source m.Source, lines []string) error
}

type committer struct {
	fsAdapter   adapter.SourceFSAdapter
	textAdapter adapter.TextFileAdapter
}

// NewCommitter constructs a Committer backed by the provided filesystem and
// text adapters.
func NewCommitter(fsAdapter adapter.SourceFSAdapter, textAdapter adapter.TextFileAdapter) Committer {
	return &committer{
		fsAdapter:   fsAdapter,
		textAdapter: textAdapter,
	}
}

func (c *committer) Commit(source m.Source, lines []string) error {
	if err := c.verifyUnchanged(source); err != nil {
		return err
	}

	info, err := c.fsAdapter.FileInfo(source.Path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", source.Path, err)
	}

	content := c.textAdapter.Encode(source, lines)

	if err := c.fsAdapter.WriteFile(source.Path, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", source.Path, err)
	}

	return nil
}

func (c *committer) verifyUnchanged(source m.Source) error {
	if source.Hash == "" {
		return nil
	}

	hash, err := c.fsAdapter.HashFile(source.Path)
	if err != nil {
		return fmt.Errorf("failed to hash %s: %w", source.Path, err)
	}

	if hash != source.Hash {
		return fmt.Errorf("%w: %s", ErrSourceChanged, source.Path)
	}

	return nil
}
