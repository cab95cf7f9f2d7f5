package source

import (
	"context"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/Iron-Ham/kanban/internal/errors"
)

// FileSource reads the feed from a local file. Comments and trailing
// commas are allowed.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Describe implements Source.
func (s *FileSource) Describe() string {
	return s.path
}

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewFetchError("read file", err).WithURL(s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewFetchError("read file", err).WithURL(s.path).WithRetryable(false)
	}

	ds, err := decode(jsonc.ToJSON(data))
	if err != nil {
		return nil, errors.NewFetchError("decode file", err).WithURL(s.path).WithRetryable(false)
	}
	return ds, nil
}
