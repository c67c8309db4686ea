package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ProseCorpusBuilder/internal/domain"
	"ProseCorpusBuilder/internal/ports"
)

// FileSource reads a work from the local filesystem. Relative paths resolve
// against the manifest directory, never the process working directory.
type FileSource struct {
	baseDir string
}

var _ ports.TextSource = (*FileSource)(nil)

// NewFileSource wires the directory relative paths resolve against.
func NewFileSource(baseDir string) *FileSource {
	return &FileSource{baseDir: baseDir}
}

// Name identifies the strategy inside the registry.
func (f *FileSource) Name() string {
	return string(domain.SourceFile)
}

// Load reads the work's file. Local reads are never cached.
func (f *FileSource) Load(_ context.Context, work domain.WorkSpec) (string, error) {
	path := work.Source.FilePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.baseDir, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("work %s: %w", work.WorkID, err)
	}
	return string(raw), nil
}
