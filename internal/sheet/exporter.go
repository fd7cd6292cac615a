package sheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileExporter receives a finished payload and saves it somewhere.
type FileExporter interface {
	Export(content []byte, filename, mimeType string) error
}

// DirExporter writes payloads into a directory, creating it if needed.
type DirExporter struct {
	Dir string
}

// Export writes content to Dir/filename.
func (d DirExporter) Export(content []byte, filename, _ string) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(d.Dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

// WriterExporter copies payloads to a stream, typically stdout.
type WriterExporter struct {
	W io.Writer
}

// Export writes content to W unchanged.
func (w WriterExporter) Export(content []byte, filename, _ string) error {
	if _, err := w.W.Write(content); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

// ExportFunc adapts a function to FileExporter.
type ExportFunc func(content []byte, filename, mimeType string) error

// Export calls f.
func (f ExportFunc) Export(content []byte, filename, mimeType string) error {
	return f(content, filename, mimeType)
}
