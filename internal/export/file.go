package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileName builds a timestamped export file name, e.g.
// tokencalc-breakdown-20260221-100000.csv.
func FileName(kind string, at time.Time) string {
	return fmt.Sprintf("tokencalc-%s-%s.csv", kind, at.Format("20060102-150405"))
}

// WriteFile creates dir if needed and writes name through render. A failed
// render removes the partial file.
func WriteFile(dir, name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}
