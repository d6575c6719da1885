// Package input locates and reads puzzle input files.
package input

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
)

// Loader reads puzzle inputs from a filesystem root.
type Loader struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

func NewLoader(fs billy.Filesystem, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fs:     fs,
		logger: logger,
	}
}

// NewDirLoader returns a Loader over the local directory dir.
func NewDirLoader(dir string, logger *zap.Logger) *Loader {
	return NewLoader(osfs.New(dir), logger)
}

// DayFile is the conventional input file name for a day.
func DayFile(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

func (l *Loader) Read(name string) (string, error) {
	fullpath := l.fs.Join(l.fs.Root(), name)
	data, err := util.ReadFile(l.fs, name)
	if err != nil {
		return "", fmt.Errorf("cannot read input at %s: %w", fullpath, err)
	}
	l.logger.Debug("input read", zap.String("path", fullpath), zap.Int("bytes", len(data)))
	return string(data), nil
}

// Lines splits text into lines. A trailing newline does not produce a final
// empty line and a trailing "\r" is removed from every line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
