package report

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Source is the handle to a lait source text used to attribute diagnostics to
// a specific file and line.  It is immutable once created.
type Source struct {
	// The absolute path to the source file.  This is empty for sources that
	// were not loaded from disk.
	AbsPath string

	// The representative path used when displaying diagnostics.
	ReprPath string

	// The full text of the source.
	Text string

	// The source text split into lines (without line terminators).
	Lines []string
}

// NewSource creates a new source from in-memory text.
func NewSource(reprPath, text string) *Source {
	return &Source{
		ReprPath: reprPath,
		Text:     text,
		Lines:    splitLines(text),
	}
}

// LoadSource reads the source file at the given absolute path.
func LoadSource(absPath, reprPath string) (*Source, error) {
	buff, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	src := NewSource(reprPath, string(buff))
	src.AbsPath = absPath
	return src, nil
}

// Line returns the line with the given zero-indexed number if it exists.
func (s *Source) Line(n int) (string, bool) {
	if 0 <= n && n < len(s.Lines) {
		return s.Lines[n], true
	}

	return "", false
}

// LineLen returns the length of the given line in runes.  Lines which do not
// exist have length zero.
func (s *Source) LineLen(n int) int {
	line, _ := s.Line(n)
	return utf8.RuneCountInString(line)
}

// splitLines splits text into lines, trimming carriage returns.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
