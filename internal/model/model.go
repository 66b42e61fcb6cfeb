package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker is the token that introduces a placeholder line.
const Marker = "#GET"

// Line is one line of a parsed model: either literal text or a placeholder
// referencing an argument index.
type Line struct {
	Num         int    // 1-based line number in the model source, after frontmatter
	Text        string // literal content; empty for placeholders
	ArgIndex    int    // argument index; valid only when Placeholder is true
	Placeholder bool
}

// Model is a parsed template: an ordered sequence of literal and placeholder
// lines plus optional frontmatter metadata.
type Model struct {
	Name        string
	Description string   // from frontmatter
	ArgNames    []string // from frontmatter; documents the argument positions
	Source      string   // where the model was resolved from (set by Library)
	Lines       []Line
}

// ParseError reports a line that starts with the placeholder marker but does
// not provide a valid non-negative integer index.
type ParseError struct {
	Model string
	Num   int
	Text  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("model %s line %d: malformed placeholder %q", e.Model, e.Num, e.Text)
}

// Parse converts raw model bytes into a Model.
//
// Frontmatter, if present, is split off first. The remaining content is split
// on line boundaries; a trailing \r is stripped from each line so CRLF input
// is accepted. Line order and count are preserved exactly.
//
// A line whose trimmed content begins with the marker word followed by
// whitespace (or is the bare marker) is a placeholder attempt; a malformed
// attempt fails the whole parse with ParseError. Everything else is literal.
func Parse(name string, data []byte) (*Model, error) {
	meta, body, err := splitFrontmatter(string(data))
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}

	m := &Model{
		Name:        name,
		Description: meta.Description,
		ArgNames:    meta.Args,
	}

	for num, raw := range splitLines(body) {
		line, err := parseLine(name, num+1, raw)
		if err != nil {
			return nil, err
		}
		m.Lines = append(m.Lines, line)
	}

	return m, nil
}

// splitLines splits content on \n, dropping the empty element produced by a
// trailing terminator and stripping a trailing \r from each line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// parseLine classifies a single raw line as literal or placeholder.
func parseLine(name string, num int, raw string) (Line, error) {
	trimmed := strings.TrimSpace(raw)
	if !isPlaceholderAttempt(trimmed) {
		return Line{Num: num, Text: raw}, nil
	}

	rest, ok := strings.CutPrefix(trimmed, Marker+" ")
	if !ok {
		// Bare marker, or marker followed by a non-space separator.
		return Line{}, &ParseError{Model: name, Num: num, Text: raw}
	}

	index, err := parseIndex(rest)
	if err != nil {
		return Line{}, &ParseError{Model: name, Num: num, Text: raw}
	}

	return Line{Num: num, ArgIndex: index, Placeholder: true}, nil
}

// isPlaceholderAttempt reports whether a trimmed line claims to be a
// placeholder: the bare marker, or the marker followed by whitespace.
// "#GETTING started" is literal; "#GET 0" and "#GET x" are attempts.
func isPlaceholderAttempt(trimmed string) bool {
	if trimmed == Marker {
		return true
	}
	rest, ok := strings.CutPrefix(trimmed, Marker)
	if !ok {
		return false
	}
	return rest[0] == ' ' || rest[0] == '\t'
}

// parseIndex parses a non-negative decimal integer with no sign and no
// surrounding characters.
func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty index")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid index %q", s)
		}
	}
	return strconv.Atoi(s)
}

// RequiredArgs returns the number of arguments the model needs: one past the
// highest placeholder index, or zero for a model with no placeholders.
func (m *Model) RequiredArgs() int {
	required := 0
	for _, line := range m.Lines {
		if line.Placeholder && line.ArgIndex+1 > required {
			required = line.ArgIndex + 1
		}
	}
	return required
}

// Placeholders returns the model's placeholder lines in source order.
func (m *Model) Placeholders() []Line {
	var lines []Line
	for _, line := range m.Lines {
		if line.Placeholder {
			lines = append(lines, line)
		}
	}
	return lines
}
