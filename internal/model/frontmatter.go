package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter holds the optional metadata block at the top of a model file.
type frontmatter struct {
	Description string   `yaml:"description"`
	Args        []string `yaml:"args"`
}

// splitFrontmatter separates the YAML frontmatter block from the template
// body. Frontmatter is delimited by a "---" line at the very start of the
// file and a closing "---" line. The body is returned byte-for-byte; only the
// frontmatter block and its delimiters are removed.
//
// A file with an opening delimiter but no closing one is treated as having no
// frontmatter at all, so a model whose first line happens to be "---" still
// parses.
func splitFrontmatter(raw string) (frontmatter, string, error) {
	var meta frontmatter

	block, body, found := cutFrontmatter(raw)
	if !found {
		return meta, raw, nil
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return meta, "", fmt.Errorf("invalid frontmatter: %w", err)
	}
	return meta, body, nil
}

// cutFrontmatter extracts the frontmatter block and the remaining body.
func cutFrontmatter(raw string) (block, body string, found bool) {
	rest, ok := strings.CutPrefix(raw, "---\n")
	if !ok {
		rest, ok = strings.CutPrefix(raw, "---\r\n")
		if !ok {
			return "", "", false
		}
	}

	block, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", "", false
	}

	// Drop the remainder of the closing delimiter line, including its
	// terminator, so the body starts at the first template line.
	if idx := strings.IndexByte(after, '\n'); idx >= 0 {
		after = after[idx+1:]
	} else {
		after = ""
	}

	return block, after, true
}
