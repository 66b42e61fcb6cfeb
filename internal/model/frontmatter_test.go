package model

import (
	"strings"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	data := []byte(`---
description: Conference badge, front face
args:
  - attendee name
  - company
---
<svg>
#GET 0
</svg>
`)

	m, err := Parse("badge", data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Description != "Conference badge, front face" {
		t.Errorf("Description = %q, want badge description", m.Description)
	}
	if len(m.ArgNames) != 2 || m.ArgNames[0] != "attendee name" {
		t.Errorf("ArgNames = %v, want [attendee name, company]", m.ArgNames)
	}
	if len(m.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3 (frontmatter stripped)", len(m.Lines))
	}
	if m.Lines[0].Text != "<svg>" {
		t.Errorf("line 1 = %q, want body to start after frontmatter", m.Lines[0].Text)
	}
	if m.Lines[1].Num != 2 {
		t.Errorf("placeholder Num = %d, want 2 (numbered after frontmatter)", m.Lines[1].Num)
	}
}

func TestParseNoFrontmatter(t *testing.T) {
	m, err := Parse("plain", []byte("<svg/>\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Description != "" {
		t.Errorf("Description = %q, want empty", m.Description)
	}
	if len(m.Lines) != 1 || m.Lines[0].Text != "<svg/>" {
		t.Errorf("Lines = %+v, want single literal line", m.Lines)
	}
}

func TestParseUnclosedFrontmatterIsBody(t *testing.T) {
	// An opening delimiter with no closing one is template content.
	data := []byte("---\nstill the template\n")

	m, err := Parse("dash", data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(m.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(m.Lines))
	}
	if m.Lines[0].Text != "---" {
		t.Errorf("line 1 = %q, want %q", m.Lines[0].Text, "---")
	}
}

func TestParseInvalidFrontmatter(t *testing.T) {
	data := []byte("---\ndescription: [unclosed\n---\nbody\n")

	_, err := Parse("bad", data)
	if err == nil {
		t.Fatal("Parse() succeeded, want frontmatter error")
	}
	if !strings.Contains(err.Error(), "invalid frontmatter") {
		t.Errorf("error = %v, want invalid frontmatter", err)
	}
}

func TestCutFrontmatterCRLF(t *testing.T) {
	block, body, found := cutFrontmatter("---\r\ndescription: x\r\n---\r\nbody\r\n")
	if !found {
		t.Fatal("cutFrontmatter() found = false, want true")
	}
	if !strings.Contains(block, "description: x") {
		t.Errorf("block = %q, want description", block)
	}
	if !strings.HasPrefix(body, "body") {
		t.Errorf("body = %q, want to start at template content", body)
	}
}
