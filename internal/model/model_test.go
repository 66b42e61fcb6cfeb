package model

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLiteralOnly(t *testing.T) {
	data := []byte("<svg>\n  <rect/>\n</svg>\n")

	m, err := Parse("plain", data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(m.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(m.Lines))
	}
	for i, line := range m.Lines {
		if line.Placeholder {
			t.Errorf("line %d is a placeholder, want literal", i)
		}
		if line.Num != i+1 {
			t.Errorf("line %d Num = %d, want %d", i, line.Num, i+1)
		}
	}
	if m.Lines[1].Text != "  <rect/>" {
		t.Errorf("line 2 Text = %q, want verbatim copy with indentation", m.Lines[1].Text)
	}
}

func TestParsePlaceholder(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantIndex int
	}{
		{"plain", "#GET 0", 0},
		{"larger index", "#GET 12", 12},
		{"surrounding whitespace", "   #GET 3   ", 3},
		{"leading tab", "\t#GET 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse("test", []byte(tt.line+"\n"))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(m.Lines) != 1 {
				t.Fatalf("len(Lines) = %d, want 1", len(m.Lines))
			}
			if !m.Lines[0].Placeholder {
				t.Fatal("line is literal, want placeholder")
			}
			if m.Lines[0].ArgIndex != tt.wantIndex {
				t.Errorf("ArgIndex = %d, want %d", m.Lines[0].ArgIndex, tt.wantIndex)
			}
		})
	}
}

func TestParseMarkerMidLineIsLiteral(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"prefix and suffix", "prefix #GET 0 suffix"},
		{"suffix only comment", "<!-- #GET 0 -->"},
		{"marker glued to word", "#GETTING started"},
		{"marker at end", "see #GET 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse("test", []byte(tt.line))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if m.Lines[0].Placeholder {
				t.Errorf("%q parsed as placeholder, want literal", tt.line)
			}
			if m.Lines[0].Text != tt.line {
				t.Errorf("Text = %q, want %q verbatim", m.Lines[0].Text, tt.line)
			}
		})
	}
}

func TestParseMalformedPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing index", "#GET"},
		{"missing index with space", "#GET "},
		{"non-numeric index", "#GET abc"},
		{"signed index", "#GET -1"},
		{"plus sign", "#GET +2"},
		{"trailing characters", "#GET 0 suffix"},
		{"tab separator", "#GET\t4"},
		{"decimal point", "#GET 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", []byte("ok line\n"+tt.line+"\n"))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want ParseError", tt.line)
			}

			parseErr := &ParseError{}
			if !errors.As(err, &parseErr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if parseErr.Num != 2 {
				t.Errorf("ParseError.Num = %d, want 2", parseErr.Num)
			}
			if !strings.Contains(parseErr.Error(), "line 2") {
				t.Errorf("Error() = %q, want line number", parseErr.Error())
			}
		})
	}
}

func TestParsePreservesBlankLines(t *testing.T) {
	m, err := Parse("test", []byte("a\n\n\nb\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(m.Lines) != 4 {
		t.Fatalf("len(Lines) = %d, want 4", len(m.Lines))
	}
	if m.Lines[1].Text != "" || m.Lines[2].Text != "" {
		t.Error("blank lines not preserved")
	}
}

func TestParseCRLF(t *testing.T) {
	m, err := Parse("test", []byte("<svg>\r\n#GET 0\r\n</svg>\r\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(m.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(m.Lines))
	}
	if m.Lines[0].Text != "<svg>" {
		t.Errorf("line 1 Text = %q, want %q without \\r", m.Lines[0].Text, "<svg>")
	}
	if !m.Lines[1].Placeholder {
		t.Error("CRLF placeholder line not recognized")
	}
}

func TestParseEmptyInput(t *testing.T) {
	m, err := Parse("empty", nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(m.Lines) != 0 {
		t.Errorf("len(Lines) = %d, want 0", len(m.Lines))
	}
}

func TestRequiredArgs(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"no placeholders", "a\nb\n", 0},
		{"single", "#GET 0\n", 1},
		{"highest index wins", "#GET 1\nx\n#GET 5\n#GET 0\n", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse("test", []byte(tt.data))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := m.RequiredArgs(); got != tt.want {
				t.Errorf("RequiredArgs() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	m, err := Parse("test", []byte("a\n#GET 1\nb\n#GET 0\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	placeholders := m.Placeholders()
	if len(placeholders) != 2 {
		t.Fatalf("len(Placeholders()) = %d, want 2", len(placeholders))
	}
	if placeholders[0].Num != 2 || placeholders[0].ArgIndex != 1 {
		t.Errorf("first placeholder = line %d index %d, want line 2 index 1",
			placeholders[0].Num, placeholders[0].ArgIndex)
	}
	if placeholders[1].Num != 4 || placeholders[1].ArgIndex != 0 {
		t.Errorf("second placeholder = line %d index %d, want line 4 index 0",
			placeholders[1].Num, placeholders[1].ArgIndex)
	}
}
