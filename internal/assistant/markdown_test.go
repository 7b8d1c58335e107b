package assistant

import (
	"strings"
	"testing"
)

func TestFlattenMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains []string
		excludes []string
	}{
		{
			name:     "headings and paragraphs",
			src:      "# Title\n\nFirst paragraph.\n\n## Section\n\nSecond paragraph.",
			contains: []string{"Title", "First paragraph.", "Section", "Second paragraph."},
			excludes: []string{"#"},
		},
		{
			name:     "formatting stripped",
			src:      "Some **bold** and *italic* and `code` text.",
			contains: []string{"bold", "italic", "code"},
			excludes: []string{"**", "`"},
		},
		{
			name:     "list items",
			src:      "- first\n- second\n- third",
			contains: []string{"first", "second", "third"},
			excludes: []string{"- "},
		},
		{
			name:     "fenced code kept as text",
			src:      "Intro\n\n```go\nfmt.Println(\"hi\")\n```\n",
			contains: []string{"Intro", `fmt.Println("hi")`},
		},
		{
			name: "empty input",
			src:  "   \n  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flattenMarkdown(tt.src)

			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("flattenMarkdown() = %q, missing %q", got, want)
				}
			}
			for _, avoid := range tt.excludes {
				if strings.Contains(got, avoid) {
					t.Errorf("flattenMarkdown() = %q, should not contain %q", got, avoid)
				}
			}
			if tt.src == "   \n  " && got != "" {
				t.Errorf("flattenMarkdown(blank) = %q, want empty", got)
			}
		})
	}
}
