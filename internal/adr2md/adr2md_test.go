package adr2md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"plain heading", "# Use PostgreSQL\n\nBody", "Use PostgreSQL"},
		{"deep heading", "### Nested Title", "Nested Title"},
		{"no heading marker", "Just text\nmore", "Just text"},
		{"surrounding whitespace", "  #   Padded Title  \n", "Padded Title"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.markdown))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Use PostgreSQL", "use-postgresql"},
		{"Use  multiple   spaces", "use-multiple-spaces"},
		{"Trailing punctuation!", "trailing-punctuation"},
		{"C++ vs. Rust", "c-vs-rust"},
		{"", "unnamed"},
		{"!!!", "unnamed"},
		{"already-slugged", "already-slugged"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "0007-use-a-database.md", FileName(7, "Use a Database"))
	assert.Equal(t, "0000-unnamed.md", FileName(0, ""))
	assert.Equal(t, "1234-x.md", FileName(1234, "X"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "0001-init.md", BaseName("docs/adr/0001-init.md"))
	assert.Equal(t, "plain.md", BaseName("plain.md"))
}

func TestNewAdrMarkdownHasTitleLine(t *testing.T) {
	md := NewAdrMarkdown()
	assert.Contains(t, Title(md), "short title")
}
