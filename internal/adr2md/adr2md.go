// Package adr2md holds the text transforms between ADR markdown and the
// file names and boilerplate the editor works with.
package adr2md

import (
	"fmt"
	"strings"
)

// defaultTemplate is the MADR-style skeleton a newly created record starts with
const defaultTemplate = `# [short title of solved problem and solution]

## Context and Problem Statement

[Describe the context and problem statement, e.g., in free form using two to three sentences.]

## Considered Options

* [option 1]
* [option 2]

## Decision Outcome

Chosen option: "[option 1]", because [justification].
`

// NewAdrMarkdown returns the boilerplate content for a freshly created record
func NewAdrMarkdown() string {
	return defaultTemplate
}

// Title extracts the record's title from its markdown: the first line with
// leading '#' heading markers and surrounding whitespace stripped.
func Title(markdown string) string {
	firstLine, _, _ := strings.Cut(markdown, "\n")
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(firstLine), "#"))
}

// Slugify converts a title into the lowercase-hyphenated form used in ADR
// file names. Runs of anything that is not a letter or digit collapse into a
// single hyphen. An empty or all-punctuation title yields "unnamed".
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}

// FileName builds the base name of an ADR file from its id and title slug,
// e.g. (7, "use a database") -> "0007-use-a-database.md".
func FileName(id int, title string) string {
	return fmt.Sprintf("%04d-%s.md", id, Slugify(title))
}

// BaseName returns the final path segment of an ADR path
func BaseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
