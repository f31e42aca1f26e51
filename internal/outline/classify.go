package outline

import (
	"regexp"
	"strings"
)

// LineKind classifies one line of a book outline document.
type LineKind rune

const (
	Preface    LineKind = '-' //front link, always attaches at the tree root
	Divider    LineKind = '~' //horizontal rule, recognized but structurally inert
	Section    LineKind = 'S' //three-hash heading, first navigation tier
	Subsection LineKind = 's' //four-hash heading, second navigation tier
	Item       LineKind = 'i' //numbered link to a content page
	Ignore     LineKind = '_' //blank lines, prose, malformed markup
)

// ClassifiedLine is the transient result of classifying a single line.
// Link is only populated for the Item and Preface kinds.
type ClassifiedLine struct {
	Kind  LineKind
	Label string
	Link  string
}

//headings are anchored to *exactly* three respectively four leading '#':
//the whitespace requirement after the marker prevents a four-hash line from
//being consumed as a three-hash prefix match
var (
	subsectionRegex = regexp.MustCompile(`^####\s+(\S.*)$`)
	sectionRegex    = regexp.MustCompile(`^###\s+(\S.*)$`)
	itemRegex       = regexp.MustCompile(`^\d+\.\s+\[([^\]]+)\]\(([^)]+)\)`)
	prefaceRegex    = regexp.MustCompile(`^-\s+\[([^\]]+)\]\(([^)]+)\)`)
	dividerRegex    = regexp.MustCompile(`^-{3,}\s*$`)
)

// Classify determines what a single outline line contributes. It is pure and
// position-independent, placement is the parser's concern. Checks run most
// specific first because the lower patterns are textual prefixes of the
// higher ones. Anything that fails sub-extraction (e.g. an unterminated
// bracket) degrades to Ignore, never to an error.
func Classify(line string) ClassifiedLine {
	if match := subsectionRegex.FindStringSubmatch(line); match != nil {
		return ClassifiedLine{Kind: Subsection, Label: strings.TrimSpace(match[1])}
	}
	if match := sectionRegex.FindStringSubmatch(line); match != nil {
		return ClassifiedLine{Kind: Section, Label: strings.TrimSpace(match[1])}
	}
	if match := itemRegex.FindStringSubmatch(line); match != nil {
		return ClassifiedLine{Kind: Item, Label: strings.TrimSpace(match[1]), Link: strings.TrimSpace(match[2])}
	}
	if match := prefaceRegex.FindStringSubmatch(line); match != nil {
		return ClassifiedLine{Kind: Preface, Label: strings.TrimSpace(match[1]), Link: strings.TrimSpace(match[2])}
	}
	if dividerRegex.MatchString(line) {
		return ClassifiedLine{Kind: Divider}
	}
	return ClassifiedLine{Kind: Ignore}
}
