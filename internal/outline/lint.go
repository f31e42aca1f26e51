package outline

import (
	"bufio"
	"regexp"
	"strings"
)

// Finding points at a line that resembles outline markup but contributes
// nothing to the navigation tree, typically a hand-editing slip.
type Finding struct {
	LineNumber int //1-based
	Line       string
	Hint       string
}

var (
	nearItemRegex       = regexp.MustCompile(`^\d+\.`)
	nearFrontLinkRegex  = regexp.MustCompile(`^-\s+\[`)
	deepHeadingRegex    = regexp.MustCompile(`^#{5,}`)
	crampedHeadingRegex = regexp.MustCompile(`^#{3,4}\S`)
)

// Lint reports all lines of a document which look like markup yet classify
// as Ignore. Such lines are dropped silently during compilation, so this is
// the place where an author learns about an unterminated bracket or a
// mistyped heading marker.
func Lint(document string) []Finding {
	var findings []Finding
	scanner := bufio.NewScanner(strings.NewReader(document))
	number := 0
	for scanner.Scan() {
		number++
		line := scanner.Text()
		if Classify(line).Kind != Ignore {
			continue
		}
		hint := ""
		switch {
		case nearItemRegex.MatchString(line):
			hint = "numbered item without a well-formed [label](link)"
		case nearFrontLinkRegex.MatchString(line):
			hint = "front link without a well-formed [label](link)"
		case deepHeadingRegex.MatchString(line):
			hint = "heading nested deeper than the two recognized levels"
		case crampedHeadingRegex.MatchString(line):
			hint = "heading marker not followed by a space"
		}
		if hint != "" {
			findings = append(findings, Finding{LineNumber: number, Line: strings.TrimRight(line, " \t"), Hint: hint})
		}
	}
	return findings
}
