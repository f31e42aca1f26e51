package outline

import (
	"bufio"
	"strings"

	"booknav/internal/nav"
)

// Parse compiles one book's outline document into its navigation tree. The
// returned root group carries the given title. Child order at every level
// equals source line order.
//
// Items attach to the most specific currently open container: the active
// subsection if one exists, otherwise the active section, otherwise the root.
func Parse(title string, document string) *nav.Group {
	root := nav.NewGroup(title)
	var currentSection *nav.Group
	var currentSubsection *nav.Group

	scanner := bufio.NewScanner(strings.NewReader(document))
	for scanner.Scan() {
		classified := Classify(scanner.Text())
		switch classified.Kind {
		case Preface:
			//front links sit at the root regardless of where they appear
			root.Append(&nav.Link{Label: classified.Label, Href: classified.Link})
		case Section:
			section := nav.NewGroup(classified.Label)
			root.Append(section)
			currentSection = section
			currentSubsection = nil //a fresh section starts without an active subsection
		case Subsection:
			subsection := nav.NewGroup(classified.Label)
			if currentSection != nil {
				currentSection.Append(subsection)
			} else {
				root.Append(subsection) //tolerated: subsection heading before any section
			}
			currentSubsection = subsection
		case Item:
			link := &nav.Link{Label: classified.Label, Href: classified.Link}
			switch {
			case currentSubsection != nil:
				currentSubsection.Append(link)
			case currentSection != nil:
				currentSection.Append(link)
			default:
				root.Append(link)
			}
		case Divider, Ignore:
			//no structural contribution
		}
	}
	return root
}
