package outline

import (
	"reflect"
	"strings"
	"testing"

	"booknav/internal/nav"
)

func TestParseScenario(t *testing.T) {
	document := `# Title
- [序言](index.md)
---
### 第1部分
1. [项目架构设计](mini/a.md)
#### 子节
2. [详情](mini/b.md)
`
	tree := Parse("示例", document)

	expected := &nav.Group{Label: "示例", Children: []nav.Node{
		&nav.Link{Label: "序言", Href: "index.md"},
		&nav.Group{Label: "第1部分", Children: []nav.Node{
			&nav.Link{Label: "项目架构设计", Href: "mini/a.md"},
			&nav.Group{Label: "子节", Children: []nav.Node{
				&nav.Link{Label: "详情", Href: "mini/b.md"},
			}},
		}},
	}}
	if !reflect.DeepEqual(tree, expected) {
		t.Errorf("compiled tree differs from expectation\ngot:      %#v\nexpected: %#v", tree, expected)
	}
}

func TestParsePlacementFallback(t *testing.T) {
	document := `0. [Root Item](root.md)
### Section A
1. [Section Item](a.md)
#### Sub A1
2. [Sub Item](b.md)
### Section B
3. [Fresh Section Item](c.md)
`
	tree := Parse("Book", document)

	expected := &nav.Group{Label: "Book", Children: []nav.Node{
		&nav.Link{Label: "Root Item", Href: "root.md"},
		&nav.Group{Label: "Section A", Children: []nav.Node{
			&nav.Link{Label: "Section Item", Href: "a.md"},
			&nav.Group{Label: "Sub A1", Children: []nav.Node{
				&nav.Link{Label: "Sub Item", Href: "b.md"},
			}},
		}},
		//opening Section B clears Sub A1, so its item attaches to the section
		&nav.Group{Label: "Section B", Children: []nav.Node{
			&nav.Link{Label: "Fresh Section Item", Href: "c.md"},
		}},
	}}
	if !reflect.DeepEqual(tree, expected) {
		t.Errorf("compiled tree differs from expectation\ngot:      %#v\nexpected: %#v", tree, expected)
	}
}

func TestParseSubsectionBeforeAnySection(t *testing.T) {
	document := `#### Early Sub
1. [Item](x.md)
`
	tree := Parse("Book", document)

	expected := &nav.Group{Label: "Book", Children: []nav.Node{
		&nav.Group{Label: "Early Sub", Children: []nav.Node{
			&nav.Link{Label: "Item", Href: "x.md"},
		}},
	}}
	if !reflect.DeepEqual(tree, expected) {
		t.Errorf("subsection without section not attached to root\ngot: %#v", tree)
	}
}

func TestParseFrontLinkAfterSection(t *testing.T) {
	document := `### Section
- [Late Front Link](late.md)
1. [Item](a.md)
`
	tree := Parse("Book", document)

	//front links always sit at the root, position in the document is irrelevant
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(tree.Children))
	}
	if _, isGroup := tree.Children[0].(*nav.Group); !isGroup {
		t.Error("first root child should be the section group")
	}
	if link, isLink := tree.Children[1].(*nav.Link); !isLink || link.Label != "Late Front Link" {
		t.Errorf("front link not attached to root, got %#v", tree.Children[1])
	}
}

func TestParsePreservesSourceOrder(t *testing.T) {
	document := `### Section
3. [Third](3.md)
1. [First](1.md)
2. [Second](2.md)
`
	tree := Parse("Book", document)

	section := tree.Children[0].(*nav.Group)
	var labels []string
	for _, child := range section.Children {
		labels = append(labels, child.Text())
	}
	//numbering in the source is decoration, only line order counts
	if !reflect.DeepEqual(labels, []string{"Third", "First", "Second"}) {
		t.Errorf("items reordered: %v", labels)
	}
}

func TestParseIdempotence(t *testing.T) {
	document := `- [Front](index.md)
### Section
1. [Item](a.md)
#### Sub
2. [Deep](b.md)
`
	if !reflect.DeepEqual(Parse("Book", document), Parse("Book", document)) {
		t.Error("parsing the same document twice yielded different trees")
	}
}

func TestParseMalformedLineTolerance(t *testing.T) {
	intact := `### Section
1. [Item](a.md)
2. [Other](b.md)
`
	damaged := strings.Replace(intact, "2. [Other](b.md)", "2. [Other](b.md\n2. [Other](b.md)", 1)

	if !reflect.DeepEqual(Parse("Book", damaged), Parse("Book", intact)) {
		t.Error("malformed line changed the compiled tree instead of being dropped")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	tree := Parse("Book", "")
	if tree.Label != "Book" || len(tree.Children) != 0 {
		t.Errorf("empty document should compile to a bare root group, got %#v", tree)
	}
}
