package output

import (
	"github.com/disiqueira/gotree/v3"

	"booknav/internal/nav"
)

// VisualNavTree renders compiled navigation trees with box-drawing branches.
type VisualNavTree struct {
	tree       gotree.Tree
	useEscapes bool
}

func NewVisualNavTree(rootLabel string, useEscapes bool) VisualNavTree {
	return VisualNavTree{tree: gotree.New(rootLabel), useEscapes: useEscapes}
}

func (t VisualNavTree) annotate(label string, detail string) string {
	if detail == "" {
		return label
	}
	if t.useEscapes {
		return label + " " + TerminalFormatAsDim("("+detail+")")
	}
	return label + " (" + detail + ")"
}

// AddBook attaches one book's compiled tree below the visual root.
func (t VisualNavTree) AddBook(rootPath string, root *nav.Group) {
	branch := t.tree.Add(t.annotate(root.Label, rootPath))
	t.addChildren(branch, root.Children)
}

func (t VisualNavTree) addChildren(parent gotree.Tree, children []nav.Node) {
	for _, child := range children {
		switch node := child.(type) {
		case *nav.Link:
			parent.Add(t.annotate(node.Label, node.Href))
		case *nav.Group:
			t.addChildren(parent.Add(node.Label), node.Children)
		}
	}
}

func (t VisualNavTree) Render() string {
	return t.tree.Print()
}
