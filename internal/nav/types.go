package nav

// Node is one element of a compiled navigation tree: either a Link leaf or a
// Group containing further nodes.
type Node interface {
	Text() string
	navNode()
}

// Link points at a single content page.
type Link struct {
	Label string
	Href  string //relative path as written in the outline document
}

// Group is a labeled container. Children keep source-document order, the
// compiler never sorts, deduplicates, or reorders them.
type Group struct {
	Label    string
	Children []Node
}

// Map is the complete navigation configuration of a site build: one root
// group per book, keyed by the book's root path.
type Map map[string]*Group

func NewGroup(label string) *Group {
	return &Group{Label: label}
}

func (l *Link) Text() string  { return l.Label }
func (g *Group) Text() string { return g.Label }

func (l *Link) navNode()  {}
func (g *Group) navNode() {}

// Append attaches a child at the end of the group.
func (g *Group) Append(child Node) {
	g.Children = append(g.Children, child)
}
