package data

// ResearchNode is one unlockable entry in an industry's research tree.
// Unlocked is runtime state; everything else comes from the static table.
type ResearchNode struct {
	Name     string          `yaml:"name"`
	Cost     float64         `yaml:"cost"`
	Children []*ResearchNode `yaml:"children,omitempty"`
	Unlocked bool            `yaml:"-"`
}

// ResearchTree is a rooted prerequisite tree of research nodes with an
// index by name. Each division owns its own clone so unlock state never
// leaks between divisions.
type ResearchTree struct {
	Root  *ResearchNode
	index map[string]*ResearchNode
}

// NewResearchTree builds a tree around root and indexes every node.
func NewResearchTree(root *ResearchNode) *ResearchTree {
	t := &ResearchTree{Root: root, index: make(map[string]*ResearchNode)}
	var walk func(n *ResearchNode)
	walk = func(n *ResearchNode) {
		if n == nil {
			return
		}
		t.index[n.Name] = n
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return t
}

// Node looks up a node by name.
func (t *ResearchTree) Node(name string) (*ResearchNode, bool) {
	n, ok := t.index[name]
	return n, ok
}

// AllNodes returns the names of every node in the tree.
func (t *ResearchTree) AllNodes() []string {
	names := make([]string, 0, len(t.index))
	var walk func(n *ResearchNode)
	walk = func(n *ResearchNode) {
		if n == nil {
			return
		}
		names = append(names, n.Name)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return names
}

// Unlock marks the named node as researched. Returns false for unknown
// nodes. Unlocking is monotonic; there is no re-lock.
func (t *ResearchTree) Unlock(name string) bool {
	n, ok := t.index[name]
	if !ok {
		return false
	}
	n.Unlocked = true
	return true
}

// Clone deep-copies the tree, resetting nothing: unlock state is copied
// as-is, so cloning a pristine template yields a pristine tree.
func (t *ResearchTree) Clone() *ResearchTree {
	if t == nil {
		return nil
	}
	var copyNode func(n *ResearchNode) *ResearchNode
	copyNode = func(n *ResearchNode) *ResearchNode {
		if n == nil {
			return nil
		}
		c := &ResearchNode{Name: n.Name, Cost: n.Cost, Unlocked: n.Unlocked}
		for _, child := range n.Children {
			c.Children = append(c.Children, copyNode(child))
		}
		return c
	}
	return NewResearchTree(copyNode(t.Root))
}
