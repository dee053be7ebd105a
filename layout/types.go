package layout

import "github.com/reactivetui/tuicore/registry"

// ComputedLayout is C4's output: parallel arrays indexed by
// ComponentIndex, same length as the registry's high-water mark, plus
// two root-level content-size scalars, per spec.md §3.
type ComputedLayout struct {
	X, Y, Width, Height []int
	Scrollable          []bool
	MaxScrollX          []int
	MaxScrollY          []int

	// ContentWidth/ContentHeight summarize the laid-out tree's total
	// content extent across every root, for a caller sizing an outer
	// viewport (e.g. the frame buffer's alt-screen size negotiation).
	ContentWidth  int
	ContentHeight int
}

func newComputedLayout(n int) *ComputedLayout {
	return &ComputedLayout{
		X: make([]int, n), Y: make([]int, n),
		Width: make([]int, n), Height: make([]int, n),
		Scrollable: make([]bool, n),
		MaxScrollX: make([]int, n), MaxScrollY: make([]int, n),
	}
}

func (c *ComputedLayout) set(i registry.ComponentIndex, x, y, w, h int) {
	c.X[i], c.Y[i], c.Width[i], c.Height[i] = x, y, w, h
}

// Rect returns (x, y, width, height) for i.
func (c *ComputedLayout) Rect(i registry.ComponentIndex) (int, int, int, int) {
	return c.X[i], c.Y[i], c.Width[i], c.Height[i]
}

// node is the engine's working representation of one component during
// a single Compute call: its resolved geometry plus a reference to its
// children, built fresh each pass from the parent[] column per spec.md
// §4.4 "Traversal" ("Build a children-by-parent index from parent[] in
// one pass").
type node struct {
	index    registry.ComponentIndex
	children []*node
}

// buildTree groups every allocated index by parent[] in one pass and
// returns the list of roots (parent == registry.None), per spec.md
// §4.4's traversal step. Children preserve ascending-index order (a
// deterministic surrogate for "declaration order", since the store
// does not separately track sibling order).
func buildTree(indices []registry.ComponentIndex, parentOf func(registry.ComponentIndex) registry.ComponentIndex) []*node {
	nodesByIndex := make(map[registry.ComponentIndex]*node, len(indices))
	for _, i := range indices {
		nodesByIndex[i] = &node{index: i}
	}
	var roots []*node
	// Deterministic order: sort ascending by raw index value.
	sorted := append([]registry.ComponentIndex(nil), indices...)
	insertionSort(sorted)

	for _, i := range sorted {
		n := nodesByIndex[i]
		p := parentOf(i)
		if p == registry.None {
			roots = append(roots, n)
			continue
		}
		parentNode, ok := nodesByIndex[p]
		if !ok {
			// Missing parent collapses to root, per spec.md §4.4
			// "Failure semantics".
			roots = append(roots, n)
			continue
		}
		parentNode.children = append(parentNode.children, n)
	}
	return roots
}

func insertionSort(s []registry.ComponentIndex) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
