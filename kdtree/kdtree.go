package kdtree

import (
	"errors"

	"github.com/lixenwraith/turbocow/geometry"
)

// maxLeafTriangles is the invariant leaf size bound (§3 DATA MODEL).
const maxLeafTriangles = 8

// splitCandidates is the number of evenly spaced split positions evaluated
// per interior node (§4.1).
const splitCandidates = 16

// ErrEmptyTriangles is returned when Build is called with no triangles;
// building an empty tree is not permitted (§4.1 Failure model).
var ErrEmptyTriangles = errors.New("kdtree: cannot build from an empty triangle list")

// node is a variant: Interior (len(children) in [1,3], triIndices nil) or
// Leaf (children nil, len(triIndices) <= maxLeafTriangles). Nodes live in
// a single arena slice and reference each other by index to avoid
// per-node heap allocation (§9 DESIGN NOTES).
type node struct {
	box        geometry.BoundingBox
	isLeaf     bool
	children   []int
	triIndices []int
}

// Tree is an immutable KD-tree over a fixed triangle set, partitioned with
// a surface-area heuristic (§4.1).
type Tree struct {
	triangles []Triangle
	nodes     []node
	root      int
}

// Triangles returns the tree's backing triangle slice. KD-tree traversal
// returns indices into this slice rather than copies (§9 Open Questions).
func (t *Tree) Triangles() []Triangle {
	return t.triangles
}

// Build constructs a KD-tree over the given triangles.
func Build(triangles []Triangle) (*Tree, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyTriangles
	}

	t := &Tree{triangles: triangles}
	indices := make([]int, len(triangles))
	for i := range indices {
		indices[i] = i
	}
	t.root = t.build(indices, 0)
	return t, nil
}

func (t *Tree) boundsOf(indices []int) geometry.BoundingBox {
	box := t.triangles[indices[0]].BoundingBox()
	for _, i := range indices[1:] {
		tb := t.triangles[i].BoundingBox()
		box = box.Union(tb)
	}
	return box
}

func (t *Tree) addLeaf(indices []int, box geometry.BoundingBox) int {
	t.nodes = append(t.nodes, node{box: box, isLeaf: true, triIndices: indices})
	return len(t.nodes) - 1
}

// build recurses over the given triangle indices at the given depth,
// returning the index of the created node in t.nodes.
func (t *Tree) build(indices []int, depth int) int {
	box := t.boundsOf(indices)

	if len(indices) <= maxLeafTriangles {
		return t.addLeaf(indices, box)
	}

	// The axis cycles with depth; when it offers no separating candidate
	// (every triangle spans the same range along it), the other two axes
	// are tried in turn.
	axis := depth % 3
	var left, mid, right []int
	ok := false
	for attempt := 0; attempt < 3 && !ok; attempt++ {
		left, mid, right, ok = t.bestSplit(indices, box, (axis+attempt)%3)
	}
	if !ok {
		// No candidate on any axis reduced the set (degenerate geometry);
		// terminate recursion with an oversized leaf rather than looping
		// forever.
		return t.addLeaf(indices, box)
	}

	var children []int
	for _, side := range [][]int{left, mid, right} {
		if len(side) == 0 {
			continue
		}
		children = append(children, t.build(side, depth+1))
	}

	t.nodes = append(t.nodes, node{box: box, isLeaf: false, children: children})
	return len(t.nodes) - 1
}

// bestSplit evaluates splitCandidates evenly spaced positions along axis
// and returns the Left/Middle/Right partition minimizing summed SAH cost,
// preferring splits that produce more non-empty children.
func (t *Tree) bestSplit(indices []int, box geometry.BoundingBox, axis int) (left, mid, right []int, ok bool) {
	lo := box.Min.Component(axis)
	hi := box.Max.Component(axis)
	if hi <= lo {
		return nil, nil, nil, false
	}
	step := (hi - lo) / float64(splitCandidates+1)

	var bestCost = -1.0
	var bestNonEmpty = -1
	var bestLeft, bestMid, bestRight []int

	for c := 1; c <= splitCandidates; c++ {
		v := lo + step*float64(c)
		l, m, r := t.partition(indices, axis, v)

		if len(l) == len(indices) || len(m) == len(indices) || len(r) == len(indices) {
			// Candidate didn't separate anything; skip.
			continue
		}

		cost, nonEmpty := t.sahCost(l, m, r)
		if bestCost < 0 || cost < bestCost-1e-9 || (cost <= bestCost+1e-9 && nonEmpty > bestNonEmpty) {
			bestCost, bestNonEmpty = cost, nonEmpty
			bestLeft, bestMid, bestRight = l, m, r
		}
	}

	if bestNonEmpty < 0 {
		return nil, nil, nil, false
	}
	return bestLeft, bestMid, bestRight, true
}

// partition splits indices into Left (all three vertex coordinates along
// axis are < v), Right (all three are > v), or Middle (straddling or
// touching v), per §4.1.
func (t *Tree) partition(indices []int, axis int, v float64) (left, mid, right []int) {
	for _, i := range indices {
		tri := &t.triangles[i]
		tv0, tv1, tv2 := tri.Vertices()
		c0, c1, c2 := tv0.Component(axis), tv1.Component(axis), tv2.Component(axis)

		switch {
		case c0 < v && c1 < v && c2 < v:
			left = append(left, i)
		case c0 > v && c1 > v && c2 > v:
			right = append(right, i)
		default:
			mid = append(mid, i)
		}
	}
	return left, mid, right
}

// sahCost returns the summed count*area cost over the non-empty sides and
// how many sides are non-empty.
func (t *Tree) sahCost(left, mid, right []int) (cost float64, nonEmpty int) {
	for _, side := range [][]int{left, mid, right} {
		if len(side) == 0 {
			continue
		}
		nonEmpty++
		box := t.boundsOf(side)
		cost += float64(len(side)) * box.Area()
	}
	return cost, nonEmpty
}

// GetTriangleIndices walks the tree depth-first, pruning on AABB miss and
// collecting indices at every leaf the ray reaches. The result may contain
// duplicates when a triangle lies in the Middle child of multiple
// ancestors (§4.1); callers that score intersections must dedupe.
func (t *Tree) GetTriangleIndices(r geometry.Ray) []int {
	var out []int
	t.walk(t.root, r, &out)
	return out
}

func (t *Tree) walk(nodeIdx int, r geometry.Ray, out *[]int) {
	n := &t.nodes[nodeIdx]
	if !n.box.Hit(r) {
		return
	}
	if n.isLeaf {
		*out = append(*out, n.triIndices...)
		return
	}
	for _, child := range n.children {
		t.walk(child, r, out)
	}
}

// Intersect finds the nearest ray-triangle intersection among the tree's
// candidate triangles for r, scoring each triangle at most once even if
// GetTriangleIndices returned it more than once.
func (t *Tree) Intersect(r geometry.Ray) (Intersection, bool) {
	indices := t.GetTriangleIndices(r)
	seen := make(map[int]bool, len(indices))

	best := Intersection{}
	found := false
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true

		hit, ok := t.triangles[i].Intersect(r)
		if !ok {
			continue
		}
		if !found || hit.RayDistance < best.RayDistance {
			best, found = hit, true
		}
	}
	return best, found
}
