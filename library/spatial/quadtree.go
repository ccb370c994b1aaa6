package spatial

import (
	"bitbucket.org/kleinnic74/geoangles/domain/gps"
)

type entry struct {
	pos  gps.Point
	data interface{}
}

// ResultFunc receives every object found by a query along with its position
type ResultFunc func(interface{}, gps.Point)

// Visitor walks the structure of a QuadTree, used to draw it
type Visitor interface {
	Begin(bounds gps.Rect)
	Level(depth int, bounds gps.Rect)
	Object(p gps.Point)
	End()
}

// QuadTree indexes objects by position. Objects outside of its bounds are rejected.
type QuadTree struct {
	count  int
	Bounds gps.Rect

	root *node
}

type node struct {
	bounds   gps.Rect
	quads    [4]*node
	entries  []entry
	capacity int
	depth    int
}

func NewQuadTree(bounds gps.Rect) *QuadTree {
	return &QuadTree{Bounds: bounds, root: newNode(bounds, 20, 10)}
}

func (qt *QuadTree) Len() int {
	return qt.count
}

func (qt *QuadTree) Insert(p gps.Point, o interface{}) bool {
	if !p.In(qt.Bounds) {
		return false
	}
	qt.root.add(entry{p, o})
	qt.count++
	return true
}

// Remove deletes the first object at p for which match returns true
func (qt *QuadTree) Remove(p gps.Point, match func(interface{}) bool) bool {
	if !p.In(qt.Bounds) {
		return false
	}
	if qt.root.remove(p, match) {
		qt.count--
		return true
	}
	return false
}

func (qt *QuadTree) Within(r gps.Rect) (result []interface{}) {
	qt.WithinFunc(r, func(o interface{}, _ gps.Point) {
		result = append(result, o)
	})
	return
}

func (qt *QuadTree) WithinFunc(r gps.Rect, f ResultFunc) {
	qt.root.within(r, f)
}

func (qt *QuadTree) Visit(v Visitor) {
	v.Begin(qt.root.bounds)
	qt.root.visit(v)
	v.End()
}

func newNode(bounds gps.Rect, capacity int, depth int) *node {
	return &node{bounds: bounds, capacity: capacity, depth: depth}
}

func (n *node) add(e entry) {
	if n.quads[0] == nil {
		// Not subdivided yet
		if len(n.entries) < n.capacity || n.depth == 0 {
			n.entries = append(n.entries, e)
			return
		}
		n.split()
	}
	n.quads[n.choose(e.pos)].add(e)
}

func (n *node) split() {
	hw, hh := n.bounds.HalfSize()
	n.quads[0] = newNode(gps.RectFrom(n.bounds[0], n.bounds[1], n.bounds[0]+hw, n.bounds[1]+hh), n.capacity, n.depth-1)
	n.quads[1] = newNode(gps.RectFrom(n.bounds[0], n.bounds[1]+hh, n.bounds[0]+hw, n.bounds[3]), n.capacity, n.depth-1)
	n.quads[2] = newNode(gps.RectFrom(n.bounds[0]+hw, n.bounds[1], n.bounds[2], n.bounds[1]+hh), n.capacity, n.depth-1)
	n.quads[3] = newNode(gps.RectFrom(n.bounds[0]+hw, n.bounds[1]+hh, n.bounds[2], n.bounds[3]), n.capacity, n.depth-1)
	entries := n.entries
	n.entries = nil
	for _, e := range entries {
		n.quads[n.choose(e.pos)].add(e)
	}
}

// choose picks the quadrant of p, points on a center line go to the upper or right quadrant
func (n *node) choose(p gps.Point) int {
	hw, hh := n.bounds.HalfSize()
	quad := 0
	if p.X() >= n.bounds[0]+hw {
		quad += 2
	}
	if p.Y() >= n.bounds[1]+hh {
		quad++
	}
	return quad
}

func (n *node) remove(p gps.Point, match func(interface{}) bool) bool {
	if n.quads[0] != nil {
		return n.quads[n.choose(p)].remove(p, match)
	}
	for i, e := range n.entries {
		if e.pos == p && match(e.data) {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (n *node) within(r gps.Rect, f ResultFunc) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, e := range n.entries {
		if e.pos.In(r) {
			f(e.data, e.pos)
		}
	}
	if n.quads[0] != nil {
		for _, q := range n.quads {
			q.within(r, f)
		}
	}
}

func (n *node) visit(v Visitor) {
	if n.quads[0] != nil {
		v.Level(n.depth, n.bounds)
		for _, q := range n.quads {
			q.visit(v)
		}
		return
	}
	for _, e := range n.entries {
		v.Object(e.pos)
	}
}
