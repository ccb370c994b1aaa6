package spatial

import (
	"testing"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"github.com/stretchr/testify/assert"
)

func TestQuadTreeSingle(t *testing.T) {
	qt := NewQuadTree(gps.WorldBounds)
	qt.Insert(gps.Point{-40, -30}, "one")
	qt.Insert(gps.Point{20, 30}, "two")
	qt.Insert(gps.Point{28, 45}, "three")

	items := qt.Within(gps.RectFrom(10, 20, 25, 40))
	assert.Equal(t, []interface{}{"two"}, items)
	assert.Equal(t, 3, qt.Len())
}

func TestQuadTreeRejectsOutside(t *testing.T) {
	qt := NewQuadTree(gps.RectFrom(0, 0, 10, 10))
	assert.False(t, qt.Insert(gps.Point{11, 5}, "out"))
	assert.True(t, qt.Insert(gps.Point{10, 10}, "corner"))
	assert.Equal(t, 1, qt.Len())
}

func TestQuadTreeSplit(t *testing.T) {
	qt := NewQuadTree(gps.WorldBounds)
	p := gps.Point{16.2433526, 48.0455922}
	for i := 0; i < 100; i++ {
		qt.Insert(p, i)
		p = gps.Point{p.X() + 0.1, p.Y() + 0.1}
	}
	assert.NotNil(t, qt.root.quads[0], "root must be split")
	matching := qt.Within(gps.RectFrom(16.2, 48.0, 16.3, 48.1))
	assert.Equal(t, []interface{}{0}, matching)
	assert.Len(t, qt.Within(gps.WorldBounds), 100)
}

func TestQuadTreeRemove(t *testing.T) {
	qt := NewQuadTree(gps.WorldBounds)
	for i := 0; i < 50; i++ {
		qt.Insert(gps.Point{1, 1}, i)
	}
	assert.True(t, qt.Remove(gps.Point{1, 1}, func(o interface{}) bool { return o.(int) == 42 }))
	assert.False(t, qt.Remove(gps.Point{1, 1}, func(o interface{}) bool { return o.(int) == 42 }))
	assert.False(t, qt.Remove(gps.Point{2, 1}, func(o interface{}) bool { return true }))
	assert.Equal(t, 49, qt.Len())
	assert.Len(t, qt.Within(gps.RectFrom(0, 0, 2, 2)), 49)
}

func TestNodeSplitAndAdd(t *testing.T) {
	node := newNode(gps.RectFrom(-1, -1, 1, 1), 5, 2)
	node.split()
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1, node.quads[i].depth, "Bad depth for node %d", i)
	}
	assert.Equal(t, gps.RectFrom(-1, -1, 0, 0), node.quads[0].bounds)
	assert.Equal(t, gps.RectFrom(-1, 0, 0, 1), node.quads[1].bounds)
	assert.Equal(t, gps.RectFrom(0, -1, 1, 0), node.quads[2].bounds)
	assert.Equal(t, gps.RectFrom(0, 0, 1, 1), node.quads[3].bounds)
	node.add(entry{gps.Point{-0.5, 0.3}, "quadOne"})
	node.add(entry{gps.Point{0.7, -0.5}, "quadTwo"})
	assert.Equal(t, "quadOne", node.quads[1].entries[0].data)
	assert.Equal(t, "quadTwo", node.quads[2].entries[0].data)
}

type countingVisitor struct {
	levels, objects int
	ended           bool
}

func (v *countingVisitor) Begin(bounds gps.Rect)            {}
func (v *countingVisitor) Level(depth int, bounds gps.Rect) { v.levels++ }
func (v *countingVisitor) Object(p gps.Point)               { v.objects++ }
func (v *countingVisitor) End()                             { v.ended = true }

func TestVisit(t *testing.T) {
	qt := NewQuadTree(gps.WorldBounds)
	for i := 0; i < 30; i++ {
		qt.Insert(gps.Point{float64(i), float64(i) / 2}, i)
	}
	v := &countingVisitor{}
	qt.Visit(v)
	assert.Equal(t, 30, v.objects)
	assert.True(t, v.levels >= 1)
	assert.True(t, v.ended)
}
