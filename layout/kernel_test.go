package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newRoot(width, height Value) *Node {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(width)
	root.SetHeight(height)
	return root
}

func newLeaf(w, h Value) *Node {
	n := New()
	n.SetWidth(w)
	n.SetHeight(h)
	return n
}

// Scenario 1: row, flex-start, no flex, three 50x20 children in 300x100.
func TestScenarioRowFlexStart(t *testing.T) {
	root := newRoot(300, 100)
	var children []*Node
	for i := 0; i < 3; i++ {
		c := newLeaf(50, 20)
		root.InsertChild(c, i)
		children = append(children, c)
	}

	Calculate(root, Undefined, Undefined, DirectionLTR)

	require.Equal(t, Value(300), root.GetWidth())
	require.Equal(t, Value(100), root.GetHeight())

	// expected left = i * 50 (each child 50 wide, packed from the start)
	for i, c := range children {
		require.Equal(t, Value(i*50), c.GetLeft(), "child %d left", i)
		require.Equal(t, Value(0), c.GetTop(), "child %d top", i)
		require.Equal(t, Value(50), c.GetWidth())
		require.Equal(t, Value(20), c.GetHeight())
	}
}

// Scenario 2: row, space-between, three 50x20 children in 300x100.
// free = 300 - 150 = 150; between = 150/(3-1) = 75; positions 0, 50+75=125, 125+125=250.
func TestScenarioRowSpaceBetween(t *testing.T) {
	root := newRoot(300, 100)
	root.SetJustifyContent(JustifySpaceBetween)
	var children []*Node
	for i := 0; i < 3; i++ {
		c := newLeaf(50, 20)
		root.InsertChild(c, i)
		children = append(children, c)
	}

	Calculate(root, Undefined, Undefined, DirectionLTR)

	expected := []Value{0, 125, 250}
	for i, c := range children {
		require.Equal(t, expected[i], c.GetLeft(), "child %d left", i)
	}
}

// Scenario 3: row, flex-grow 1 and 2, container 300 wide.
// free = 300 - 0 = 300; widths = 300*(1/3)=100, 300*(2/3)=200; positions 0, 100.
func TestScenarioRowFlexGrow(t *testing.T) {
	root := newRoot(300, 100)
	a := New()
	a.SetFlexGrow(1)
	root.InsertChild(a, 0)
	b := New()
	b.SetFlexGrow(2)
	root.InsertChild(b, 1)

	Calculate(root, Undefined, Undefined, DirectionLTR)

	require.Equal(t, Value(100), a.GetWidth())
	require.Equal(t, Value(200), b.GetWidth())
	require.Equal(t, Value(0), a.GetLeft())
	require.Equal(t, Value(100), b.GetLeft())
}

// Scenario 4: column, wrap, four 100x100 children in a 150x250 container.
// Each line can fit floor(250/100)=2 items before wrapping on a 150-wide
// cross axis that only fits one 100-wide column per line.
func TestScenarioColumnWrap(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionColumn)
	root.SetFlexWrap(WrapWrap)
	root.SetWidth(150)
	root.SetHeight(250)

	var children []*Node
	for i := 0; i < 4; i++ {
		c := newLeaf(100, 100)
		root.InsertChild(c, i)
		children = append(children, c)
	}

	Calculate(root, Undefined, Undefined, DirectionLTR)

	expectedX := []Value{0, 0, 100, 100}
	expectedY := []Value{0, 100, 0, 100}
	for i, c := range children {
		require.Equal(t, expectedX[i], c.GetLeft(), "child %d left", i)
		require.Equal(t, expectedY[i], c.GetTop(), "child %d top", i)
	}
}

// Scenario 5: row, one absolutely positioned child (left=10,top=20,
// width=30,height=40) in a 200x200 container; siblings are unaffected.
func TestScenarioAbsoluteChild(t *testing.T) {
	root := newRoot(200, 200)

	sibling := newLeaf(50, 20)
	root.InsertChild(sibling, 0)

	abs := New()
	abs.SetPositionType(PositionAbsolute)
	abs.SetPosition(EdgeLeft, 10)
	abs.SetPosition(EdgeTop, 20)
	abs.SetWidth(30)
	abs.SetHeight(40)
	root.InsertChild(abs, 1)

	Calculate(root, Undefined, Undefined, DirectionLTR)

	require.Equal(t, Value(10), abs.GetLeft())
	require.Equal(t, Value(20), abs.GetTop())
	require.Equal(t, Value(30), abs.GetWidth())
	require.Equal(t, Value(40), abs.GetHeight())

	require.Equal(t, Value(0), sibling.GetLeft())
	require.Equal(t, Value(0), sibling.GetTop())
	require.Equal(t, Value(50), sibling.GetWidth())
	require.Equal(t, Value(20), sibling.GetHeight())
}

// Scenario 6: a leaf with a measure callback returning 80x10, bounded to
// 100x100 by its max width/height so Calculate seeds AtMost/AtMost; a
// second Calculate with the same constraints must not invoke the callback
// again (cache hit).
func TestScenarioMeasureCacheHit(t *testing.T) {
	root := New()
	root.SetMaxWidth(100)
	root.SetMaxHeight(100)
	calls := 0
	root.SetMeasureFunc(func(ctx any, innerWidth float32, wMode MeasureMode, innerHeight float32, hMode MeasureMode) (float32, float32) {
		calls++
		return 80, 10
	})

	Calculate(root, Undefined, Undefined, DirectionLTR)
	require.Equal(t, Value(80), root.GetWidth())
	require.Equal(t, Value(10), root.GetHeight())
	require.Equal(t, 1, calls)

	Calculate(root, Undefined, Undefined, DirectionLTR)
	require.Equal(t, Value(80), root.GetWidth())
	require.Equal(t, Value(10), root.GetHeight())
	require.Equal(t, 1, calls, "second Calculate with identical inputs must hit the cache")
}

// Universal invariant: setting a style property to its current value must
// not dirty the node.
func TestSetUnchangedStyleDoesNotDirty(t *testing.T) {
	n := New()
	n.SetWidth(100)
	Calculate(n, Undefined, Undefined, DirectionLTR)
	n.layout.hasNewLayout = false // simulate host having consumed the flag
	n.isDirty = false

	n.SetWidth(100)
	require.False(t, n.IsDirty())

	n.SetWidth(200)
	require.True(t, n.IsDirty())
}

// Universal invariant: dirtying a child dirties every ancestor.
func TestMarkDirtyPropagatesToAncestors(t *testing.T) {
	root := New()
	mid := New()
	leaf := New()
	root.InsertChild(mid, 0)
	mid.InsertChild(leaf, 0)
	Calculate(root, 100, 100, DirectionLTR)
	root.isDirty, mid.isDirty, leaf.isDirty = false, false, false

	leaf.SetWidth(42)

	require.True(t, leaf.IsDirty())
	require.True(t, mid.IsDirty())
	require.True(t, root.IsDirty())
}

// Universal invariant: FreeRecursive restores InstanceCount.
func TestFreeRecursiveRestoresInstanceCount(t *testing.T) {
	before := InstanceCount()

	root := New()
	for i := 0; i < 3; i++ {
		root.InsertChild(New(), i)
	}
	require.Equal(t, before+4, InstanceCount())

	FreeRecursive(root)
	require.Equal(t, before, InstanceCount())
}

// Universal invariant: dimensions never fall below padding+border.
func TestDimensionsNeverBelowPaddingAndBorder(t *testing.T) {
	n := New()
	n.SetPadding(EdgeAll, 10)
	n.SetBorder(EdgeAll, 5)
	n.SetWidth(0)
	n.SetHeight(0)
	Calculate(n, Undefined, Undefined, DirectionLTR)

	require.GreaterOrEqual(t, float64(n.GetWidth()), float64(getPaddingAndBorderAxis(n, FlexDirectionRow)))
	require.GreaterOrEqual(t, float64(n.GetHeight()), float64(getPaddingAndBorderAxis(n, FlexDirectionColumn)))
}

// InsertChild on an already-parented node is a contract violation: the
// default assert handler panics.
func TestInsertChildWithExistingParentPanics(t *testing.T) {
	a := New()
	b := New()
	child := New()
	a.InsertChild(child, 0)

	require.Panics(t, func() {
		b.InsertChild(child, 0)
	})
}
