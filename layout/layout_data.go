package layout

// Layout is the engine-owned output of a node: everything written by
// Calculate and read back by the host. Never construct or mutate a Layout
// directly; it is entirely owned by the kernel between Calculate calls.
type Layout struct {
	position [4]Value // indexed by physical Edge: Left, Top, Right, Bottom
	dimensions        [2]Value
	measuredDimensions [2]Value

	direction Direction

	computedFlexBasis Value

	lastParentDirection Direction
	generationCount     uint32

	cachedLayout       CachedMeasurement
	hasCachedLayout    bool
	cachedMeasurements [maxCachedResultCount]CachedMeasurement
	cachedMeasurementsCount int
	nextCachedMeasurementsIndex int

	lineIndex int

	hasNewLayout bool
}

func newLayout() Layout {
	l := Layout{
		lastParentDirection: Direction(-1),
		computedFlexBasis:   Undefined,
	}
	for i := range l.position {
		l.position[i] = 0
	}
	for i := 0; i < 2; i++ {
		l.dimensions[i] = Undefined
		l.measuredDimensions[i] = Undefined
	}
	for i := range l.cachedMeasurements {
		l.cachedMeasurements[i] = newCachedMeasurement()
	}
	return l
}

// GetLeft, GetTop, GetRight, GetBottom return the node's final physical
// offsets from the parent's content box. Valid only after Calculate.
func (n *Node) GetLeft() Value   { return n.layout.position[EdgeLeft] }
func (n *Node) GetTop() Value    { return n.layout.position[EdgeTop] }
func (n *Node) GetRight() Value  { return n.layout.position[EdgeRight] }
func (n *Node) GetBottom() Value { return n.layout.position[EdgeBottom] }

// GetWidth and GetHeight return the node's final size. Valid only after a
// full layout pass (not a measure-only call).
func (n *Node) GetWidth() Value  { return n.layout.dimensions[DimensionWidth] }
func (n *Node) GetHeight() Value { return n.layout.dimensions[DimensionHeight] }

// GetDirection returns the direction resolved for this node on the last
// Calculate pass.
func (n *Node) GetDirection() Direction { return n.layout.direction }

// HasNewLayout reports whether the kernel wrote new layout data for this
// node since the host last cleared the flag.
func (n *Node) HasNewLayout() bool { return n.layout.hasNewLayout }

// SetHasNewLayout lets the host clear (or, unusually, set) the new-layout
// flag after consuming it.
func (n *Node) SetHasNewLayout(v bool) { n.layout.hasNewLayout = v }

// LineIndex reports which flex line of its parent this node was placed on
// during the last layout pass.
func (n *Node) LineIndex() int { return n.layout.lineIndex }
