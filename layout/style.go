package layout

// Justify controls how free space on the main axis is distributed among
// the children of a single flex line.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Align is shared by align-items, align-self and align-content. Auto is
// only meaningful for align-self, where it defers to the parent's
// align-items.
type Align int

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
)

// PositionType selects whether a node participates in flex-line layout.
type PositionType int

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Wrap controls whether a line that overflows its container spills
// children onto additional lines.
type Wrap int

const (
	WrapNoWrap Wrap = iota
	WrapWrap
)

// Overflow is stored and returned by the accessors only; the layout pass
// does not read it (computeChildFlexBasis applies its AtMost clamp
// whatever the overflow).
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Style holds every layout-affecting property of a node. Fields are
// mutated exclusively through Node's setter methods (style_accessors.go),
// which dirty the subtree on change; never set Style fields directly on a
// live node.
type Style struct {
	Direction     Direction
	FlexDirection FlexDirection
	JustifyContent Justify
	AlignContent  Align
	AlignItems    Align
	AlignSelf     Align
	PositionType  PositionType
	FlexWrap      Wrap
	Overflow      Overflow

	FlexGrow   Value
	FlexShrink Value
	FlexBasis  Value

	Margin   [edgeCount]Value
	Position [edgeCount]Value
	Padding  [edgeCount]Value
	Border   [edgeCount]Value

	Dimensions    [2]Value // width, height
	MinDimensions [2]Value
	MaxDimensions [2]Value
}

func defaultStyle() Style {
	s := Style{
		FlexDirection: FlexDirectionColumn,
		AlignItems:    AlignStretch,
		AlignContent:  AlignFlexStart,
		Direction:     DirectionInherit,
		FlexGrow:      0,
		FlexShrink:    0,
		FlexBasis:     Undefined,
		Overflow:      OverflowVisible,
	}
	for i := 0; i < 2; i++ {
		s.Dimensions[i] = Undefined
		s.MinDimensions[i] = Undefined
		s.MaxDimensions[i] = Undefined
	}
	for e := Edge(0); e < edgeCount; e++ {
		s.Margin[e] = Undefined
		s.Position[e] = Undefined
		s.Padding[e] = Undefined
		s.Border[e] = Undefined
	}
	return s
}
