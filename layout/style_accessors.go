package layout

// This file is the mechanical property-accessor surface: every setter
// compares against the current value and only marks the subtree dirty on
// an actual change (§6, §8 "setting a style to its current value does not
// dirty").

func (n *Node) SetDirection(v Direction) {
	if n.style.Direction == v {
		return
	}
	n.style.Direction = v
	n.markDirty()
}
func (n *Node) GetStyleDirection() Direction { return n.style.Direction }

func (n *Node) SetFlexDirection(v FlexDirection) {
	if n.style.FlexDirection == v {
		return
	}
	n.style.FlexDirection = v
	n.markDirty()
}
func (n *Node) GetFlexDirection() FlexDirection { return n.style.FlexDirection }

func (n *Node) SetJustifyContent(v Justify) {
	if n.style.JustifyContent == v {
		return
	}
	n.style.JustifyContent = v
	n.markDirty()
}
func (n *Node) GetJustifyContent() Justify { return n.style.JustifyContent }

func (n *Node) SetAlignContent(v Align) {
	if n.style.AlignContent == v {
		return
	}
	n.style.AlignContent = v
	n.markDirty()
}
func (n *Node) GetAlignContent() Align { return n.style.AlignContent }

func (n *Node) SetAlignItems(v Align) {
	if n.style.AlignItems == v {
		return
	}
	n.style.AlignItems = v
	n.markDirty()
}
func (n *Node) GetAlignItems() Align { return n.style.AlignItems }

func (n *Node) SetAlignSelf(v Align) {
	if n.style.AlignSelf == v {
		return
	}
	n.style.AlignSelf = v
	n.markDirty()
}
func (n *Node) GetAlignSelf() Align { return n.style.AlignSelf }

func (n *Node) SetPositionType(v PositionType) {
	if n.style.PositionType == v {
		return
	}
	n.style.PositionType = v
	n.markDirty()
}
func (n *Node) GetPositionType() PositionType { return n.style.PositionType }

func (n *Node) SetFlexWrap(v Wrap) {
	if n.style.FlexWrap == v {
		return
	}
	n.style.FlexWrap = v
	n.markDirty()
}
func (n *Node) GetFlexWrap() Wrap { return n.style.FlexWrap }

func (n *Node) SetOverflow(v Overflow) {
	if n.style.Overflow == v {
		return
	}
	n.style.Overflow = v
	n.markDirty()
}
func (n *Node) GetOverflow() Overflow { return n.style.Overflow }

func (n *Node) SetFlexGrow(v Value) {
	if FloatsEqual(n.style.FlexGrow, v) {
		return
	}
	n.style.FlexGrow = v
	n.markDirty()
}
func (n *Node) GetFlexGrow() Value { return n.style.FlexGrow }

func (n *Node) SetFlexShrink(v Value) {
	if FloatsEqual(n.style.FlexShrink, v) {
		return
	}
	n.style.FlexShrink = v
	n.markDirty()
}
func (n *Node) GetFlexShrink() Value { return n.style.FlexShrink }

func (n *Node) SetFlexBasis(v Value) {
	if FloatsEqual(n.style.FlexBasis, v) {
		return
	}
	n.style.FlexBasis = v
	n.markDirty()
}
func (n *Node) GetFlexBasis() Value { return n.style.FlexBasis }

// SetFlex is a convenience matching the common `flex: n` shorthand: grow =
// n, shrink = n>0 ? 1 : 0, basis = 0 when n>0 else auto. Kept as a thin
// wrapper since none of §3's invariants depend on it.
func (n *Node) SetFlex(v Value) {
	if v > 0 {
		n.SetFlexGrow(v)
		n.SetFlexShrink(1)
		n.SetFlexBasis(0)
	} else {
		n.SetFlexGrow(0)
		n.SetFlexShrink(0)
		n.SetFlexBasis(Undefined)
	}
}

func (n *Node) SetWidth(v Value)  { n.setDimension(DimensionWidth, v) }
func (n *Node) SetHeight(v Value) { n.setDimension(DimensionHeight, v) }

func (n *Node) setDimension(d Dimension, v Value) {
	if FloatsEqual(n.style.Dimensions[d], v) {
		return
	}
	n.style.Dimensions[d] = v
	n.markDirty()
}

func (n *Node) GetStyleWidth() Value  { return n.style.Dimensions[DimensionWidth] }
func (n *Node) GetStyleHeight() Value { return n.style.Dimensions[DimensionHeight] }

func (n *Node) SetMinWidth(v Value)  { n.setMinDimension(DimensionWidth, v) }
func (n *Node) SetMinHeight(v Value) { n.setMinDimension(DimensionHeight, v) }

func (n *Node) setMinDimension(d Dimension, v Value) {
	if FloatsEqual(n.style.MinDimensions[d], v) {
		return
	}
	n.style.MinDimensions[d] = v
	n.markDirty()
}

func (n *Node) GetMinWidth() Value  { return n.style.MinDimensions[DimensionWidth] }
func (n *Node) GetMinHeight() Value { return n.style.MinDimensions[DimensionHeight] }

func (n *Node) SetMaxWidth(v Value)  { n.setMaxDimension(DimensionWidth, v) }
func (n *Node) SetMaxHeight(v Value) { n.setMaxDimension(DimensionHeight, v) }

func (n *Node) setMaxDimension(d Dimension, v Value) {
	if FloatsEqual(n.style.MaxDimensions[d], v) {
		return
	}
	n.style.MaxDimensions[d] = v
	n.markDirty()
}

func (n *Node) GetMaxWidth() Value  { return n.style.MaxDimensions[DimensionWidth] }
func (n *Node) GetMaxHeight() Value { return n.style.MaxDimensions[DimensionHeight] }

// Edge-indexed style setters/getters. edge must be one of the nine Edge
// values (Left..All); querying outside that range is a contract violation.

func (n *Node) SetMargin(edge Edge, v Value)  { setEdgeValue(n, &n.style.Margin, edge, v) }
func (n *Node) SetPadding(edge Edge, v Value) { setEdgeValue(n, &n.style.Padding, edge, v) }
func (n *Node) SetBorder(edge Edge, v Value)  { setEdgeValue(n, &n.style.Border, edge, v) }
func (n *Node) SetPosition(edge Edge, v Value) {
	setEdgeValue(n, &n.style.Position, edge, v)
}

func setEdgeValue(n *Node, arr *[edgeCount]Value, edge Edge, v Value) {
	if edge < 0 || edge >= edgeCount {
		assertFail("edge style accessor: edge out of range")
		return
	}
	if FloatsEqual(arr[edge], v) {
		return
	}
	arr[edge] = v
	n.markDirty()
}

// GetMargin resolves through the shorthand chain (§3 edge index); the
// default for margin is 0.
func (n *Node) GetMargin(edge Edge) Value {
	if edge < 0 || edge >= edgeCount {
		assertFail("GetMargin: edge out of range")
		return Undefined
	}
	return computedEdgeValue(n.style.Margin, edge, 0)
}

// GetPadding resolves through the shorthand chain; padding's default and
// floor is 0.
func (n *Node) GetPadding(edge Edge) Value {
	if edge < 0 || edge >= edgeCount {
		assertFail("GetPadding: edge out of range")
		return Undefined
	}
	v := computedEdgeValue(n.style.Padding, edge, 0)
	if v < 0 {
		return 0
	}
	return v
}

// GetBorder resolves through the shorthand chain; border's default and
// floor is 0.
func (n *Node) GetBorder(edge Edge) Value {
	if edge < 0 || edge >= edgeCount {
		assertFail("GetBorder: edge out of range")
		return Undefined
	}
	v := computedEdgeValue(n.style.Border, edge, 0)
	if v < 0 {
		return 0
	}
	return v
}

// GetStylePosition resolves through the shorthand chain; position has no
// floor and defaults to Undefined.
func (n *Node) GetStylePosition(edge Edge) Value {
	if edge < 0 || edge >= edgeCount {
		assertFail("GetStylePosition: edge out of range")
		return Undefined
	}
	return computedEdgeValue(n.style.Position, edge, Undefined)
}
