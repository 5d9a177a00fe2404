package layout

// This file implements the layout kernel: the cache-guarded wrapper
// (LayoutNodeInternal) and the 11-step flex pass (layoutNodeImpl) it
// guards, plus the edge/axis helpers the pass depends on. The step
// numbering in comments below matches §4.5.
//
// Per §9's design note, the intrusive per-call sibling lists that
// original_source threads through a scratch node field are modeled here
// as ordinary slices built fresh on each call — behaviorally identical,
// and simpler in a garbage-collected language with no per-call allocator.

func getLeadingMargin(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Margin, EdgeStart, Undefined)
		if !IsUndefined(v) {
			return v
		}
	}
	return computedEdgeValue(n.style.Margin, leading[axis], 0)
}

func getTrailingMargin(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Margin, EdgeEnd, Undefined)
		if !IsUndefined(v) {
			return v
		}
	}
	return computedEdgeValue(n.style.Margin, trailingEdge[axis], 0)
}

func clampNonNegative(v Value) Value {
	if v < 0 {
		return 0
	}
	return v
}

func getLeadingPadding(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Padding, EdgeStart, Undefined)
		if !IsUndefined(v) {
			return clampNonNegative(v)
		}
	}
	return clampNonNegative(computedEdgeValue(n.style.Padding, leading[axis], 0))
}

func getTrailingPadding(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Padding, EdgeEnd, Undefined)
		if !IsUndefined(v) {
			return clampNonNegative(v)
		}
	}
	return clampNonNegative(computedEdgeValue(n.style.Padding, trailingEdge[axis], 0))
}

func getLeadingBorder(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Border, EdgeStart, Undefined)
		if !IsUndefined(v) {
			return clampNonNegative(v)
		}
	}
	return clampNonNegative(computedEdgeValue(n.style.Border, leading[axis], 0))
}

func getTrailingBorder(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Border, EdgeEnd, Undefined)
		if !IsUndefined(v) {
			return clampNonNegative(v)
		}
	}
	return clampNonNegative(computedEdgeValue(n.style.Border, trailingEdge[axis], 0))
}

func getLeadingPaddingAndBorder(n *Node, axis FlexDirection) Value {
	return getLeadingPadding(n, axis) + getLeadingBorder(n, axis)
}

func getTrailingPaddingAndBorder(n *Node, axis FlexDirection) Value {
	return getTrailingPadding(n, axis) + getTrailingBorder(n, axis)
}

func getMarginAxis(n *Node, axis FlexDirection) Value {
	return getLeadingMargin(n, axis) + getTrailingMargin(n, axis)
}

func getPaddingAndBorderAxis(n *Node, axis FlexDirection) Value {
	return getLeadingPaddingAndBorder(n, axis) + getTrailingPaddingAndBorder(n, axis)
}

// getAlignItem resolves a child's effective cross-axis alignment: its own
// align-self unless Auto, else the parent's align-items.
func getAlignItem(parent, child *Node) Align {
	if child.style.AlignSelf != AlignAuto {
		return child.style.AlignSelf
	}
	return parent.style.AlignItems
}

func isLeadingPosDefined(n *Node, axis FlexDirection) bool {
	if isRowDirection(axis) && !IsUndefined(computedEdgeValue(n.style.Position, EdgeStart, Undefined)) {
		return true
	}
	return !IsUndefined(computedEdgeValue(n.style.Position, leading[axis], Undefined))
}

func isTrailingPosDefined(n *Node, axis FlexDirection) bool {
	if isRowDirection(axis) && !IsUndefined(computedEdgeValue(n.style.Position, EdgeEnd, Undefined)) {
		return true
	}
	return !IsUndefined(computedEdgeValue(n.style.Position, trailingEdge[axis], Undefined))
}

func getLeadingPosition(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Position, EdgeStart, Undefined)
		if !IsUndefined(v) {
			return v
		}
	}
	return computedEdgeValue(n.style.Position, leading[axis], Undefined)
}

func getTrailingPositionValue(n *Node, axis FlexDirection) Value {
	if isRowDirection(axis) {
		v := computedEdgeValue(n.style.Position, EdgeEnd, Undefined)
		if !IsUndefined(v) {
			return v
		}
	}
	return computedEdgeValue(n.style.Position, trailingEdge[axis], Undefined)
}

func isStyleDimDefined(n *Node, axis FlexDirection) bool {
	v := n.style.Dimensions[dim[axis]]
	return !IsUndefined(v) && v >= 0
}

func getRelativePosition(n *Node, axis FlexDirection) Value {
	if isLeadingPosDefined(n, axis) {
		return getLeadingPosition(n, axis)
	}
	if isTrailingPosDefined(n, axis) {
		return -getTrailingPositionValue(n, axis)
	}
	return 0
}

// setPosition writes a node's initial position on both axes from margin
// plus relative (in-flow-independent) position, per §4.6.
func setPosition(n *Node, direction Direction) {
	mainAxis := resolveAxis(n.style.FlexDirection, direction)
	crossAxis := getCrossFlexDirection(mainAxis, direction)

	n.layout.position[leading[mainAxis]] = getLeadingMargin(n, mainAxis) + getRelativePosition(n, mainAxis)
	n.layout.position[trailingEdge[mainAxis]] = getTrailingMargin(n, mainAxis) + getRelativePosition(n, mainAxis)
	n.layout.position[leading[crossAxis]] = getLeadingMargin(n, crossAxis) + getRelativePosition(n, crossAxis)
	n.layout.position[trailingEdge[crossAxis]] = getTrailingMargin(n, crossAxis) + getRelativePosition(n, crossAxis)
}

// setTrailingPosition implements Step 11: recompute a child's trailing
// position from the parent's final measured size.
func setTrailingPosition(parent, child *Node, axis FlexDirection) {
	child.layout.position[trailingEdge[axis]] = parent.layout.measuredDimensions[dim[axis]] -
		child.layout.measuredDimensions[dim[axis]] - child.layout.position[leading[axis]]
}

func boundAxisWithinMinAndMax(n *Node, axis FlexDirection, value Value) Value {
	min := n.style.MinDimensions[dim[axis]]
	max := n.style.MaxDimensions[dim[axis]]
	bounded := value
	if !IsUndefined(max) && max >= 0 && bounded > max {
		bounded = max
	}
	if !IsUndefined(min) && min >= 0 && bounded < min {
		bounded = min
	}
	return bounded
}

// boundAxis clamps value to the node's min/max on axis, then floors it at
// the node's own padding-and-border: a node is never smaller than its
// own frame.
func boundAxis(n *Node, axis FlexDirection, value Value) Value {
	return maxValue(boundAxisWithinMinAndMax(n, axis, value), getPaddingAndBorderAxis(n, axis))
}

func getDimWithMargin(n *Node, axis FlexDirection) Value {
	return n.layout.measuredDimensions[dim[axis]] + getLeadingMargin(n, axis) + getTrailingMargin(n, axis)
}

// computeChildFlexBasis resolves a child's hypothetical main size (§4.5
// Step 3). It memoizes into child.layout.computedFlexBasis, which dirty
// propagation invalidates (§4.2), so repeat calls within the same pass are
// free.
func computeChildFlexBasis(node, child *Node, width Value, widthMode MeasureMode, height Value, heightMode MeasureMode, direction Direction) {
	if !IsUndefined(child.layout.computedFlexBasis) {
		return
	}

	mainAxis := resolveAxis(node.style.FlexDirection, direction)
	isMainAxisRow := isRowDirection(mainAxis)
	mainAxisSize := height
	if isMainAxisRow {
		mainAxisSize = width
	}

	if !IsUndefined(child.style.FlexBasis) && !IsUndefined(mainAxisSize) {
		child.layout.computedFlexBasis = maxValue(child.style.FlexBasis, getPaddingAndBorderAxis(child, mainAxis))
		return
	}
	if isMainAxisRow && isStyleDimDefined(child, FlexDirectionRow) {
		child.layout.computedFlexBasis = maxValue(child.style.Dimensions[DimensionWidth], getPaddingAndBorderAxis(child, FlexDirectionRow))
		return
	}
	if !isMainAxisRow && isStyleDimDefined(child, FlexDirectionColumn) {
		child.layout.computedFlexBasis = maxValue(child.style.Dimensions[DimensionHeight], getPaddingAndBorderAxis(child, FlexDirectionColumn))
		return
	}

	childWidth := Value(Undefined)
	childHeight := Value(Undefined)
	childWidthMeasureMode := MeasureModeUndefined
	childHeightMeasureMode := MeasureModeUndefined

	childAlign := getAlignItem(node, child)

	if isMainAxisRow {
		childWidth = width
		if !IsUndefined(width) {
			// See §9: the overflow==Scroll exemption here is a tautological
			// disjunction in original_source — the AtMost clamp always
			// applies regardless of overflow. Reproduced as always-clamp.
			childWidthMeasureMode = MeasureModeAtMost
		}
		if childAlign == AlignStretch && !IsUndefined(height) {
			childHeight = height
			childHeightMeasureMode = MeasureModeExactly
		}
	} else {
		childHeight = height
		if !IsUndefined(height) {
			childHeightMeasureMode = MeasureModeAtMost
		}
		if childAlign == AlignStretch && !IsUndefined(width) {
			childWidth = width
			childWidthMeasureMode = MeasureModeExactly
		}
	}

	if isStyleDimDefined(child, FlexDirectionRow) {
		childWidth = child.style.Dimensions[DimensionWidth]
		childWidthMeasureMode = MeasureModeExactly
	}
	if isStyleDimDefined(child, FlexDirectionColumn) {
		childHeight = child.style.Dimensions[DimensionHeight]
		childHeightMeasureMode = MeasureModeExactly
	}

	LayoutNodeInternal(child, childWidth, childHeight, direction, childWidthMeasureMode, childHeightMeasureMode, false, "measure")

	if isMainAxisRow {
		child.layout.computedFlexBasis = maxValue(child.layout.measuredDimensions[DimensionWidth], getPaddingAndBorderAxis(child, FlexDirectionRow))
	} else {
		child.layout.computedFlexBasis = maxValue(child.layout.measuredDimensions[DimensionHeight], getPaddingAndBorderAxis(child, FlexDirectionColumn))
	}
}

// absoluteLayoutChild implements §4.5 Step 10 for a single absolutely
// positioned child.
func absoluteLayoutChild(node, child *Node, width, height Value, direction Direction) {
	mainAxis := resolveAxis(node.style.FlexDirection, direction)
	crossAxis := getCrossFlexDirection(mainAxis, direction)

	childWidth := Value(Undefined)
	childHeight := Value(Undefined)

	if isStyleDimDefined(child, FlexDirectionRow) {
		childWidth = child.style.Dimensions[DimensionWidth] + getMarginAxis(child, FlexDirectionRow)
	} else if isLeadingPosDefined(child, FlexDirectionRow) && isTrailingPosDefined(child, FlexDirectionRow) {
		childWidth = node.layout.measuredDimensions[DimensionWidth] -
			(getLeadingBorder(node, FlexDirectionRow) + getTrailingBorder(node, FlexDirectionRow)) -
			(getLeadingPosition(child, FlexDirectionRow) + getTrailingPositionValue(child, FlexDirectionRow))
		childWidth = boundAxis(child, FlexDirectionRow, childWidth)
	}

	if isStyleDimDefined(child, FlexDirectionColumn) {
		childHeight = child.style.Dimensions[DimensionHeight] + getMarginAxis(child, FlexDirectionColumn)
	} else if isLeadingPosDefined(child, FlexDirectionColumn) && isTrailingPosDefined(child, FlexDirectionColumn) {
		childHeight = node.layout.measuredDimensions[DimensionHeight] -
			(getLeadingBorder(node, FlexDirectionColumn) + getTrailingBorder(node, FlexDirectionColumn)) -
			(getLeadingPosition(child, FlexDirectionColumn) + getTrailingPositionValue(child, FlexDirectionColumn))
		childHeight = boundAxis(child, FlexDirectionColumn, childHeight)
	}

	if IsUndefined(childWidth) || IsUndefined(childHeight) {
		childWidthMeasureMode := MeasureModeExactly
		if IsUndefined(childWidth) {
			childWidthMeasureMode = MeasureModeAtMost
			childWidth = width
		}
		childHeightMeasureMode := MeasureModeExactly
		if IsUndefined(childHeight) {
			childHeightMeasureMode = MeasureModeAtMost
			childHeight = height
		}
		LayoutNodeInternal(child, childWidth, childHeight, direction, childWidthMeasureMode, childHeightMeasureMode, false, "abs-measure")
		childWidth = child.layout.measuredDimensions[DimensionWidth] + getMarginAxis(child, FlexDirectionRow)
		childHeight = child.layout.measuredDimensions[DimensionHeight] + getMarginAxis(child, FlexDirectionColumn)
	}

	LayoutNodeInternal(child, childWidth, childHeight, direction, MeasureModeExactly, MeasureModeExactly, true, "abs-layout")

	if isLeadingPosDefined(child, mainAxis) {
		child.layout.position[leading[mainAxis]] = getLeadingBorder(node, mainAxis) +
			getLeadingPosition(child, mainAxis) + getLeadingMargin(child, mainAxis)
	}
	if isLeadingPosDefined(child, crossAxis) {
		child.layout.position[leading[crossAxis]] = getLeadingBorder(node, crossAxis) +
			getLeadingPosition(child, crossAxis) + getLeadingMargin(child, crossAxis)
	}
	if isTrailingPosDefined(child, mainAxis) && !isLeadingPosDefined(child, mainAxis) {
		child.layout.position[leading[mainAxis]] = node.layout.measuredDimensions[dim[mainAxis]] -
			child.layout.measuredDimensions[dim[mainAxis]] - getTrailingPositionValue(child, mainAxis)
	}
	if isTrailingPosDefined(child, crossAxis) && !isLeadingPosDefined(child, crossAxis) {
		child.layout.position[leading[crossAxis]] = node.layout.measuredDimensions[dim[crossAxis]] -
			child.layout.measuredDimensions[dim[crossAxis]] - getTrailingPositionValue(child, crossAxis)
	}
}

// flexLine is one row/column of in-flow children collected by Step 4.
type flexLine struct {
	items                        []*Node
	sizeConsumed                 Value
	totalFlexGrowFactors         Value
	totalFlexShrinkScaledFactors Value
}

// LayoutNodeInternal is the cache-guarded wrapper of §4.4. It returns true
// if it actually performed work (cache miss, or a full-layout pass that
// must (re)write positions).
func LayoutNodeInternal(node *Node, availableWidth, availableHeight Value, parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode, performLayout bool, reason string) bool {
	layout := &node.layout

	assertCond(!IsUndefined(availableWidth) || widthMeasureMode == MeasureModeUndefined, "availableWidth undefined but widthMeasureMode is not Undefined")
	assertCond(!IsUndefined(availableHeight) || heightMeasureMode == MeasureModeUndefined, "availableHeight undefined but heightMeasureMode is not Undefined")

	if node.isDirty || layout.lastParentDirection != parentDirection {
		layout.nextCachedMeasurementsIndex = 0
		layout.cachedMeasurementsCount = 0
		layout.hasCachedLayout = false
	}

	var cached *CachedMeasurement
	if node.measure != nil {
		marginRow := getMarginAxis(node, FlexDirectionRow)
		marginColumn := getMarginAxis(node, FlexDirectionColumn)

		if layout.hasCachedLayout && canUseCachedMeasurement(node.isTextNode, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, &layout.cachedLayout, marginRow, marginColumn) {
			cached = &layout.cachedLayout
		} else {
			for i := 0; i < layout.cachedMeasurementsCount; i++ {
				if canUseCachedMeasurement(node.isTextNode, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, &layout.cachedMeasurements[i], marginRow, marginColumn) {
					cached = &layout.cachedMeasurements[i]
					break
				}
			}
		}
	} else if performLayout {
		if layout.hasCachedLayout &&
			FloatsEqual(layout.cachedLayout.AvailableWidth, availableWidth) &&
			FloatsEqual(layout.cachedLayout.AvailableHeight, availableHeight) &&
			layout.cachedLayout.WidthMeasureMode == widthMeasureMode &&
			layout.cachedLayout.HeightMeasureMode == heightMeasureMode {
			cached = &layout.cachedLayout
		}
	} else {
		for i := 0; i < layout.cachedMeasurementsCount; i++ {
			c := &layout.cachedMeasurements[i]
			if FloatsEqual(c.AvailableWidth, availableWidth) &&
				FloatsEqual(c.AvailableHeight, availableHeight) &&
				c.WidthMeasureMode == widthMeasureMode &&
				c.HeightMeasureMode == heightMeasureMode {
				cached = c
				break
			}
		}
	}

	if cached != nil {
		layout.measuredDimensions[DimensionWidth] = cached.ComputedWidth
		layout.measuredDimensions[DimensionHeight] = cached.ComputedHeight
	} else {
		layoutNodeImpl(node, availableWidth, availableHeight, parentDirection, widthMeasureMode, heightMeasureMode, performLayout)

		layout.lastParentDirection = parentDirection

		var slot *CachedMeasurement
		if performLayout {
			layout.hasCachedLayout = true
			slot = &layout.cachedLayout
		} else {
			idx := layout.nextCachedMeasurementsIndex
			slot = &layout.cachedMeasurements[idx]
			layout.nextCachedMeasurementsIndex = (idx + 1) % maxCachedResultCount
			if layout.cachedMeasurementsCount < maxCachedResultCount {
				layout.cachedMeasurementsCount++
			}
		}
		slot.AvailableWidth = availableWidth
		slot.AvailableHeight = availableHeight
		slot.WidthMeasureMode = widthMeasureMode
		slot.HeightMeasureMode = heightMeasureMode
		slot.ComputedWidth = layout.measuredDimensions[DimensionWidth]
		slot.ComputedHeight = layout.measuredDimensions[DimensionHeight]
	}

	if performLayout {
		layout.dimensions[DimensionWidth] = layout.measuredDimensions[DimensionWidth]
		layout.dimensions[DimensionHeight] = layout.measuredDimensions[DimensionHeight]
		layout.hasNewLayout = true
		node.isDirty = false
	}

	layout.generationCount = currentGenerationCount
	return cached == nil
}

// layoutNodeImpl is the 11-step core pass (§4.5).
func layoutNodeImpl(node *Node, availableWidth, availableHeight Value, parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode, performLayout bool) {
	direction := resolveDirection(node.style.Direction, parentDirection)
	node.layout.direction = direction

	marginRow := getMarginAxis(node, FlexDirectionRow)
	marginColumn := getMarginAxis(node, FlexDirectionColumn)
	paddingBorderRow := getPaddingAndBorderAxis(node, FlexDirectionRow)
	paddingBorderColumn := getPaddingAndBorderAxis(node, FlexDirectionColumn)

	// Step 0: leaf-with-measure-function short circuit.
	if node.measure != nil && len(node.children) == 0 {
		innerWidth := availableWidth - marginRow - paddingBorderRow
		innerHeight := availableHeight - marginColumn - paddingBorderColumn

		if widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, availableWidth-marginRow)
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, availableHeight-marginColumn)
			return
		}

		if innerWidth <= 0 || innerHeight <= 0 {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, 0)
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, 0)
			return
		}

		measuredW, measuredH := node.measure(node.context, float32(innerWidth), widthMeasureMode, float32(innerHeight), heightMeasureMode)

		if widthMeasureMode == MeasureModeExactly {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, availableWidth-marginRow)
		} else {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, Value(measuredW)+paddingBorderRow)
		}
		if heightMeasureMode == MeasureModeExactly {
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, availableHeight-marginColumn)
		} else {
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, Value(measuredH)+paddingBorderColumn)
		}
		return
	}

	// No children at all.
	if len(node.children) == 0 {
		var w, h Value
		if widthMeasureMode == MeasureModeExactly {
			w = availableWidth - marginRow
		} else {
			w = paddingBorderRow
		}
		if heightMeasureMode == MeasureModeExactly {
			h = availableHeight - marginColumn
		} else {
			h = paddingBorderColumn
		}
		node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, w)
		node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, h)
		return
	}

	// Cheap cases when this call is only a measurement, not a full layout.
	if !performLayout {
		if widthMeasureMode == MeasureModeAtMost && heightMeasureMode == MeasureModeAtMost && availableWidth <= 0 && availableHeight <= 0 {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, 0)
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, 0)
			return
		}
		if widthMeasureMode == MeasureModeAtMost && availableWidth <= 0 {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, 0)
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, availableHeight-marginColumn)
			return
		}
		if heightMeasureMode == MeasureModeAtMost && availableHeight <= 0 {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, availableWidth-marginRow)
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, 0)
			return
		}
		if widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly {
			node.layout.measuredDimensions[DimensionWidth] = boundAxis(node, FlexDirectionRow, availableWidth-marginRow)
			node.layout.measuredDimensions[DimensionHeight] = boundAxis(node, FlexDirectionColumn, availableHeight-marginColumn)
			return
		}
	}

	// Steps 1-2: axis setup.
	mainAxis := resolveAxis(node.style.FlexDirection, direction)
	crossAxis := getCrossFlexDirection(mainAxis, direction)
	isMainAxisRow := isRowDirection(mainAxis)
	justifyContent := node.style.JustifyContent

	availableInnerWidth := availableWidth - marginRow - paddingBorderRow
	availableInnerHeight := availableHeight - marginColumn - paddingBorderColumn
	availableInnerMain := availableInnerWidth
	availableInnerCross := availableInnerHeight
	if !isMainAxisRow {
		availableInnerMain = availableInnerHeight
		availableInnerCross = availableInnerWidth
	}

	// Step 3: flex basis per child, splitting into absolute vs relative.
	var absoluteChildren []*Node
	var relativeChildren []*Node
	for _, child := range node.children {
		if child.style.PositionType == PositionAbsolute {
			absoluteChildren = append(absoluteChildren, child)
			continue
		}
		computeChildFlexBasis(node, child, availableInnerWidth, widthMeasureMode, availableInnerHeight, heightMeasureMode, direction)
		relativeChildren = append(relativeChildren, child)
	}

	// Step 4: collect into lines.
	var lines []*flexLine
	{
		cur := &flexLine{}
		for _, child := range relativeChildren {
			outer := child.layout.computedFlexBasis + getMarginAxis(child, mainAxis)
			if node.style.FlexWrap == WrapWrap && len(cur.items) > 0 && cur.sizeConsumed+outer > availableInnerMain && !IsUndefined(availableInnerMain) {
				lines = append(lines, cur)
				cur = &flexLine{}
			}
			cur.items = append(cur.items, child)
			cur.sizeConsumed += outer
			if child.style.FlexGrow > 0 {
				cur.totalFlexGrowFactors += child.style.FlexGrow
			}
			if child.style.FlexShrink > 0 {
				cur.totalFlexShrinkScaledFactors += -child.style.FlexShrink * child.layout.computedFlexBasis
			}
		}
		lines = append(lines, cur)
	}

	// Step 5: resolve flexible lengths, one line at a time.
	for _, line := range lines {
		remainingFreeSpace := availableInnerMain - line.sizeConsumed
		if IsUndefined(availableInnerMain) {
			remainingFreeSpace = 0
		}

		totalGrow := line.totalFlexGrowFactors
		totalShrinkScaled := line.totalFlexShrinkScaledFactors

		finalMain := make(map[*Node]Value, len(line.items))

		// Pass 1: detect clamp-triggering items and remove their
		// contribution from the totals.
		deltaFreeSpace := Value(0)
		for _, child := range line.items {
			basis := child.layout.computedFlexBasis
			childFlexBasisMargin := basis + getMarginAxis(child, mainAxis)
			updatedMain := childFlexBasisMargin
			if remainingFreeSpace < 0 && totalShrinkScaled != 0 && child.style.FlexShrink > 0 {
				shrinkScaled := -child.style.FlexShrink * basis
				updatedMain = basis + remainingFreeSpace*(shrinkScaled/totalShrinkScaled)
			} else if remainingFreeSpace > 0 && totalGrow != 0 && child.style.FlexGrow > 0 {
				updatedMain = basis + remainingFreeSpace*(child.style.FlexGrow/totalGrow)
			}
			bounded := boundAxis(child, mainAxis, updatedMain)
			if !FloatsEqual(bounded, updatedMain) {
				finalMain[child] = bounded
				totalGrow -= child.style.FlexGrow
				totalShrinkScaled -= -child.style.FlexShrink * basis
				deltaFreeSpace += bounded - childFlexBasisMargin
			}
		}
		remainingFreeSpace -= deltaFreeSpace

		// Pass 2: distribute to the unclamped items with adjusted totals.
		for _, child := range line.items {
			if _, already := finalMain[child]; already {
				continue
			}
			basis := child.layout.computedFlexBasis
			updatedMain := basis
			if remainingFreeSpace < 0 && totalShrinkScaled != 0 && child.style.FlexShrink > 0 {
				shrinkScaled := -child.style.FlexShrink * basis
				updatedMain = basis + remainingFreeSpace*(shrinkScaled/totalShrinkScaled)
			} else if remainingFreeSpace > 0 && totalGrow != 0 && child.style.FlexGrow > 0 {
				updatedMain = basis + remainingFreeSpace*(child.style.FlexGrow/totalGrow)
			}
			finalMain[child] = boundAxis(child, mainAxis, updatedMain)
		}

		for _, child := range line.items {
			updatedMain := finalMain[child]

			childAlign := getAlignItem(node, child)
			childCrossMode := MeasureModeAtMost
			childCross := availableInnerCross
			if IsUndefined(availableInnerCross) {
				childCrossMode = MeasureModeUndefined
			}
			requiresStretch := false
			if isStyleDimDefined(child, crossAxis) {
				childCrossMode = MeasureModeExactly
				childCross = child.style.Dimensions[dim[crossAxis]]
			} else if childAlign == AlignStretch && !IsUndefined(availableInnerCross) {
				if isMainAxisRow {
					requiresStretch = true
				}
				childCrossMode = MeasureModeExactly
				childCross = availableInnerCross
			}

			childMain := updatedMain
			childMainMode := MeasureModeExactly

			var w, h Value
			var wMode, hMode MeasureMode
			if isMainAxisRow {
				w, wMode = childMain, childMainMode
				h, hMode = childCross, childCrossMode
			} else {
				h, hMode = childMain, childMainMode
				w, wMode = childCross, childCrossMode
			}

			LayoutNodeInternal(child, w, h, direction, wMode, hMode, performLayout && !requiresStretch, "flex")
		}
	}

	// Step 6: justification per line, Step 6b: place along main axis.
	for lineIdx, line := range lines {
		mainDim := getLeadingPaddingAndBorder(node, mainAxis)
		crossDim := Value(0)

		remainingFreeSpace := Value(0)
		if !IsUndefined(availableInnerMain) {
			remainingFreeSpace = availableInnerMain - line.sizeConsumed
			if mainModeOf(isMainAxisRow, widthMeasureMode, heightMeasureMode) == MeasureModeAtMost && remainingFreeSpace > 0 {
				minMain := node.style.MinDimensions[dim[mainAxis]]
				if !IsUndefined(minMain) {
					clamped := boundAxisWithinMinAndMax(node, mainAxis, line.sizeConsumed+remainingFreeSpace) - line.sizeConsumed
					if clamped < remainingFreeSpace {
						remainingFreeSpace = clamped
					}
				}
			}
		}

		itemCount := len(line.items)
		var leadingMainDim, betweenMainDim Value
		switch justifyContent {
		case JustifyCenter:
			leadingMainDim = remainingFreeSpace / 2
		case JustifyFlexEnd:
			leadingMainDim = remainingFreeSpace
		case JustifySpaceBetween:
			if itemCount > 1 {
				betweenMainDim = maxValue(remainingFreeSpace, 0) / Value(itemCount-1)
			}
		case JustifySpaceAround:
			// itemCount==1 makes this equal Center, per §9: documented,
			// not special-cased away.
			if itemCount > 0 {
				betweenMainDim = remainingFreeSpace / Value(itemCount)
				leadingMainDim = betweenMainDim / 2
			}
		}

		mainDim += leadingMainDim

		for i, child := range line.items {
			child.layout.lineIndex = lineIdx
			child.layout.position[leading[mainAxis]] = mainDim
			mainDim += getDimWithMargin(child, mainAxis)
			if i != len(line.items)-1 {
				mainDim += betweenMainDim
			}
			crossDim = maxValue(crossDim, getDimWithMargin(child, crossAxis))
		}

		line.sizeConsumed = mainDim
		line.totalFlexGrowFactors = crossDim // repurpose storage: cross size of the line for Step 7/8
	}

	// Step 7: cross-axis alignment.
	if performLayout {
		totalLineCrossDim := Value(0)
		for _, line := range lines {
			lineCross := line.totalFlexGrowFactors

			containerCrossAxis := availableInnerCross
			crossMode := crossModeOf(isMainAxisRow, widthMeasureMode, heightMeasureMode)
			if crossMode == MeasureModeUndefined || crossMode == MeasureModeAtMost {
				containerCrossAxis = boundAxis(node, crossAxis, lineCross+getPaddingAndBorderAxis(node, crossAxis)) - getPaddingAndBorderAxis(node, crossAxis)
				if crossMode == MeasureModeAtMost {
					containerCrossAxis = minValue(containerCrossAxis, availableInnerCross)
				}
			} else if node.style.FlexWrap == WrapNoWrap && crossMode == MeasureModeExactly {
				containerCrossAxis = availableInnerCross
			}
			containerCrossAxis = boundAxisWithinMinAndMax(node, crossAxis, containerCrossAxis)

			for _, child := range line.items {
				childAlign := getAlignItem(node, child)
				if childAlign == AlignStretch && !isStyleDimDefined(child, crossAxis) {
					var w, h Value
					var wMode, hMode MeasureMode
					currentMain := child.layout.measuredDimensions[dim[mainAxis]]
					if isMainAxisRow {
						w, wMode = currentMain, MeasureModeExactly
						h, hMode = containerCrossAxis, MeasureModeExactly
					} else {
						h, hMode = currentMain, MeasureModeExactly
						w, wMode = containerCrossAxis, MeasureModeExactly
					}
					LayoutNodeInternal(child, w, h, direction, wMode, hMode, true, "stretch")
					child.layout.position[leading[crossAxis]] = getLeadingPaddingAndBorder(node, crossAxis)
				} else if childAlign != AlignStretch {
					remainingCrossDim := containerCrossAxis - getDimWithMargin(child, crossAxis)
					var shift Value
					switch childAlign {
					case AlignCenter:
						shift = remainingCrossDim / 2
					case AlignFlexEnd:
						shift = remainingCrossDim
					}
					child.layout.position[leading[crossAxis]] = getLeadingPaddingAndBorder(node, crossAxis) + shift
				} else {
					child.layout.position[leading[crossAxis]] = getLeadingPaddingAndBorder(node, crossAxis)
				}
				child.layout.position[leading[crossAxis]] += totalLineCrossDim
			}

			totalLineCrossDim += lineCross
		}

		// Step 8: multi-line content alignment.
		if len(lines) > 1 && !IsUndefined(availableInnerCross) {
			crossDimRemaining := availableInnerCross - totalLineCrossDim
			if crossDimRemaining > 0 {
				nLines := Value(len(lines))
				var leadingCross, betweenCross Value
				switch node.style.AlignContent {
				case AlignCenter:
					leadingCross = crossDimRemaining / 2
				case AlignFlexEnd:
					leadingCross = crossDimRemaining
				case AlignStretch:
					if nLines > 0 {
						betweenCross = crossDimRemaining / nLines
					}
				}
				// offset only carries the extra inter-line gap content
				// alignment inserts; Step 7 already baked each line's own
				// cross extent into position via totalLineCrossDim, so it
				// must not be added again here.
				offset := leadingCross
				for _, line := range lines {
					for _, child := range line.items {
						child.layout.position[leading[crossAxis]] += offset
					}
					offset += betweenCross
				}
			}
		}
	}

	// Step 9: final container sizing. Start from boundAxis(availableMinusMargin)
	// on both axes, then override the main and cross axes individually when
	// their measure mode isn't Exactly.
	mainAvailableMinusMargin := availableWidth - marginRow
	crossAvailableMinusMargin := availableHeight - marginColumn
	if !isMainAxisRow {
		mainAvailableMinusMargin, crossAvailableMinusMargin = availableHeight-marginColumn, availableWidth-marginRow
	}
	setMeasuredDimension(node, mainAxis, boundAxis(node, mainAxis, mainAvailableMinusMargin))
	setMeasuredDimension(node, crossAxis, boundAxis(node, crossAxis, crossAvailableMinusMargin))

	maxLineMainDim := Value(0)
	totalLineCrossDim := Value(0)
	for _, line := range lines {
		maxLineMainDim = maxValue(maxLineMainDim, line.sizeConsumed)
		totalLineCrossDim += line.totalFlexGrowFactors
	}

	switch mainModeOf(isMainAxisRow, widthMeasureMode, heightMeasureMode) {
	case MeasureModeUndefined:
		setMeasuredDimension(node, mainAxis, boundAxis(node, mainAxis, maxLineMainDim))
	case MeasureModeAtMost:
		setMeasuredDimension(node, mainAxis, maxValue(getPaddingAndBorderAxis(node, mainAxis),
			minValue(availableInnerMain+getPaddingAndBorderAxis(node, mainAxis), boundAxisWithinMinAndMax(node, mainAxis, maxLineMainDim))))
	}

	switch crossModeOf(isMainAxisRow, widthMeasureMode, heightMeasureMode) {
	case MeasureModeUndefined:
		setMeasuredDimension(node, crossAxis, boundAxis(node, crossAxis, totalLineCrossDim+getPaddingAndBorderAxis(node, crossAxis)))
	case MeasureModeAtMost:
		setMeasuredDimension(node, crossAxis, maxValue(getPaddingAndBorderAxis(node, crossAxis),
			minValue(availableInnerCross+getPaddingAndBorderAxis(node, crossAxis), boundAxisWithinMinAndMax(node, crossAxis, totalLineCrossDim+getPaddingAndBorderAxis(node, crossAxis)))))
	}

	// Step 10: absolute children.
	if performLayout {
		for _, child := range absoluteChildren {
			absoluteLayoutChild(node, child, availableInnerWidth, availableInnerHeight, direction)
		}

		// Step 11: trailing positions for reverse directions. The
		// cross-axis predicate below is written as original_source wrote
		// it — effectively always true — rather than "fixed" to test
		// crossAxis for reversal (§9).
		needsMainTrailingPos := mainAxis == FlexDirectionRowReverse || mainAxis == FlexDirectionColumnReverse
		needsCrossTrailingPos := true // mirrors the always-true source condition

		if needsMainTrailingPos || needsCrossTrailingPos {
			for _, child := range node.children {
				if child.style.PositionType == PositionAbsolute {
					continue
				}
				if needsMainTrailingPos {
					setTrailingPosition(node, child, mainAxis)
				}
				if needsCrossTrailingPos {
					setTrailingPosition(node, child, crossAxis)
				}
			}
		}
	}
}

func setMeasuredDimension(node *Node, axis FlexDirection, v Value) {
	node.layout.measuredDimensions[dim[axis]] = v
}

// mainModeOf and crossModeOf pick out whichever of (widthMeasureMode,
// heightMeasureMode) applies to the main/cross axis given which physical
// axis is main.
func mainModeOf(isMainAxisRow bool, wMode, hMode MeasureMode) MeasureMode {
	if isMainAxisRow {
		return wMode
	}
	return hMode
}

func crossModeOf(isMainAxisRow bool, wMode, hMode MeasureMode) MeasureMode {
	if isMainAxisRow {
		return hMode
	}
	return wMode
}
