package layout

// currentGenerationCount is bumped on every top-level Calculate. Per §5 it
// is process-wide, matching original_source's gCurrentGenerationCount:
// this engine does not support laying out a tree concurrently with
// itself, so a package-level counter needs no further synchronization
// (see DESIGN.md's Open Question decision).
var currentGenerationCount uint32

// depthCounter is a debug recursion-depth counter, mirroring
// original_source's gDepth. Nothing in the package updates or reads it,
// and it is not exported.
var depthCounter int

// Calculate is the public entry point (§4.6). It seeds the root's
// available width/height and measure modes from availableWidth/Height (if
// given), else from the root's own style dimensions, else its max
// dimensions, else Undefined, then runs a full layout pass and finally
// sets the root's own position from its margin and relative position.
func Calculate(node *Node, availableWidth, availableHeight Value, parentDirection Direction) {
	currentGenerationCount++

	width, widthMode := seedAvailable(availableWidth, node.style.Dimensions[DimensionWidth], node.style.MaxDimensions[DimensionWidth], getMarginAxis(node, FlexDirectionRow))
	height, heightMode := seedAvailable(availableHeight, node.style.Dimensions[DimensionHeight], node.style.MaxDimensions[DimensionHeight], getMarginAxis(node, FlexDirectionColumn))

	if LayoutNodeInternal(node, width, height, parentDirection, widthMode, heightMode, true, "initial") {
		setPosition(node, node.layout.direction)
	}
}

func seedAvailable(available, styleDim, maxDim, marginAxis Value) (Value, MeasureMode) {
	if !IsUndefined(available) {
		return available, MeasureModeExactly
	}
	if !IsUndefined(styleDim) {
		return styleDim + marginAxis, MeasureModeExactly
	}
	if !IsUndefined(maxDim) && maxDim >= 0 {
		return maxDim, MeasureModeAtMost
	}
	return Undefined, MeasureModeUndefined
}
