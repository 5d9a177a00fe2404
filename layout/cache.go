package layout

// maxCachedResultCount bounds the per-node ring of measure-only cache
// entries. Overflow wraps the cursor back to 0, silently discarding the
// oldest entry; this is not an error (§7).
const maxCachedResultCount = 16

// CachedMeasurement is one (constraints) -> (result) cache entry, keyed by
// the four inputs a measure-only layout call can vary over.
type CachedMeasurement struct {
	AvailableWidth  Value
	AvailableHeight Value

	WidthMeasureMode  MeasureMode
	HeightMeasureMode MeasureMode

	ComputedWidth  Value
	ComputedHeight Value
}

func newCachedMeasurement() CachedMeasurement {
	return CachedMeasurement{
		AvailableWidth:    Undefined,
		AvailableHeight:   Undefined,
		WidthMeasureMode:  MeasureMode(-1),
		HeightMeasureMode: MeasureMode(-1),
		ComputedWidth:     Undefined,
		ComputedHeight:    Undefined,
	}
}

// canUseCachedMeasurement implements the hit predicate of §4.3. It takes
// the candidate entry as a *CachedMeasurement because the text-node tightened-height
// case mutates the candidate entry's ComputedHeight in place — reproduced
// exactly as original_source's CSSLayout.c does it, bug or not (§9).
func canUseCachedMeasurement(
	isTextNode bool,
	availableWidth, availableHeight Value,
	widthMeasureMode, heightMeasureMode MeasureMode,
	cached *CachedMeasurement,
	marginRow, marginColumn Value,
) bool {
	hasSameWidthSpec := cached.WidthMeasureMode == widthMeasureMode && FloatsEqual(cached.AvailableWidth, availableWidth)
	hasSameHeightSpec := cached.HeightMeasureMode == heightMeasureMode && FloatsEqual(cached.AvailableHeight, availableHeight)

	oldSizeIsUnspecifiedAndStillFits := widthMeasureMode == MeasureModeAtMost &&
		cached.WidthMeasureMode == MeasureModeUndefined &&
		(availableWidth-marginRow >= cached.ComputedWidth || FloatsEqual(availableWidth-marginRow, cached.ComputedWidth))

	widthIsCompatible := hasSameWidthSpec || oldSizeIsUnspecifiedAndStillFits

	oldHeightIsUnspecifiedAndStillFits := heightMeasureMode == MeasureModeAtMost &&
		cached.HeightMeasureMode == MeasureModeUndefined &&
		(availableHeight-marginColumn >= cached.ComputedHeight || FloatsEqual(availableHeight-marginColumn, cached.ComputedHeight))

	heightIsCompatible := hasSameHeightSpec || oldHeightIsUnspecifiedAndStillFits

	if widthIsCompatible && heightIsCompatible {
		return true
	}

	if !isTextNode {
		return false
	}

	// Text nodes additionally permit reusing a measurement taken at the
	// same width for any height constraint: unrestricted, looser AtMost,
	// or tighter — and, as in original_source, a tighter bound (AtMost or
	// Exactly) tightens the reused entry's ComputedHeight in place rather
	// than forcing a re-measurement.
	sameWidth := hasSameWidthSpec || (widthMeasureMode == MeasureModeExactly &&
		FloatsEqual(availableWidth-marginRow, cached.ComputedWidth))
	if !sameWidth {
		return false
	}

	if IsUndefined(availableHeight) {
		return true
	}

	newInnerHeight := availableHeight - marginColumn
	if heightMeasureMode == MeasureModeAtMost && cached.ComputedHeight <= newInnerHeight {
		return true
	}
	if heightMeasureMode == MeasureModeExactly || heightMeasureMode == MeasureModeAtMost {
		cached.ComputedHeight = newInnerHeight
		return true
	}

	return false
}
