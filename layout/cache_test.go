package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanUseCachedMeasurementExactSpecMatch(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   50,
		WidthMeasureMode:  MeasureModeExactly,
		HeightMeasureMode: MeasureModeExactly,
		ComputedWidth:     100,
		ComputedHeight:    50,
	}
	require.True(t, canUseCachedMeasurement(false, 100, 50, MeasureModeExactly, MeasureModeExactly, cached, 0, 0))
}

func TestCanUseCachedMeasurementMismatchedSpecMisses(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   50,
		WidthMeasureMode:  MeasureModeExactly,
		HeightMeasureMode: MeasureModeExactly,
		ComputedWidth:     100,
		ComputedHeight:    50,
	}
	require.False(t, canUseCachedMeasurement(false, 200, 50, MeasureModeExactly, MeasureModeExactly, cached, 0, 0))
}

func TestCanUseCachedMeasurementOldUnspecifiedStillFits(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    Undefined,
		AvailableHeight:   Undefined,
		WidthMeasureMode:  MeasureModeUndefined,
		HeightMeasureMode: MeasureModeUndefined,
		ComputedWidth:     80,
		ComputedHeight:    40,
	}
	// asking for AtMost 100 when the unconstrained measurement was 80: fits.
	require.True(t, canUseCachedMeasurement(false, 100, 100, MeasureModeAtMost, MeasureModeAtMost, cached, 0, 0))
}

func TestCanUseCachedMeasurementStricterAtMostAlwaysMisses(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   100,
		WidthMeasureMode:  MeasureModeAtMost,
		HeightMeasureMode: MeasureModeAtMost,
		ComputedWidth:     60,
		ComputedHeight:    60,
	}
	// A tighter AtMost budget forces re-measurement even though the old
	// 60-sized result would still technically fit: nothing short of an
	// exact spec match or a previously-Undefined budget is trusted without
	// re-measuring (no "stricter AtMost" disjunct, matching original_source).
	require.False(t, canUseCachedMeasurement(false, 80, 80, MeasureModeAtMost, MeasureModeAtMost, cached, 0, 0))
}

func TestCanUseCachedMeasurementStricterAtMostInvalidatesWhenTooTight(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   100,
		WidthMeasureMode:  MeasureModeAtMost,
		HeightMeasureMode: MeasureModeAtMost,
		ComputedWidth:     90,
		ComputedHeight:    90,
	}
	require.False(t, canUseCachedMeasurement(false, 50, 50, MeasureModeAtMost, MeasureModeAtMost, cached, 0, 0))
}

func TestCanUseCachedMeasurementTextNodeLooserHeight(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   20,
		WidthMeasureMode:  MeasureModeExactly,
		HeightMeasureMode: MeasureModeExactly,
		ComputedWidth:     100,
		ComputedHeight:    20,
	}
	require.True(t, canUseCachedMeasurement(true, 100, Undefined, MeasureModeExactly, MeasureModeUndefined, cached, 0, 0))
}

func TestCanUseCachedMeasurementTextNodeTightensHeightInPlace(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   20,
		WidthMeasureMode:  MeasureModeExactly,
		HeightMeasureMode: MeasureModeExactly,
		ComputedWidth:     100,
		ComputedHeight:    20,
	}
	ok := canUseCachedMeasurement(true, 100, 15, MeasureModeExactly, MeasureModeExactly, cached, 0, 0)
	require.True(t, ok)
	require.Equal(t, Value(15), cached.ComputedHeight, "text-node hit must tighten ComputedHeight to the new available height")
}

func TestCanUseCachedMeasurementTextNodeAtMostTightensInPlace(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   20,
		WidthMeasureMode:  MeasureModeExactly,
		HeightMeasureMode: MeasureModeExactly,
		ComputedWidth:     100,
		ComputedHeight:    20,
	}
	// Same width, AtMost height tighter than the cached ComputedHeight must
	// still hit (no re-measurement) and tighten ComputedHeight in place,
	// exactly like the Exactly-mode case.
	ok := canUseCachedMeasurement(true, 100, 15, MeasureModeExactly, MeasureModeAtMost, cached, 0, 0)
	require.True(t, ok)
	require.Equal(t, Value(15), cached.ComputedHeight)
}

func TestCanUseCachedMeasurementNonTextNodeNeverTakesRelaxedPath(t *testing.T) {
	cached := &CachedMeasurement{
		AvailableWidth:    100,
		AvailableHeight:   20,
		WidthMeasureMode:  MeasureModeExactly,
		HeightMeasureMode: MeasureModeExactly,
		ComputedWidth:     100,
		ComputedHeight:    20,
	}
	require.False(t, canUseCachedMeasurement(false, 100, 15, MeasureModeExactly, MeasureModeExactly, cached, 0, 0))
	require.Equal(t, Value(20), cached.ComputedHeight, "non-text nodes must never mutate the cache entry")
}
