package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputedEdgeValueShorthandChain(t *testing.T) {
	var edges [edgeCount]Value
	for i := range edges {
		edges[i] = Undefined
	}

	// nothing set: falls through to defaultValue.
	require.Equal(t, Value(9), computedEdgeValue(edges, EdgeTop, 9))

	// All sets every physical edge.
	edges[EdgeAll] = 1
	require.Equal(t, Value(1), computedEdgeValue(edges, EdgeTop, 9))
	require.Equal(t, Value(1), computedEdgeValue(edges, EdgeLeft, 9))

	// Vertical overrides All for Top/Bottom only.
	edges[EdgeVertical] = 2
	require.Equal(t, Value(2), computedEdgeValue(edges, EdgeTop, 9))
	require.Equal(t, Value(2), computedEdgeValue(edges, EdgeBottom, 9))
	require.Equal(t, Value(1), computedEdgeValue(edges, EdgeLeft, 9))

	// Horizontal overrides All for Left/Right/Start/End.
	edges[EdgeHorizontal] = 3
	require.Equal(t, Value(3), computedEdgeValue(edges, EdgeLeft, 9))
	require.Equal(t, Value(3), computedEdgeValue(edges, EdgeStart, 9))

	// An explicit physical edge wins over everything.
	edges[EdgeTop] = 4
	require.Equal(t, Value(4), computedEdgeValue(edges, EdgeTop, 9))

	// Start/End never fall back past Horizontal/All to defaultValue; with
	// nothing set for them at all they report Undefined, not defaultValue.
	var empty [edgeCount]Value
	for i := range empty {
		empty[i] = Undefined
	}
	require.True(t, IsUndefined(computedEdgeValue(empty, EdgeStart, 9)))
	require.True(t, IsUndefined(computedEdgeValue(empty, EdgeEnd, 9)))
}

func TestResolveAxisSwapsRowUnderRTL(t *testing.T) {
	require.Equal(t, FlexDirectionRowReverse, resolveAxis(FlexDirectionRow, DirectionRTL))
	require.Equal(t, FlexDirectionRow, resolveAxis(FlexDirectionRowReverse, DirectionRTL))
	require.Equal(t, FlexDirectionRow, resolveAxis(FlexDirectionRow, DirectionLTR))
	require.Equal(t, FlexDirectionRowReverse, resolveAxis(FlexDirectionRowReverse, DirectionLTR))

	// Column directions never swap, regardless of direction.
	require.Equal(t, FlexDirectionColumn, resolveAxis(FlexDirectionColumn, DirectionRTL))
	require.Equal(t, FlexDirectionColumnReverse, resolveAxis(FlexDirectionColumnReverse, DirectionRTL))
}

func TestResolveDirectionInheritsFromParentOrDefaultsLTR(t *testing.T) {
	require.Equal(t, DirectionRTL, resolveDirection(DirectionInherit, DirectionRTL))
	require.Equal(t, DirectionLTR, resolveDirection(DirectionInherit, DirectionInherit))
	require.Equal(t, DirectionRTL, resolveDirection(DirectionRTL, DirectionLTR))
}

func TestGetCrossFlexDirection(t *testing.T) {
	require.Equal(t, FlexDirectionColumn, getCrossFlexDirection(FlexDirectionRow, DirectionLTR))
	require.Equal(t, FlexDirectionRow, getCrossFlexDirection(FlexDirectionColumn, DirectionLTR))
	require.Equal(t, FlexDirectionRowReverse, getCrossFlexDirection(FlexDirectionColumn, DirectionRTL))
}
