package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleAccessorsRoundTrip(t *testing.T) {
	n := New()

	n.SetFlexDirection(FlexDirectionRowReverse)
	require.Equal(t, FlexDirectionRowReverse, n.GetFlexDirection())

	n.SetJustifyContent(JustifySpaceAround)
	require.Equal(t, JustifySpaceAround, n.GetJustifyContent())

	n.SetAlignItems(AlignCenter)
	require.Equal(t, AlignCenter, n.GetAlignItems())

	n.SetFlexGrow(2)
	require.Equal(t, Value(2), n.GetFlexGrow())

	n.SetWidth(50)
	require.Equal(t, Value(50), n.GetStyleWidth())

	n.SetMinWidth(10)
	n.SetMaxWidth(100)
	require.Equal(t, Value(10), n.GetMinWidth())
	require.Equal(t, Value(100), n.GetMaxWidth())
}

func TestSetFlexShorthand(t *testing.T) {
	n := New()
	n.SetFlex(1)
	require.Equal(t, Value(1), n.GetFlexGrow())
	require.Equal(t, Value(1), n.GetFlexShrink())
	require.Equal(t, Value(0), n.GetFlexBasis())

	n.SetFlex(0)
	require.Equal(t, Value(0), n.GetFlexGrow())
	require.Equal(t, Value(0), n.GetFlexShrink())
	require.True(t, IsUndefined(n.GetFlexBasis()))
}

func TestEdgeAccessorsResolveShorthandChain(t *testing.T) {
	n := New()
	n.SetMargin(EdgeAll, 5)
	require.Equal(t, Value(5), n.GetMargin(EdgeLeft))
	require.Equal(t, Value(5), n.GetMargin(EdgeTop))

	n.SetMargin(EdgeLeft, 20)
	require.Equal(t, Value(20), n.GetMargin(EdgeLeft))
	require.Equal(t, Value(5), n.GetMargin(EdgeRight), "unrelated edges keep falling back to All")
}

func TestPaddingAndBorderAreFloorClampedAtZero(t *testing.T) {
	n := New()
	n.SetPadding(EdgeAll, -5)
	n.SetBorder(EdgeAll, -5)
	require.Equal(t, Value(0), n.GetPadding(EdgeLeft))
	require.Equal(t, Value(0), n.GetBorder(EdgeLeft))
}

func TestStylePositionDefaultsUndefined(t *testing.T) {
	n := New()
	require.True(t, IsUndefined(n.GetStylePosition(EdgeLeft)))
	n.SetPosition(EdgeLeft, 3)
	require.Equal(t, Value(3), n.GetStylePosition(EdgeLeft))
}

func TestSettingSameStyleValueDoesNotDirty(t *testing.T) {
	n := New()
	n.SetJustifyContent(JustifyCenter)
	Calculate(n, 100, 100, DirectionLTR)
	n.isDirty = false

	n.SetJustifyContent(JustifyCenter)
	require.False(t, n.IsDirty())

	n.SetJustifyContent(JustifyFlexEnd)
	require.True(t, n.IsDirty())
}

func TestEdgeAccessorOutOfRangeAsserts(t *testing.T) {
	n := New()
	require.Panics(t, func() {
		n.SetMargin(edgeCount, 1)
	})
}
