package textmeasure

import (
	"testing"

	"github.com/krispeckt/boxflex/layout"
	"github.com/stretchr/testify/require"
)

func TestMeasureFuncEmptyTextReturnsZero(t *testing.T) {
	fn := NewMeasureFunc(&TextNode{Text: "", Font: nil})
	w, h := fn(nil, 100, layout.MeasureModeAtMost, 100, layout.MeasureModeAtMost)
	require.Equal(t, float32(0), w)
	require.Equal(t, float32(0), h)
}

func TestMeasureFuncNilFontReturnsZero(t *testing.T) {
	fn := NewMeasureFunc(&TextNode{Text: "hello", Font: nil})
	w, h := fn(nil, 100, layout.MeasureModeAtMost, 100, layout.MeasureModeAtMost)
	require.Equal(t, float32(0), w)
	require.Equal(t, float32(0), h)
}
