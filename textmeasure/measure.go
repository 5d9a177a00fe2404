package textmeasure

import (
	"github.com/krispeckt/boxflex/layout"
)

// TextNode holds the text content and wrapping configuration for one leaf
// whose intrinsic size is measured by NewMeasureFunc. It plays the role
// the teacher's instructions.Text struct plays for rendering, reduced to
// the fields that actually affect measured size.
type TextNode struct {
	Text       string
	Font       *Font
	WrapMode   WrapMode
	WrapSymbol string
	// LineSpacing is extra spacing between lines as a fraction of line
	// height (0 disables it). Unlike the teacher's Text.autoSpacing, no
	// density heuristic is applied: a measurement callback has no
	// rendering context to infer visual density from.
	LineSpacing float64
}

// NewMeasureFunc builds a layout.MeasureFunc that wraps tn.Text under the
// given font and reports the wrapped block's natural width and height.
// The returned func ignores its context argument and reads from tn
// directly, so a single TextNode can be attached to a layout.Node via
// SetContext to let a host correlate the two, or used standalone.
func NewMeasureFunc(tn *TextNode) layout.MeasureFunc {
	return func(_ any, innerWidth float32, widthMode layout.MeasureMode, innerHeight float32, heightMode layout.MeasureMode) (float32, float32) {
		if tn.Font == nil || tn.Text == "" {
			return 0, 0
		}

		maxWidth := 0.0
		if widthMode != layout.MeasureModeUndefined {
			maxWidth = float64(innerWidth)
		}

		lines := wrapText(tn.Text, tn.Font, maxWidth, tn.WrapMode, tn.WrapSymbol)
		if len(lines) == 0 {
			return 0, 0
		}

		var maxLineWidth float64
		for _, line := range lines {
			w, _ := tn.Font.MeasureString(line)
			if w > maxLineWidth {
				maxLineWidth = w
			}
		}

		lineHeight := tn.Font.LineHeightPx()
		spacing := tn.LineSpacing
		totalHeight := lineHeight*float64(len(lines)) + lineHeight*spacing*float64(len(lines)-1)

		width := maxLineWidth
		if widthMode == layout.MeasureModeExactly {
			width = float64(innerWidth)
		} else if widthMode == layout.MeasureModeAtMost {
			width = clampF64(width, 0, float64(innerWidth))
		}

		height := totalHeight
		if heightMode == layout.MeasureModeExactly {
			height = float64(innerHeight)
		} else if heightMode == layout.MeasureModeAtMost {
			height = clampF64(height, 0, float64(innerHeight))
		}

		return float32(width), float32(height)
	}
}
