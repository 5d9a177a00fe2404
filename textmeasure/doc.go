// Package textmeasure adapts a real TrueType font and the teacher's
// paragraph-wrapping logic into a concrete layout.MeasureFunc, so a tree
// built with github.com/krispeckt/boxflex/layout can size text leaves
// against actual glyph metrics instead of a stubbed callback.
//
// It intentionally carries none of the teacher's drawing/stroke/effect
// code: boxflex is a pure layout engine (no painting, per its own
// Non-goals), so only the measurement half of the teacher's text stack
// is adapted here.
package textmeasure
