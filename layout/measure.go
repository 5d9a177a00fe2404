package layout

// MeasureMode is one of the three CSS sizing modes a dimension can be
// resolved under.
type MeasureMode int

const (
	// MeasureModeUndefined corresponds to max-content: no constraint, size
	// to content.
	MeasureModeUndefined MeasureMode = iota
	// MeasureModeExactly corresponds to fill-available: the size is fixed,
	// content must accept it.
	MeasureModeExactly
	// MeasureModeAtMost corresponds to fit-content: content may be smaller
	// than available, never larger.
	MeasureModeAtMost
)

// MeasureFunc is supplied by the host for leaf nodes whose intrinsic size
// cannot be derived from style alone (text, images, embedded widgets). It
// receives the node's own context value and the inner constraints (after
// margin/padding/border have been subtracted) and returns the content's
// natural size under those constraints.
type MeasureFunc func(context any, innerWidth float32, widthMode MeasureMode, innerHeight float32, heightMode MeasureMode) (width, height float32)
