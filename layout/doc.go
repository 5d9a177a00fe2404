// Package layout implements a recursive, flexbox-style box-layout engine.
//
// Given a tree of styled Nodes, Calculate resolves each node's position and
// size under the constraints supplied by the caller, following a subset of
// the CSS Flexible Box algorithm. The package has no knowledge of painting,
// fonts, or files: a leaf node obtains its intrinsic size from a
// caller-supplied MeasureFunc (see SetMeasureFunc), and everything else is
// pure arithmetic over the tree.
package layout
