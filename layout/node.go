package layout

// instanceCount tracks live Nodes for leak-style diagnostics, mirroring
// CSSLayout.c's gNodeInstanceCount.
var instanceCount int

// InstanceCount returns the number of Nodes currently allocated via New
// and not yet released via Free/FreeRecursive.
func InstanceCount() int { return instanceCount }

// Node is one box in the layout tree. It owns its Style and Layout, its
// ordered children, and a non-owning back-reference to its parent.
type Node struct {
	style  Style
	layout Layout

	parent   *Node
	children []*Node

	measure     MeasureFunc
	isTextNode  bool
	printFunc   func(*Node)
	context     any

	isDirty bool
}

// New allocates a Node with default style values, matching CSSNodeInit's
// defaults (column direction, stretch align-items, flex-start align-content).
func New() *Node {
	instanceCount++
	return &Node{
		style:  defaultStyle(),
		layout: newLayout(),
	}
}

// Free releases a single node. It does not recurse into children; the
// host must detach or free them separately. Matches CSSNodeFree.
func Free(n *Node) {
	if n == nil {
		return
	}
	if n.parent != nil {
		removeChildFromSlice(n.parent, n)
		n.parent = nil
	}
	instanceCount--
}

// FreeRecursive frees root and every descendant, matching CSSNodeFreeRecursive.
func FreeRecursive(root *Node) {
	if root == nil {
		return
	}
	children := append([]*Node(nil), root.children...)
	for _, c := range children {
		c.parent = nil
		FreeRecursive(c)
	}
	root.children = nil
	if root.parent != nil {
		removeChildFromSlice(root.parent, root)
	}
	root.parent = nil
	instanceCount--
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// GetChild returns the i'th direct child.
func (n *Node) GetChild(i int) *Node { return n.children[i] }

// Parent returns the node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// InsertChild inserts child at index among n's children. It is a
// programming-contract violation (§7 kind 1) to insert a node that already
// has a parent.
func (n *Node) InsertChild(child *Node, index int) {
	if child.parent != nil {
		assertFail("InsertChild: child already has a parent")
		return
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.markDirty()
}

// RemoveChild detaches child from n, if present among its children.
func (n *Node) RemoveChild(child *Node) {
	if removeChildFromSlice(n, child) {
		child.parent = nil
		n.markDirty()
	}
}

func removeChildFromSlice(n *Node, child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// IsDirty reports whether this node's layout is stale with respect to its
// style or children.
func (n *Node) IsDirty() bool { return n.isDirty }

// MarkDirty lets the host force a re-layout of a node directly. Per §3 and
// §4.2 this is only legal on leaves with a measure function, or on
// internal (child-bearing) nodes — asserted.
func (n *Node) MarkDirty() {
	if n.measure == nil && len(n.children) == 0 {
		assertFail("MarkDirty: only measure-function leaves or internal nodes may be marked dirty directly")
		return
	}
	n.markDirty()
}

// markDirty is the internal bubbling mark: if the node is clean, dirty it,
// invalidate its cached flex basis, and recurse to the parent; stop at the
// first already-dirty ancestor (§4.2).
func (n *Node) markDirty() {
	if n.isDirty {
		return
	}
	n.isDirty = true
	n.layout.computedFlexBasis = Undefined
	if n.parent != nil {
		n.parent.markDirty()
	}
}

// SetMeasureFunc installs the leaf measurement callback. A non-leaf node
// may not use one (§3 invariant); passing a non-nil fn on a node that
// already has children is a contract violation.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	if fn != nil && len(n.children) > 0 {
		assertFail("SetMeasureFunc: node with children may not have a measure function")
		return
	}
	n.measure = fn
	n.markDirty()
}

// SetContext attaches an opaque host value passed verbatim to MeasureFunc.
func (n *Node) SetContext(ctx any) { n.context = ctx }

// Context returns the value last passed to SetContext.
func (n *Node) Context() any { return n.context }

// SetPrintFunc installs a debug pretty-printer hook; the engine never
// calls it itself (the pretty-printer is an external collaborator, §1).
func (n *Node) SetPrintFunc(fn func(*Node)) { n.printFunc = fn }

// SetIsTextNode flags a leaf as text, enabling the relaxed cache-hit rule
// of §4.3 (same width, any height constraint; a tighter height overwrites
// the reused entry's ComputedHeight).
func (n *Node) SetIsTextNode(v bool) { n.isTextNode = v }

// IsTextNode reports the flag set by SetIsTextNode.
func (n *Node) IsTextNode() bool { return n.isTextNode }
