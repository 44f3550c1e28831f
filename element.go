package blossom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Element   *Element
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
}

// --- ID counter ---

// elementIDCounter is a plain counter (no atomic — blossom is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// --- Element ---

// Element is the overlay tree building block. A single flat struct is used for
// all element kinds to avoid interface dispatch on the hot path.
type Element struct {
	// Identity
	ID   uint32
	Name string
	Kind ElementKind

	// Hierarchy
	Parent   *Element
	children []*Element

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Content box. Width and Height are the element's intrinsic size before
	// scaling: the fill area for panels, the draw size for icons.
	Width  float64
	Height float64

	// Computed (unexported, updated during traversal)
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Metadata
	UserData any

	// Panel fields (KindPanel)
	Color        Color
	CornerRadius float64
	panelMask    *ebiten.Image // baked white rounded fill, tinted at draw time

	// Icon fields (KindIcon)
	Image *ebiten.Image

	// Hit testing
	HitShape HitShape

	// Per-element callbacks (nil by default; zero cost when unused)
	OnPointerDown func(PointerContext)
	OnPointerUp   func(PointerContext)
	OnPointerMove func(PointerContext)
	OnUpdate      func(dt float64)

	// Internal
	disposed bool
}

// elementDefaults sets the common default field values shared by all constructors.
func elementDefaults(e *Element) {
	e.ID = nextElementID()
	e.ScaleX = 1
	e.ScaleY = 1
	e.Alpha = 1
	e.Color = Color{1, 1, 1, 1}
	e.Visible = true
	e.transformDirty = true
}

// NewGroup creates a container element with no visual representation.
func NewGroup(name string) *Element {
	e := &Element{Name: name, Kind: KindGroup}
	elementDefaults(e)
	return e
}

// NewPanel creates a panel element that fills a w x h rectangle with the
// given color. Set CornerRadius for a rounded fill.
func NewPanel(name string, w, h float64, color Color) *Element {
	e := &Element{Name: name, Kind: KindPanel, Width: w, Height: h}
	elementDefaults(e)
	e.Color = color
	return e
}

// NewIcon creates an icon element that renders img scaled to the element's
// Width and Height. The intrinsic size defaults to the image bounds; callers
// may override Width and Height afterwards.
func NewIcon(name string, img *ebiten.Image) *Element {
	e := &Element{Name: name, Kind: KindIcon, Image: img}
	elementDefaults(e)
	if img != nil {
		b := img.Bounds()
		e.Width = float64(b.Dx())
		e.Height = float64(b.Dy())
	}
	return e
}

// --- Tree manipulation ---

// AddChild appends child to this element's children. Later siblings draw on
// top of earlier ones. If child already has a parent, it is removed from
// that parent first. Panics if child is nil or child is an ancestor of this
// element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("blossom: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("blossom: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (e *Element) AddChildAt(child *Element, index int) {
	if child == nil {
		panic("blossom: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, e) {
		panic("blossom: adding child would create a cycle")
	}
	if index < 0 || index > len(e.children) {
		panic("blossom: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if globalDebug {
		debugCheckDisposed(e, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != e {
		panic("blossom: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (e *Element) RemoveChildAt(index int) *Element {
	if globalDebug {
		debugCheckDisposed(e, "RemoveChildAt")
	}
	if index < 0 || index >= len(e.children) {
		panic("blossom: child index out of range")
	}
	child := e.children[index]
	copy(e.children[index:], e.children[index+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]
	child.Parent = nil
	markSubtreeDirty(child)
	return child
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches all children from this element.
// Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, child := range e.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	e.children = e.children[:0]
}

// SetChildIndex moves child to the given index in the draw order.
// Panics if child.Parent != e or the index is out of range.
func (e *Element) SetChildIndex(child *Element, index int) {
	if globalDebug {
		debugCheckDisposed(e, "SetChildIndex (parent)")
		debugCheckDisposed(child, "SetChildIndex (child)")
	}
	if child.Parent != e {
		panic("blossom: child's parent is not this element")
	}
	if index < 0 || index >= len(e.children) {
		panic("blossom: child index out of range")
	}
	cur := -1
	for i, c := range e.children {
		if c == child {
			cur = i
			break
		}
	}
	if cur == index {
		return
	}
	copy(e.children[cur:], e.children[cur+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants. Transitions targeting a
// disposed element stop on their next update without writing.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.HitShape = nil
	e.Image = nil
	if e.panelMask != nil {
		e.panelMask.Deallocate()
		e.panelMask = nil
	}
	e.UserData = nil
	e.OnPointerDown = nil
	e.OnPointerUp = nil
	e.OnPointerMove = nil
	e.OnUpdate = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of element.
func isAncestor(candidate, element *Element) bool {
	for p := element; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on element and all its descendants.
func markSubtreeDirty(element *Element) {
	element.transformDirty = true
	for _, child := range element.children {
		markSubtreeDirty(child)
	}
}
