package blossom

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the element's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(e *Element) [6]float64 {
	sx := e.ScaleX
	sy := e.ScaleY

	sin, cos := math.Sincos(e.Rotation)

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	preTx := -e.PivotX * sx
	preTy := -e.PivotY * sy

	// After Rotate:
	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(X, Y):
	return [6]float64{ra, rb, rc, rd, rtx + e.X, rty + e.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes an element's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this element even if it's not dirty.
func updateWorldTransform(e *Element, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := e.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(e)
		e.worldTransform = multiplyAffine(parentTransform, local)
		e.worldAlpha = parentAlpha * e.Alpha
		e.transformDirty = false
	}

	for _, child := range e.children {
		updateWorldTransform(child, e.worldTransform, e.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the element's local X and Y and marks it dirty.
func (e *Element) SetPosition(x, y float64) {
	e.X = x
	e.Y = y
	e.transformDirty = true
}

// SetScale sets the element's ScaleX and ScaleY and marks it dirty.
func (e *Element) SetScale(sx, sy float64) {
	e.ScaleX = sx
	e.ScaleY = sy
	e.transformDirty = true
}

// SetRotation sets the element's rotation (in radians) and marks it dirty.
func (e *Element) SetRotation(r float64) {
	e.Rotation = r
	e.transformDirty = true
}

// SetPivot sets the element's PivotX and PivotY and marks it dirty.
func (e *Element) SetPivot(px, py float64) {
	e.PivotX = px
	e.PivotY = py
	e.transformDirty = true
}

// SetAlpha sets the element's alpha and marks it dirty.
func (e *Element) SetAlpha(a float64) {
	e.Alpha = a
	e.transformDirty = true
}

// SetFrame positions and scales the element so that its content box covers
// the given rectangle in the parent's coordinate space. The element keeps a
// centered pivot: X and Y land on the rectangle's midpoint, and the scale is
// the ratio of the rectangle to the element's intrinsic Width and Height.
func (e *Element) SetFrame(r Rect) {
	e.PivotX = e.Width / 2
	e.PivotY = e.Height / 2
	e.X = r.X + r.Width/2
	e.Y = r.Y + r.Height/2
	if e.Width > 0 {
		e.ScaleX = r.Width / e.Width
	}
	if e.Height > 0 {
		e.ScaleY = r.Height / e.Height
	}
	e.transformDirty = true
}

// MarkDirty marks the element's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (e *Element) MarkDirty() {
	e.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a surface-space point to this element's local coordinate space.
func (e *Element) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(e.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to surface-space.
func (e *Element) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(e.worldTransform, lx, ly)
}
