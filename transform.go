package balloons

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

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

// translateAffine returns m followed (in local space) by a translation.
func translateAffine(m [6]float64, x, y float64) [6]float64 {
	return multiplyAffine(m, [6]float64{1, 0, 0, 1, x, y})
}

// rotateAffine returns m followed (in local space) by a rotation in radians.
func rotateAffine(m [6]float64, theta float64) [6]float64 {
	sin, cos := math.Sincos(theta)
	return multiplyAffine(m, [6]float64{cos, sin, -sin, cos, 0, 0})
}

// scaleAffine returns m followed (in local space) by a scale.
func scaleAffine(m [6]float64, sx, sy float64) [6]float64 {
	return multiplyAffine(m, [6]float64{sx, 0, 0, sy, 0, 0})
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformStack is the save/restore stack shared by the surfaces.
type transformStack struct {
	current [6]float64
	saved   [][6]float64
}

func newTransformStack() transformStack {
	return transformStack{current: identityTransform}
}

func (t *transformStack) save() {
	t.saved = append(t.saved, t.current)
}

// restore pops the last saved matrix. An unbalanced restore is ignored.
func (t *transformStack) restore() {
	if len(t.saved) == 0 {
		return
	}
	t.current = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

func (t *transformStack) reset() {
	t.current = identityTransform
	t.saved = t.saved[:0]
}
