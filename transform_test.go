package balloons

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	got := multiplyAffine(identityTransform, m)
	if got != m {
		t.Errorf("identity * m = %v, want %v", got, m)
	}
	got = multiplyAffine(m, identityTransform)
	if got != m {
		t.Errorf("m * identity = %v, want %v", got, m)
	}
}

func TestTranslateThenRotate(t *testing.T) {
	m := translateAffine(identityTransform, 100, 50)
	m = rotateAffine(m, math.Pi/2)

	// Local +X maps to world +Y after a quarter turn.
	x, y := transformPoint(m, 10, 0)
	if !approxEqual(x, 100, epsilon) || !approxEqual(y, 60, epsilon) {
		t.Errorf("point = (%v, %v), want (100, 60)", x, y)
	}
}

func TestScaleAffine(t *testing.T) {
	m := scaleAffine(translateAffine(identityTransform, 5, 5), 2, 3)
	x, y := transformPoint(m, 1, 1)
	if !approxEqual(x, 7, epsilon) || !approxEqual(y, 8, epsilon) {
		t.Errorf("point = (%v, %v), want (7, 8)", x, y)
	}
}

func TestTransformStackSaveRestore(t *testing.T) {
	ts := newTransformStack()
	ts.save()
	ts.current = translateAffine(ts.current, 10, 10)
	ts.save()
	ts.current = rotateAffine(ts.current, 1)

	ts.restore()
	if ts.current != translateAffine(identityTransform, 10, 10) {
		t.Errorf("after first restore = %v", ts.current)
	}
	ts.restore()
	if ts.current != identityTransform {
		t.Errorf("after second restore = %v, want identity", ts.current)
	}

	// Unbalanced restore is a no-op.
	ts.restore()
	if ts.current != identityTransform {
		t.Errorf("unbalanced restore changed matrix to %v", ts.current)
	}
}
