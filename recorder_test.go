package balloons

import "testing"

func TestRecorderTracksTransform(t *testing.T) {
	r := NewRecorder()
	r.Save()
	r.Translate(10, 20)
	r.Scale(2, 2)
	r.Ellipse(1, 1, 5, 5)
	r.Restore()
	r.MoveTo(0, 0)

	ops := r.Ops()
	ell := ops[3]
	if ell.Kind != OpEllipse {
		t.Fatalf("op 3 = %v, want ellipse", ell.Kind)
	}
	x, y := transformPoint(ell.Transform, ell.Args[0], ell.Args[1])
	if x != 12 || y != 22 {
		t.Errorf("ellipse center = (%v, %v), want (12, 22)", x, y)
	}
	if ops[5].Transform != identityTransform {
		t.Errorf("transform after restore = %v, want identity", ops[5].Transform)
	}
	if r.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", r.Depth())
	}
}

func TestRecorderCountAndReset(t *testing.T) {
	r := NewRecorder()
	r.Clear()
	r.BeginPath()
	r.Fill()
	r.Fill()
	r.FillText("A", 0, 0)
	r.SetFillColor(Color{1, 0, 0, 1})

	if r.Count(OpFill) != 2 {
		t.Errorf("Count(fill) = %d, want 2", r.Count(OpFill))
	}
	if ops := r.Ops(); ops[4].Text != "A" || ops[5].Color.R != 1 {
		t.Errorf("text/color not recorded: %+v %+v", ops[4], ops[5])
	}

	r.Save()
	r.Reset()
	if len(r.Ops()) != 0 || r.Depth() != 0 {
		t.Errorf("after Reset: %d ops, depth %d", len(r.Ops()), r.Depth())
	}
}

func TestOpKindString(t *testing.T) {
	if OpFillText.String() != "fillText" || OpClear.String() != "clear" {
		t.Error("unexpected op names")
	}
	if OpKind(250).String() != "unknown" {
		t.Error("out-of-range op should be unknown")
	}
}
