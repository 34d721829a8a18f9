package balloons

// OpKind identifies a recorded Surface call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpSave
	OpRestore
	OpTranslate
	OpRotate
	OpScale
	OpSetFillColor
	OpSetStrokeColor
	OpSetLineWidth
	OpSetFontSize
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpEllipse
	OpClosePath
	OpFill
	OpStroke
	OpFillText
)

var opNames = [...]string{
	OpClear:          "clear",
	OpSave:           "save",
	OpRestore:        "restore",
	OpTranslate:      "translate",
	OpRotate:         "rotate",
	OpScale:          "scale",
	OpSetFillColor:   "fillColor",
	OpSetStrokeColor: "strokeColor",
	OpSetLineWidth:   "lineWidth",
	OpSetFontSize:    "fontSize",
	OpBeginPath:      "beginPath",
	OpMoveTo:         "moveTo",
	OpLineTo:         "lineTo",
	OpEllipse:        "ellipse",
	OpClosePath:      "closePath",
	OpFill:           "fill",
	OpStroke:         "stroke",
	OpFillText:       "fillText",
}

// String returns the op name.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded Surface call.
type Op struct {
	Kind OpKind
	// Args holds the numeric arguments in call order (x, y, rx, ry, ...).
	Args [4]float64
	// Color is set for OpSetFillColor and OpSetStrokeColor.
	Color Color
	// Text is set for OpFillText.
	Text string
	// Transform is the matrix that was current when the op was issued.
	Transform [6]float64
}

// Recorder is a Surface that records every call instead of drawing. It is
// used by headless drivers and tests to inspect what a frame would render.
type Recorder struct {
	ops []Op
	ts  transformStack
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{ts: newTransformStack()}
}

// Ops returns the recorded ops. The returned slice MUST NOT be mutated.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset drops all recorded ops and resets the transform stack.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.ts.reset()
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for i := range r.ops {
		if r.ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Depth returns the current save/restore nesting depth.
func (r *Recorder) Depth() int {
	return len(r.ts.saved)
}

func (r *Recorder) record(kind OpKind, args ...float64) {
	op := Op{Kind: kind, Transform: r.ts.current}
	copy(op.Args[:], args)
	r.ops = append(r.ops, op)
}

func (r *Recorder) Clear() { r.record(OpClear) }

func (r *Recorder) Save() {
	r.record(OpSave)
	r.ts.save()
}

func (r *Recorder) Restore() {
	r.record(OpRestore)
	r.ts.restore()
}

func (r *Recorder) Translate(x, y float64) {
	r.record(OpTranslate, x, y)
	r.ts.current = translateAffine(r.ts.current, x, y)
}

func (r *Recorder) Rotate(radians float64) {
	r.record(OpRotate, radians)
	r.ts.current = rotateAffine(r.ts.current, radians)
}

func (r *Recorder) Scale(sx, sy float64) {
	r.record(OpScale, sx, sy)
	r.ts.current = scaleAffine(r.ts.current, sx, sy)
}

func (r *Recorder) SetFillColor(c Color) {
	r.ops = append(r.ops, Op{Kind: OpSetFillColor, Color: c, Transform: r.ts.current})
}

func (r *Recorder) SetStrokeColor(c Color) {
	r.ops = append(r.ops, Op{Kind: OpSetStrokeColor, Color: c, Transform: r.ts.current})
}

func (r *Recorder) SetLineWidth(w float64)   { r.record(OpSetLineWidth, w) }
func (r *Recorder) SetFontSize(size float64) { r.record(OpSetFontSize, size) }
func (r *Recorder) BeginPath()               { r.record(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64)      { r.record(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)      { r.record(OpLineTo, x, y) }
func (r *Recorder) ClosePath()               { r.record(OpClosePath) }
func (r *Recorder) Fill()                    { r.record(OpFill) }
func (r *Recorder) Stroke()                  { r.record(OpStroke) }

func (r *Recorder) Ellipse(cx, cy, rx, ry float64) {
	r.record(OpEllipse, cx, cy, rx, ry)
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpFillText, Args: [4]float64{x, y}, Text: s, Transform: r.ts.current})
}
