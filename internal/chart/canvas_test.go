package chart

// recorder is a call-recording Canvas used to assert on the drawing-call
// sequence the engine emits, without rasterizing anything.

type canvasCall struct {
	op   string
	args []float64
	text string
}

type recorder struct {
	calls []canvasCall
}

func (r *recorder) record(op string, args ...float64) {
	r.calls = append(r.calls, canvasCall{op: op, args: args})
}

func (r *recorder) SetColor(c Color) {
	r.record("set-color", float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

func (r *recorder) SetLineWidth(w float64) { r.record("set-line-width", w) }
func (r *recorder) FillRect(x, y, w, h float64) {
	r.record("fill-rect", x, y, w, h)
}
func (r *recorder) MoveTo(x, y float64) { r.record("move-to", x, y) }
func (r *recorder) LineTo(x, y float64) { r.record("line-to", x, y) }
func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.record("curve-to", x1, y1, x2, y2, x3, y3)
}
func (r *recorder) Arc(x, y, rad, a1, a2 float64) {
	r.record("arc", x, y, rad, a1, a2)
}
func (r *recorder) ArcNegative(x, y, rad, a1, a2 float64) {
	r.record("arc-negative", x, y, rad, a1, a2)
}
func (r *recorder) ClosePath()    { r.record("close-path") }
func (r *recorder) Fill()         { r.record("fill") }
func (r *recorder) FillPreserve() { r.record("fill-preserve") }
func (r *recorder) Stroke()       { r.record("stroke") }

func (r *recorder) SetFont(f Font) {
	r.record("set-font", float64(f.Weight), f.Size)
}

func (r *recorder) TextExtents(s string) (float64, float64) {
	return float64(len(s)) * 6, 10
}

func (r *recorder) DrawText(s string, x, y float64) {
	r.calls = append(r.calls, canvasCall{op: "draw-text", args: []float64{x, y}, text: s})
}

func (r *recorder) Save()                  { r.record("save") }
func (r *recorder) Restore()               { r.record("restore") }
func (r *recorder) Translate(x, y float64) { r.record("translate", x, y) }
func (r *recorder) Rotate(rad float64)     { r.record("rotate", rad) }

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recorder) first(op string) (canvasCall, bool) {
	for _, c := range r.calls {
		if c.op == op {
			return c, true
		}
	}
	return canvasCall{}, false
}

func (r *recorder) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "draw-text" {
			out = append(out, c.text)
		}
	}
	return out
}
