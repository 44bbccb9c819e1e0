package chart

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color from an 0xRRGGBB value.
func RGB(c uint32) Color {
	return Color{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xff,
	}
}

// RGBA returns a color from an 0xRRGGBB value and an alpha in [0, 1].
func RGBA(c uint32, a float64) Color {
	col := RGB(c)
	col.A = uint8(a * 255)
	return col
}

// FontWeight selects the face weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// Font describes a typeface selection for text drawing.
type Font struct {
	Weight FontWeight
	Size   float64
}

// Canvas is the drawing surface the engine emits to. It mirrors the
// primitives of an immediate-mode 2D context: path construction, fill and
// stroke, text with extents, and a saved/restored transform stack. The
// engine issues calls in a strict sequence and never reads pixels back, so
// any recorder or rasterizer can sit behind it.
type Canvas interface {
	SetColor(c Color)
	SetLineWidth(w float64)

	FillRect(x, y, w, h float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	// CurveTo appends a cubic Bezier segment with control points
	// (x1, y1), (x2, y2) ending at (x3, y3).
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	// Arc appends a clockwise circular arc around (x, y) from angle a1 to a2.
	Arc(x, y, r, a1, a2 float64)
	// ArcNegative appends the counter-clockwise arc from a1 back to a2.
	ArcNegative(x, y, r, a1, a2 float64)
	ClosePath()

	Fill()
	// FillPreserve fills the current path and keeps it for a following
	// Stroke, the way a translucent band is filled and then outlined.
	FillPreserve()
	Stroke()

	SetFont(f Font)
	// TextExtents measures s under the current font.
	TextExtents(s string) (w, h float64)
	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)
}
