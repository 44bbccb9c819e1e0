package render

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kellegous/weather-banner/internal/chart"
)

// ggCanvas adapts a gg drawing context to the engine's Canvas port.
type ggCanvas struct {
	dc    *gg.Context
	faces map[chart.Font]font.Face
}

var (
	regularFont = mustParse(goregular.TTF)
	boldFont    = mustParse(gobold.TTF)
)

func mustParse(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func newCanvas(dc *gg.Context) *ggCanvas {
	return &ggCanvas{
		dc:    dc,
		faces: map[chart.Font]font.Face{},
	}
}

func (c *ggCanvas) SetColor(col chart.Color) {
	c.dc.SetColor(color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A})
}

func (c *ggCanvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

func (c *ggCanvas) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *ggCanvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

func (c *ggCanvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

func (c *ggCanvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.dc.CubicTo(x1, y1, x2, y2, x3, y3)
}

func (c *ggCanvas) Arc(x, y, r, a1, a2 float64) {
	if a2 < a1 {
		a2 += chart.Tau
	}
	c.dc.DrawArc(x, y, r, a1, a2)
}

func (c *ggCanvas) ArcNegative(x, y, r, a1, a2 float64) {
	if a2 > a1 {
		a2 -= chart.Tau
	}
	c.dc.DrawArc(x, y, r, a1, a2)
}

func (c *ggCanvas) ClosePath() {
	c.dc.ClosePath()
}

func (c *ggCanvas) Fill() {
	c.dc.Fill()
}

func (c *ggCanvas) FillPreserve() {
	c.dc.FillPreserve()
}

func (c *ggCanvas) Stroke() {
	c.dc.Stroke()
}

func (c *ggCanvas) SetFont(f chart.Font) {
	face, ok := c.faces[f]
	if !ok {
		ttf := regularFont
		if f.Weight == chart.FontWeightBold {
			ttf = boldFont
		}
		face = truetype.NewFace(ttf, &truetype.Options{Size: f.Size})
		c.faces[f] = face
	}
	c.dc.SetFontFace(face)
}

func (c *ggCanvas) TextExtents(s string) (float64, float64) {
	return c.dc.MeasureString(s)
}

func (c *ggCanvas) DrawText(s string, x, y float64) {
	c.dc.DrawString(s, x, y)
}

func (c *ggCanvas) Save() {
	c.dc.Push()
}

func (c *ggCanvas) Restore() {
	c.dc.Pop()
}

func (c *ggCanvas) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

func (c *ggCanvas) Rotate(radians float64) {
	c.dc.Rotate(radians)
}
