package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label sizes in points for a card 150 pixels tall; other heights scale.
const (
	headlineSize = 14.0
	prizeSize    = 30.0
	loserSize    = 20.0
	lineGap      = 4.0
	referenceH   = 150.0
)

var (
	winnerHeadline = cases.Upper(language.English).String("You won")
	loserHeadline  = "Try again"
)

// labelFont parses the bundled Go Bold font once.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// line is one centered text line of the prize face.
type line struct {
	text   string
	size   float64
	color  color.Color
	shadow bool
}

// drawLines renders the lines vertically centered in dst.
func drawLines(dst draw.Image, lines []line, scale float64) error {
	f, err := labelFont()
	if err != nil {
		return err
	}

	faces := make([]font.Face, len(lines))
	defer func() {
		for _, face := range faces {
			if face != nil {
				_ = face.Close()
			}
		}
	}()

	var total fixed.Int26_6
	gap := fixed.Int26_6(lineGap * scale * 64)
	for i, ln := range lines {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    ln.size * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return err
		}
		faces[i] = face
		total += face.Metrics().Height
		if i > 0 {
			total += gap
		}
	}

	b := dst.Bounds()
	y := fixed.I(b.Min.Y) + (fixed.I(b.Dy())-total)/2
	for i, ln := range lines {
		face := faces[i]
		m := face.Metrics()
		adv := font.MeasureString(face, ln.text)
		x := fixed.I(b.Min.X) + (fixed.I(b.Dx())-adv)/2
		baseline := y + m.Ascent

		if ln.shadow {
			d := &font.Drawer{
				Dst:  dst,
				Src:  image.NewUniform(shadowColor),
				Face: face,
				Dot:  fixed.Point26_6{X: x + fixed.I(1), Y: baseline + fixed.I(2)},
			}
			d.DrawString(ln.text)
		}
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(ln.color),
			Face: face,
			Dot:  fixed.Point26_6{X: x, Y: baseline},
		}
		d.DrawString(ln.text)

		y += m.Height + gap
	}
	return nil
}
