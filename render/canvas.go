package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/scratch"
	"golang.org/x/image/draw"
)

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	cover color.Color
}

// WithCoverColor sets the color of the scratch-off cover.
func WithCoverColor(c color.Color) Option {
	return func(o *options) {
		o.cover = c
	}
}

// Canvas paints one card: the prize face underneath and the cover on top,
// let through wherever the card's mask has been erased.
//
// Canvas reads the card's mask on every Image call, so it always reflects
// the latest scratches. Like the card, it is not safe for concurrent use.
type Canvas struct {
	card  *scratch.Card
	prize *image.RGBA
	cover *image.Uniform
}

// New paints the prize face of card and returns its canvas.
// It fails for a card whose surface is unavailable.
func New(card *scratch.Card, opts ...Option) (*Canvas, error) {
	if card == nil {
		return nil, errors.New("render: nil card")
	}
	if err := card.Err(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	o := options{cover: DefaultCoverColor}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		card:  card,
		prize: image.NewRGBA(image.Rect(0, 0, card.Width(), card.Height())),
		cover: image.NewUniform(o.cover),
	}
	if err := c.paintPrize(); err != nil {
		return nil, fmt.Errorf("render: paint prize face: %w", err)
	}
	scratch.Logger().Debug("render: prize face painted",
		"width", card.Width(), "height", card.Height(), "winner", card.IsWinner())
	return c, nil
}

// paintPrize fills the diagonal gradient and draws the labels.
func (c *Canvas) paintPrize() error {
	from, to := loserFrom, loserTo
	if c.card.IsWinner() {
		from, to = winnerFrom, winnerTo
	}

	b := c.prize.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := (float64(x)/w + float64(y)/h) / 2
			c.prize.SetRGBA(x, y, nrgbaToRGBA(lerp(from, to, t)))
		}
	}

	scale := h / referenceH
	if c.card.IsWinner() {
		return drawLines(c.prize, []line{
			{text: winnerHeadline, size: headlineSize, color: headlineColor},
			{text: c.card.PrizeLabel(), size: prizeSize, color: color.White, shadow: true},
		}, scale)
	}
	return drawLines(c.prize, []line{
		{text: loserHeadline, size: loserSize, color: color.White, shadow: true},
	}, scale)
}

// Prize returns the prize face without the cover.
func (c *Canvas) Prize() *image.RGBA {
	return c.prize
}

// Image composites the cover over the prize face through the card's mask.
func (c *Canvas) Image() *image.RGBA {
	dst := image.NewRGBA(c.prize.Bounds())
	draw.Draw(dst, dst.Bounds(), c.prize, image.Point{}, draw.Src)
	draw.DrawMask(dst, dst.Bounds(), c.cover, image.Point{}, c.card.Mask(), image.Point{}, draw.Over)
	return dst
}

// Thumbnail returns the composited card scaled to width x height.
func (c *Canvas) Thumbnail(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	src := c.Image()
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the composited card to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.Image())
}

func nrgbaToRGBA(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
