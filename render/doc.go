// Package render paints scratch cards into images.
//
// A Canvas owns the prize face of one card (a diagonal gradient with the
// prize label) and composites the cover over it through the card's mask:
//
//	card, _ := scratch.NewCard(cfg)
//	canvas, err := render.New(card, render.WithCoverColor(render.Hex("#7B64C3")))
//	if err != nil {
//	    return err
//	}
//	card.ScratchAt(120, 60)
//	_ = canvas.SavePNG("card.png")
//
// Labels are drawn with the Go Bold font from golang.org/x/image.
package render
