package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	astar "github.com/pdrpinto/gridastar"
	"github.com/yalue/image_utils"
)

// Palette maps cell kinds to image colors.
var Palette = map[Mark]color.RGBA{
	MarkNone:    {240, 240, 240, 255},
	MarkClosed:  {200, 200, 200, 255},
	MarkOpen:    {150, 220, 220, 255},
	MarkPath:    {240, 200, 40, 255},
	MarkCurrent: {240, 200, 40, 255},
}

var (
	blockedColor = color.RGBA{100, 120, 255, 255}
	startColor   = color.RGBA{40, 180, 70, 255}
	endColor     = color.RGBA{210, 50, 50, 255}
)

// Image returns the board as one pixel per cell. Rows run down the image,
// columns across.
func Image(g *astar.Grid, overlay Overlay) *image.RGBA {
	height, width := g.Dimensions()
	pic := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < height; x++ {
		for y := 0; y < width; y++ {
			n := astar.Node{X: x, Y: y}
			pic.SetRGBA(y, x, cellColor(g, n, overlay[n]))
		}
	}
	return pic
}

// Scaled returns the board with cellPixels pixels per cell.
func Scaled(g *astar.Grid, overlay Overlay, cellPixels int) (*image.RGBA, error) {
	if cellPixels <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellPixels)
	}
	height, width := g.Dimensions()
	resized := image_utils.ResizeImage(Image(g, overlay), width*cellPixels, height*cellPixels)
	bounds := resized.Bounds()
	pic := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(pic, pic.Bounds(), resized, bounds.Min, draw.Src)
	return pic, nil
}

// PNG writes the board scaled up by cellPixels per cell.
func PNG(w io.Writer, g *astar.Grid, overlay Overlay, cellPixels int) error {
	pic, err := Scaled(g, overlay, cellPixels)
	if err != nil {
		return err
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func cellColor(g *astar.Grid, n astar.Node, mark Mark) color.RGBA {
	state, _ := g.Cell(n)
	switch state {
	case astar.Start:
		return startColor
	case astar.End:
		return endColor
	case astar.Blocked:
		return blockedColor
	}
	return Palette[mark]
}
