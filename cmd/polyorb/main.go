// Command polyorb shows a Conway polyhedron in a window. The shape is picked
// with a notation string, e.g.
//
//	polyorb -notation dkC -len 100
//
// Drag with the mouse to spin the shape; it idles in a slow tumble otherwise.
// L toggles wireframe.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/kvsari/polyorb/platonic"
	"github.com/kvsari/polyorb/render"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// faceColour picks a colour per face side count so the different facets a
// chain creates stand apart.
func faceColour(_, sides int) color.RGBA {
	switch sides {
	case 3:
		return color.RGBA{R: 214, G: 73, B: 51, A: 255}
	case 4:
		return color.RGBA{R: 64, G: 121, B: 191, A: 255}
	case 5:
		return color.RGBA{R: 85, G: 158, B: 89, A: 255}
	case 6:
		return color.RGBA{R: 221, G: 170, B: 66, A: 255}
	default:
		return color.RGBA{R: 150, G: 110, B: 180, A: 255}
	}
}

type game struct {
	model    *render.Model
	notation string
	distance float64

	lastX, lastY int
	dragged      bool
	lines        bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.lines = !g.lines
		g.model.SetLinesOnly(g.lines)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragged {
			g.model.Rotate(float64(y-g.lastY)*0.01, float64(x-g.lastX)*0.01)
		}
		g.lastX, g.lastY = x, y
		g.dragged = true
	} else {
		g.dragged = false
		g.model.Rotate(0.002, 0.005)
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	g.model.Paint(screen, screenWidth/2, screenHeight/2, g.distance)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  (L: wireframe)", g.notation))
}

func (g *game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	notation := flag.String("notation", "dC", "conway notation, e.g. C, dC, ktT")
	edgeLen := flag.Float64("len", 100, "seed edge length")
	lines := flag.Bool("lines", false, "wireframe only")
	flag.Parse()

	spec, err := platonic.Parse(*notation, *edgeLen)
	if err != nil {
		log.Fatalf("bad notation %q: %v", *notation, err)
	}

	poly, err := spec.Produce()
	if err != nil {
		log.Fatalf("producing %q: %v", spec.Notation(), err)
	}

	log.Printf("%s: %d vertices, %d faces", spec.Notation(), poly.VertexCount(), poly.FaceCount())

	model := render.NewModel(poly, faceColour)
	model.SetLinesOnly(*lines)

	// Truncated output has no reliable winding, so culling eats faces.
	if strings.ContainsRune(spec.Notation(), 't') {
		model.SetDrawAllFaces(true)
	}

	g := &game{
		model:    model,
		notation: spec.Notation(),
		distance: poly.Radius() * 3.5,
		lines:    *lines,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("polyorb " + spec.Notation())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
