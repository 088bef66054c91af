package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gobrush/pkg/canvas"
	"gobrush/pkg/script"
)

const (
	displayScale    = 2
	statusBarHeight = 16
)

type Game struct {
	path      string
	cv        *canvas.Canvas
	canvasImg *ebiten.Image // reused size×size bitmap of the pixel buffer
	status    string
	dirty     bool
}

// runScript reloads the script file, clears the canvas and executes the
// program. The file is re-read on every run so edits made in an external
// editor take effect on the next R press.
func (g *Game) runScript() {
	g.dirty = true
	source, err := os.ReadFile(g.path)
	if err != nil {
		g.status = fmt.Sprintf("read failed: %v", err)
		return
	}

	g.cv.Clear()
	state, err := script.Run(string(source), g.cv)
	if err != nil {
		g.status = firstLine(err.Error())
		return
	}
	g.status = fmt.Sprintf("agent at (%d, %d), color %s, size %d  [R] re-run  [S] screenshot",
		state.X, state.Y, state.BrushColor, state.BrushSize)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runScript()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		name := fmt.Sprintf("gobrush_%s.png", time.Now().Format("20060102_150405"))
		if err := g.cv.SavePNG(name); err != nil {
			g.status = fmt.Sprintf("screenshot failed: %v", err)
		} else {
			g.status = "saved " + name
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvasImg == nil {
		g.canvasImg = ebiten.NewImage(g.cv.Size(), g.cv.Size())
		g.dirty = true
	}
	if g.dirty {
		g.canvasImg.WritePixels(g.cv.RGBA())
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(displayScale, displayScale)
	screen.DrawImage(g.canvasImg, op)

	// Status bar below the canvas.
	text.Draw(screen, g.status, basicfont.Face7x13, 4, g.cv.Size()*displayScale+statusBarHeight-4, color.White)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cv.Size() * displayScale, g.cv.Size()*displayScale + statusBarHeight
}

// firstLine truncates a multi-diagnostic parse report to fit the status bar.
func firstLine(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) > 1 {
		return fmt.Sprintf("%s (+%d more)", lines[0], len(lines)-1)
	}
	return lines[0]
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: desktop <script file> [canvas size]")
		os.Exit(2)
	}
	filename := os.Args[1]

	size := canvas.DefaultSize
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("invalid canvas size %q: %v", os.Args[2], err)
		}
		size = n
	}

	cv, err := canvas.New(size)
	if err != nil {
		log.Fatalf("invalid canvas size: %v", err)
	}

	game := &Game{path: filename, cv: cv}
	game.runScript()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size*displayScale, size*displayScale+statusBarHeight)
	ebiten.SetWindowTitle("Gobrush Desktop")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
