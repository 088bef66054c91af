//go:build !js

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gobrush/pkg/canvas"
	"gobrush/pkg/script"
)

// TestCirclesExample runs the shipped circles script end to end and checks
// the final agent state, the painted canvas, and the PNG round trip.
func TestCirclesExample(t *testing.T) {
	srcBytes, err := os.ReadFile("examples/circles.pw")
	if err != nil {
		t.Fatalf("failed to read example script: %v", err)
	}

	cv, err := canvas.New(canvas.DefaultSize)
	if err != nil {
		t.Fatalf("canvas.New failed: %v", err)
	}

	state, rerr := script.Run(string(srcBytes), cv)
	if rerr != nil {
		t.Fatalf("run failed: %v", rerr)
	}

	if state.X != 100 || state.Y != 100 {
		t.Errorf("agent at (%d, %d), want (100, 100)", state.X, state.Y)
	}
	if state.BrushColor != canvas.Blue || state.BrushSize != 1 {
		t.Errorf("brush = %s size %d, want blue size 1", state.BrushColor, state.BrushSize)
	}
	if got := cv.ColorAt(150, 100); got != canvas.Blue {
		t.Errorf("pixel on the outermost ring = %s, want blue", got)
	}

	outPath := filepath.Join(t.TempDir(), "circles.png")
	if err := cv.SavePNG(outPath); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open PNG: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("PNG decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != canvas.DefaultSize || b.Dy() != canvas.DefaultSize {
		t.Errorf("PNG bounds = %v, want %d×%d", b, canvas.DefaultSize, canvas.DefaultSize)
	}
}

// TestSquareExample checks that the filled-square script floods only the
// square's interior.
func TestSquareExample(t *testing.T) {
	srcBytes, err := os.ReadFile("examples/square.pw")
	if err != nil {
		t.Fatalf("failed to read example script: %v", err)
	}

	cv, err := canvas.New(canvas.DefaultSize)
	if err != nil {
		t.Fatalf("canvas.New failed: %v", err)
	}

	if _, rerr := script.Run(string(srcBytes), cv); rerr != nil {
		t.Fatalf("run failed: %v", rerr)
	}

	if got := cv.ColorAt(100, 100); got != canvas.Yellow {
		t.Errorf("square interior = %s, want yellow", got)
	}
	if got := cv.ColorAt(10, 10); got != canvas.White {
		t.Errorf("outside the square = %s, want white", got)
	}
}
