//go:build !js

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gobrush/pkg/canvas"
	"gobrush/pkg/script"
)

func main() {
	inPath := flag.String("in", "", "input script file path")
	outPath := flag.String("out", "", "output PNG file path (default: input with .png extension)")
	size := flag.Int("size", canvas.DefaultSize, "canvas side length in pixels")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <script> to run a program")
		flag.Usage()
		os.Exit(2)
	}

	source, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	cv, err := canvas.New(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid canvas size: %v\n", err)
		os.Exit(2)
	}

	state, err := script.Run(string(source), cv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run failed for %q:\n%v\n", *inPath, err)
		os.Exit(1)
	}

	output := *outPath
	if output == "" {
		output = defaultOutputPath(*inPath)
	}
	if err := cv.SavePNG(output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write PNG %q: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf(
		"run complete (%s): X=%d Y=%d color=%s size=%d -> %s\n",
		*inPath,
		state.X,
		state.Y,
		state.BrushColor,
		state.BrushSize,
		output,
	)
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".png"
	}
	return strings.TrimSuffix(inPath, ext) + ".png"
}
