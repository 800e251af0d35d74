// Package render holds the shared gonum/plot plumbing used by the
// suggestion strategies: class colors, scatter construction and tiled
// grid PNG assembly.
package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ClassColors cycles over the per-class scatter colors.
var ClassColors = []color.RGBA{
	{R: 220, G: 60, B: 60, A: 255},
	{R: 60, G: 120, B: 220, A: 255},
	{R: 60, G: 180, B: 90, A: 255},
	{R: 230, G: 160, B: 40, A: 255},
	{R: 150, G: 80, B: 200, A: 255},
	{R: 90, G: 90, B: 90, A: 255},
}

// ClassColor returns the color for the i-th class.
func ClassColor(i int) color.RGBA {
	return ClassColors[i%len(ClassColors)]
}

// Scatter builds a small-glyph scatter of (x[i], y[i]) points in the given color.
func Scatter(x, y []float64, c color.RGBA) (*plotter.Scatter, error) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(1.5)
	return s, nil
}

// SaveGrid lays out the plots as tiles of the given size and writes the
// assembled canvas to a PNG file. Nil cells are left blank.
func SaveGrid(plots [][]*plot.Plot, tile vg.Length, path string) error {
	rows := len(plots)
	if rows == 0 {
		return fmt.Errorf("save grid: no plots")
	}
	cols := len(plots[0])

	img := vgimg.New(vg.Length(cols)*tile, vg.Length(rows)*tile)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save grid: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("save grid: %w", err)
	}
	return f.Close()
}
