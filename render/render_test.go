package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

func fixture(t *testing.T) (*grid.Grid, []grid.Cell, grid.Cell, grid.Cell) {
	t.Helper()
	g, err := grid.Parse([]string{
		"...",
		"##.",
		"...",
	})
	require.NoError(t, err)
	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}}
	return g, path, path[0], path[len(path)-1]
}

func TestLines(t *testing.T) {
	g, path, s, tg := fixture(t)
	assert.Equal(t, []string{
		"S**",
		"##*",
		"T**",
	}, render.Lines(g, path, &s, &tg))

	// without endpoints or path only terrain is drawn
	assert.Equal(t, []string{
		"...",
		"##.",
		"...",
	}, render.Lines(g, nil, nil, nil))
}

func TestASCII_Plain(t *testing.T) {
	g, path, s, tg := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, render.ASCII(&buf, g, path, &s, &tg, render.Options{}))
	assert.Equal(t, "S**\n##*\nT**\n", buf.String())
}

// TestASCII_Color keeps every symbol visible whatever the colour profile.
func TestASCII_Color(t *testing.T) {
	g, path, s, tg := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, render.ASCII(&buf, g, path, &s, &tg, render.Options{Color: true}))
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "\n"))
	for _, sym := range []string{"S", "T", "*", "#"} {
		assert.Contains(t, out, sym)
	}
}

func TestSteps(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Steps(&buf, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}))
	assert.Equal(t, "  Step 0: (0, 0)\n  Step 1: (0, 1)\n", buf.String())
}

// near reports whether two colours match within a small tolerance.
func near(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	d := func(x, y uint32) uint32 {
		if x > y {
			return x - y
		}
		return y - x
	}
	const tol = 3 << 8
	return d(ar, br) <= tol && d(ag, bg) <= tol && d(ab, bb) <= tol
}

func TestPNG(t *testing.T) {
	g, path, s, tg := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, g, path, &s, &tg, 10))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 30), img.Bounds())

	wall := color.RGBA{R: 77, G: 64, B: 51, A: 255}
	start := color.RGBA{R: 38, G: 166, B: 64, A: 255}
	pathMark := color.RGBA{R: 242, G: 191, B: 26, A: 255}
	ground := color.RGBA{R: 237, G: 232, B: 214, A: 255}

	assert.True(t, near(img.At(5, 15), wall), "wall cell centre")
	assert.True(t, near(img.At(5, 5), start), "start cell centre")
	assert.True(t, near(img.At(15, 5), pathMark), "path cell centre")
	assert.True(t, near(img.At(10, 0), ground), "path cell border shows ground")
}

func TestPNG_Errors(t *testing.T) {
	g, _, _, _ := fixture(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, render.PNG(&buf, g, nil, nil, nil, 0), render.ErrCellSize)

	empty, err := grid.New(nil)
	require.NoError(t, err)
	require.NoError(t, render.PNG(&buf, empty, nil, nil, nil, render.DefaultCellSize))
}
