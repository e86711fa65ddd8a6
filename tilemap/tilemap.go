package tilemap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/gridpath/grid"
)

// Tile codes.
const (
	TileStart    = 0
	TileObstacle = 3
	TilePath     = 5
	TileTarget   = 8
)

// Sentinel errors.
var (
	// ErrNoLayers indicates a document without any tile layer.
	ErrNoLayers = errors.New("tilemap: document has no layers")
	// ErrLayerSize indicates len(data) != width*height, or dimensions that
	// are negative or whose product overflows int.
	ErrLayerSize = errors.New("tilemap: layer data does not match width*height")
	// ErrMissingStart indicates no start tile was found.
	ErrMissingStart = errors.New("tilemap: map has no start tile")
	// ErrMissingTarget indicates no target tile was found.
	ErrMissingTarget = errors.New("tilemap: map has no target tile")
)

// layer is the subset of a Tiled tile layer that the loader reads.
type layer struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Data   []int `json:"data"`
}

type document struct {
	Layers []layer `json:"layers"`
}

// Map is a decoded tile map.
type Map struct {
	Grid      *grid.Grid
	Start     grid.Cell
	Target    grid.Cell
	HasStart  bool
	HasTarget bool

	width int
	data  []int  // first layer tiles, untouched
	raw   []byte // whole source document
}

// Load decodes the tile map stored at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode reads a Tiled JSON document. Repeated start or target tiles are
// allowed; the last one in row-major order wins.
func Decode(r io.Reader) (*Map, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tilemap: read: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("tilemap: decode: %w", err)
	}
	if len(doc.Layers) == 0 {
		return nil, ErrNoLayers
	}
	l := doc.Layers[0]
	if l.Width < 0 || l.Height < 0 || (l.Height != 0 && l.Width > math.MaxInt/l.Height) ||
		len(l.Data) != l.Width*l.Height {
		return nil, fmt.Errorf("%w: %dx%d with %d tiles", ErrLayerSize, l.Width, l.Height, len(l.Data))
	}

	m := &Map{width: l.Width, data: l.Data, raw: raw}
	vals := make([][]bool, l.Height)
	for row := 0; row < l.Height; row++ {
		vals[row] = make([]bool, l.Width)
		for col := 0; col < l.Width; col++ {
			c := grid.Cell{Row: row, Col: col}
			switch l.Data[row*l.Width+col] {
			case TileStart:
				m.Start, m.HasStart = latest(m.Start, m.HasStart, c), true
				vals[row][col] = true
			case TileTarget:
				m.Target, m.HasTarget = latest(m.Target, m.HasTarget, c), true
				vals[row][col] = true
			case TileObstacle:
				vals[row][col] = false
			default:
				vals[row][col] = true
			}
		}
	}
	g, err := grid.New(vals)
	if err != nil {
		return nil, err
	}
	m.Grid = g

	return m, nil
}

// latest keeps the row-major later of a previous tile and c.
func latest(prev grid.Cell, seen bool, c grid.Cell) grid.Cell {
	if seen && c.Less(prev) {
		return prev
	}
	return c
}

// Endpoints returns the start and target cells, or ErrMissingStart /
// ErrMissingTarget when the map lacks one.
func (m *Map) Endpoints() (grid.Cell, grid.Cell, error) {
	if !m.HasStart {
		return grid.Cell{}, grid.Cell{}, ErrMissingStart
	}
	if !m.HasTarget {
		return grid.Cell{}, grid.Cell{}, ErrMissingTarget
	}
	return m.Start, m.Target, nil
}

// Tiles returns a copy of the first layer with path cells tagged TilePath.
// Start and target tiles keep their codes; cells outside the map are ignored.
func (m *Map) Tiles(path []grid.Cell) []int {
	out := make([]int, len(m.data))
	copy(out, m.data)
	for _, c := range path {
		if !m.Grid.InBounds(c.Row, c.Col) {
			continue
		}
		if (m.HasStart && c == m.Start) || (m.HasTarget && c == m.Target) {
			continue
		}
		out[c.Row*m.width+c.Col] = TilePath
	}
	return out
}

// Export writes the source document to w with the path marked on the
// first layer, indented by two spaces. Keys keep their source order.
func (m *Map) Export(w io.Writer, path []grid.Cell) error {
	var doc object
	if err := json.Unmarshal(m.raw, &doc); err != nil {
		return fmt.Errorf("tilemap: export: %w", err)
	}
	var layers []object
	if err := json.Unmarshal(doc.get("layers"), &layers); err != nil {
		return fmt.Errorf("tilemap: export layers: %w", err)
	}
	if len(layers) == 0 {
		return ErrNoLayers
	}

	data, err := json.Marshal(m.Tiles(path))
	if err != nil {
		return fmt.Errorf("tilemap: export data: %w", err)
	}
	layers[0].set("data", data)
	encoded, err := json.Marshal(layers)
	if err != nil {
		return fmt.Errorf("tilemap: export layers: %w", err)
	}
	doc.set("layers", encoded)

	out, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("tilemap: export: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err != nil {
		return fmt.Errorf("tilemap: export indent: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// Save writes Export output to the file at path.
func (m *Map) Save(path string, route []grid.Cell) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tilemap: create %s: %w", path, err)
	}
	if err := m.Export(f, route); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
