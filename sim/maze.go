package sim

import (
	"github.com/solarlune/resolv"
)

var (
	tagSolid = resolv.NewTag("solid")
	tagProbe = resolv.NewTag("probe")
)

// probeInset shrinks probe boxes so boxes flush against a wall can still slide along it
const probeInset = 0.5

// Maze is a tile grid that constrains movement. Solid tiles are mirrored
// into a resolv space so arbitrary boxes can be tested against them.
type Maze struct {
	// Tiles indexed [row][col]
	Tiles    [][]Tile
	Cols     int
	Rows     int
	TileSize float64

	space  *resolv.Space
	probes map[[2]float64]*resolv.ConvexPolygon
}

// NewMaze builds a maze from layout rows. Short rows are padded with floor.
func NewMaze(layout []string, tileSize float64) *Maze {
	rows := len(layout)
	cols := 0
	for _, line := range layout {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}

	m := &Maze{
		Tiles:    make([][]Tile, rows),
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		space:    resolv.NewSpace(int(float64(cols)*tileSize), int(float64(rows)*tileSize), int(tileSize), int(tileSize)),
		probes:   make(map[[2]float64]*resolv.ConvexPolygon),
	}

	for row, line := range layout {
		m.Tiles[row] = make([]Tile, cols)
		for col, r := range []rune(line) {
			t := ParseTile(r)
			m.Tiles[row][col] = t
			if t.Solid() {
				sh := resolv.NewRectangleTopLeft(float64(col)*tileSize, float64(row)*tileSize, tileSize, tileSize)
				sh.Tags().Set(tagSolid)
				m.space.Add(sh)
			}
		}
	}

	return m
}

// WorldToCell converts play-area coordinates to cell coordinates
func (m *Maze) WorldToCell(x, y float64) (int, int) {
	col := int(x / m.TileSize)
	row := int(y / m.TileSize)
	if x < 0 {
		col = -1
	}
	if y < 0 {
		row = -1
	}
	return col, row
}

// TileAt returns the tile at cell coordinates. Cells outside the grid are floor.
func (m *Maze) TileAt(col, row int) Tile {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return TileFloor
	}
	return m.Tiles[row][col]
}

// CellCenter returns the center of a cell in play-area coordinates
func (m *Maze) CellCenter(col, row int) Vec {
	return Vec{
		X: (float64(col) + 0.5) * m.TileSize,
		Y: (float64(row) + 0.5) * m.TileSize,
	}
}

// Blocked reports whether a box with top-left (x, y) overlaps a solid tile.
// Overlap is decided on shape bounds, so a box lying wholly inside a tile counts.
func (m *Maze) Blocked(x, y, w, h float64) bool {
	probe := m.probe(w, h)
	probe.SetPosition(x+w/2, y+h/2)
	box := probe.Bounds()

	hit := false
	probe.SelectTouchingCells(0).FilterShapes().ByTags(tagSolid).ForEach(func(sh resolv.IShape) bool {
		if overlaps(box, sh.Bounds()) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// overlaps reports whether two bounds share interior area. Touching edges do not count.
func overlaps(a, b resolv.Bounds) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X && a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// BlockedCentered is Blocked for a box given by its center
func (m *Maze) BlockedCentered(c Vec, w, h float64) bool {
	return m.Blocked(c.X-w/2, c.Y-h/2, w, h)
}

// probe returns the cached probe shape for a box size
func (m *Maze) probe(w, h float64) *resolv.ConvexPolygon {
	key := [2]float64{w, h}
	if p, ok := m.probes[key]; ok {
		return p
	}
	pw := max(w-2*probeInset, 1)
	ph := max(h-2*probeInset, 1)
	p := resolv.NewRectangleTopLeft(0, 0, pw, ph)
	p.Tags().Set(tagProbe)
	m.space.Add(p)
	m.probes[key] = p
	return p
}

// RandomEdgeSpawn looks for a free cell in the outer two bands of the grid
// that fits a w×h box. It gives up after attempts tries.
func (m *Maze) RandomEdgeSpawn(rng Rand, w, h float64, attempts int) (Vec, bool) {
	if m.Cols == 0 || m.Rows == 0 {
		return Vec{}, false
	}
	for i := 0; i < attempts; i++ {
		depth := rng.Intn(2)
		var col, row int
		switch rng.Intn(4) {
		case 0: // left
			col, row = depth, rng.Intn(m.Rows)
		case 1: // right
			col, row = m.Cols-1-depth, rng.Intn(m.Rows)
		case 2: // top
			col, row = rng.Intn(m.Cols), depth
		default: // bottom
			col, row = rng.Intn(m.Cols), m.Rows-1-depth
		}
		if m.TileAt(col, row).Solid() {
			continue
		}
		c := m.CellCenter(col, row)
		if m.BlockedCentered(c, w, h) {
			continue
		}
		return c, true
	}
	return Vec{}, false
}

// SlideMove applies the axis-sliding policy to a box at top-left pos:
// full move, else horizontal only, else vertical only, else stay
func SlideMove(m *Maze, pos Vec, w, h, dx, dy float64) Vec {
	if m == nil {
		return Vec{pos.X + dx, pos.Y + dy}
	}
	if !m.Blocked(pos.X+dx, pos.Y+dy, w, h) {
		return Vec{pos.X + dx, pos.Y + dy}
	}
	if dx != 0 && !m.Blocked(pos.X+dx, pos.Y, w, h) {
		return Vec{pos.X + dx, pos.Y}
	}
	if dy != 0 && !m.Blocked(pos.X, pos.Y+dy, w, h) {
		return Vec{pos.X, pos.Y + dy}
	}
	return pos
}
