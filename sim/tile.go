package sim

// Tile is one cell of a maze layout
type Tile int

const (
	TileFloor Tile = iota
	TileWall
	TileShelf
	TileFurniture
)

// ParseTile maps a layout rune to a tile. Unknown runes are floor.
func ParseTile(r rune) Tile {
	switch r {
	case '#':
		return TileWall
	case 'S':
		return TileShelf
	case 'F':
		return TileFurniture
	default:
		return TileFloor
	}
}

// Solid reports whether the tile blocks movement
func (t Tile) Solid() bool {
	return t != TileFloor
}
