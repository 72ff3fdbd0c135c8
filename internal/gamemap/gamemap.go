// Package gamemap holds the level state: a fixed-size tile grid stored as a
// row-major linear array, the accepted room list, and per-tile
// revealed/visible flags maintained by the visibility system.
package gamemap

// GameMap is one dungeon level. Width and Height are fixed for the map's
// lifetime; Tiles, Revealed, and Visible all have length Width*Height.
// Tile kinds are mutated only during generation; the flag arrays are
// mutated every turn by the visibility system.
type GameMap struct {
	Width, Height int
	Tiles         []TileKind
	Rooms         []Rect
	Revealed      []bool
	Visible       []bool
}

// New creates a GameMap of the given size filled entirely with walls.
func New(width, height int) *GameMap {
	n := width * height
	m := &GameMap{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileKind, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	return m
}

// XYIdx maps (x, y) to its linear index: y*Width + x. The caller is
// responsible for passing in-bounds coordinates.
func (m *GameMap) XYIdx(x, y int) int {
	return y*m.Width + x
}

// IdxXY is the inverse of XYIdx.
func (m *GameMap) IdxXY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds reports whether (x, y) lies within the map.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsOpaque reports whether the tile at idx blocks line of sight. This is
// the only predicate the field-of-view algorithm needs.
func (m *GameMap) IsOpaque(idx int) bool {
	return m.Tiles[idx].Opaque()
}

// IsWalkable reports whether (x, y) is in bounds and passable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[m.XYIdx(x, y)].Walkable()
}

// Dimensions returns the fixed map size.
func (m *GameMap) Dimensions() (int, int) {
	return m.Width, m.Height
}

// RevealedCount returns how many tiles have ever been seen.
func (m *GameMap) RevealedCount() int {
	n := 0
	for _, seen := range m.Revealed {
		if seen {
			n++
		}
	}
	return n
}
