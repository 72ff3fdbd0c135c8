package gamemap

// TileKind identifies the terrain of one map cell. The enumeration is
// closed: switches over it should be exhaustive so that a future kind
// (doors, water) fails loudly instead of falling through.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Opaque reports whether the tile blocks line of sight.
func (k TileKind) Opaque() bool {
	return k == TileWall
}

// Walkable reports whether an entity may stand on the tile.
func (k TileKind) Walkable() bool {
	return k == TileFloor
}

// String returns the kind's name for test failures and logs.
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	}
	return "Unknown"
}
