// Package generate builds dungeon levels by scattering rectangular rooms
// and linking them with L-shaped corridors.
package generate

import (
	"math/rand"

	"rogue-depths/internal/gamemap"
)

// Reference generation parameters.
const (
	DefaultMaxRooms    = 30
	DefaultMinRoomSize = 6
	DefaultMaxRoomSize = 10
)

// Config drives procedural generation for one level. Rand must be set by
// the caller; threading the generator through explicitly is what makes a
// seed reproduce the same level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	MinRoomSize         int
	MaxRoomSize         int
	Rand                *rand.Rand
}

// DefaultConfig returns the reference 80×50 configuration.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:    80,
		MapHeight:   50,
		MaxRooms:    DefaultMaxRooms,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		Rand:        rng,
	}
}

// Generate builds a level and returns it along with the player start
// position (the center of the first accepted room, or the map center when
// a bad run of proposals accepts nothing).
//
// Up to MaxRooms room rectangles are proposed. A proposal that overlaps an
// already-accepted room — touching edges included — is skipped outright, not
// retried; the room count therefore varies between runs and may be as low
// as one. Each accepted room after the first is joined to its immediate
// predecessor by a dogleg corridor whose bend direction is a coin flip.
func Generate(cfg *Config) (*gamemap.GameMap, int, int) {
	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	rng := cfg.Rand

	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		// Keep at least one tile of wall on every side of the map.
		x := 1 + rng.Intn(cfg.MapWidth-w-2)
		y := 1 + rng.Intn(cfg.MapHeight-h-2)
		room := gamemap.NewRect(x, y, w, h)

		ok := true
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		carveRoom(m, room)
		if len(m.Rooms) > 0 {
			prev := m.Rooms[len(m.Rooms)-1]
			connectRooms(m, prev, room, rng)
		}
		m.Rooms = append(m.Rooms, room)
	}

	px, py := cfg.MapWidth/2, cfg.MapHeight/2
	if len(m.Rooms) > 0 {
		px, py = m.Rooms[0].Center()
	}
	return m, px, py
}

// carveRoom floors the room's interior. The rectangle's own border line is
// left as wall — the one-tile inset lets corridors abut it cleanly.
func carveRoom(m *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.Tiles[m.XYIdx(x, y)] = gamemap.TileFloor
		}
	}
}

// connectRooms carves an L-shaped corridor between two room centers,
// flipping a coin for which leg comes first so layouts don't all bend the
// same way.
func connectRooms(m *gamemap.GameMap, prev, next gamemap.Rect, rng *rand.Rand) {
	prevX, prevY := prev.Center()
	nextX, nextY := next.Center()
	if rng.Intn(2) == 1 {
		carveHorizontal(m, prevX, nextX, prevY)
		carveVertical(m, prevY, nextY, nextX)
	} else {
		carveHorizontal(m, prevX, nextX, nextY)
		carveVertical(m, prevY, nextY, prevX)
	}
}

// carveHorizontal floors the run between x1 and x2 at row y. Indices that
// fall outside the tile array are dropped, never a failure.
func carveHorizontal(m *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if idx := m.XYIdx(x, y); idx >= 0 && idx < len(m.Tiles) {
			m.Tiles[idx] = gamemap.TileFloor
		}
	}
}

// carveVertical floors the run between y1 and y2 at column x.
func carveVertical(m *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if idx := m.XYIdx(x, y); idx >= 0 && idx < len(m.Tiles) {
			m.Tiles[idx] = gamemap.TileFloor
		}
	}
}
