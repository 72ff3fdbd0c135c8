package system

import (
	"rogue-depths/internal/component"
	"rogue-depths/internal/ecs"
	"rogue-depths/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds; nothing changed
)

// TryMove attempts to move entity id by (dx, dy) on m.
//
// A blocked move is a normal outcome, not an error: the entity's state is
// left untouched. On success the position is updated, clamped to the map,
// and the entity's Viewshed (if any) is marked dirty so the visibility
// system recomputes on the next pass. Out-of-bounds destinations are
// rejected before any index arithmetic so a negative coordinate can never
// wrap into an unrelated row.
func TryMove(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dx, dy int) MoveResult {
	posComp := w.Component(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if !m.InBounds(nx, ny) {
		return MoveBlocked
	}
	if m.Tiles[m.XYIdx(nx, ny)] == gamemap.TileWall {
		return MoveBlocked
	}

	pos.X = clamp(nx, 0, m.Width-1)
	pos.Y = clamp(ny, 0, m.Height-1)
	w.Attach(id, pos)

	if vsComp := w.Component(id, component.CViewshed); vsComp != nil {
		vs := vsComp.(component.Viewshed)
		vs.Dirty = true
		w.Attach(id, vs)
	}
	return MoveOK
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
