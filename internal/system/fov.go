package system

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"rogue-depths/internal/component"
	"rogue-depths/internal/ecs"
	"rogue-depths/internal/gamemap"
)

// octant transform matrices for recursive shadowcasting.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//   worldX = cx + dx*xx + dy*xy
//   worldY = cy + dx*yx + dy*yy
// These match the standard RogueBasin multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateViewsheds recomputes every dirty viewshed in the world. For the
// player entity it also refreshes the map's Visible flags and accumulates
// Revealed ones; other entities only get their VisibleTiles list.
func UpdateViewsheds(w *ecs.World, m *gamemap.GameMap) {
	for _, id := range w.Join(component.CViewshed, component.CPosition) {
		vs := w.Component(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Component(id, component.CPosition).(component.Position)

		vs.VisibleTiles = computeFOV(m, pos.X, pos.Y, vs.Range)
		vs.Dirty = false
		w.Attach(id, vs)

		if w.Has(id, component.CTagPlayer) {
			for i := range m.Visible {
				m.Visible[i] = false
			}
			for _, idx := range vs.VisibleTiles {
				m.Visible[idx] = true
				m.Revealed[idx] = true
			}
		}
	}
}

// computeFOV runs shadowcasting from (cx, cy) and returns the visible
// linear tile indices in ascending order. The set dedups tiles that are lit
// from more than one octant; sorting keeps the result deterministic.
func computeFOV(m *gamemap.GameMap, cx, cy, radius int) []int {
	lit := mapset.New[int]()
	if m.InBounds(cx, cy) {
		lit.Put(m.XYIdx(cx, cy))
	}
	for _, mul := range octants {
		castLight(m, lit, cx, cy, 1, 1.0, 0.0, radius, mul[0], mul[1], mul[2], mul[3])
	}

	out := make([]int, 0, lit.Size())
	lit.Each(func(idx int) {
		out = append(out, idx)
	})
	sort.Ints(out)
	return out
}

// castLight casts light for one octant using recursive shadowcasting.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(m *gamemap.GameMap, lit mapset.Set[int], cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq && m.InBounds(wx, wy) {
				lit.Put(m.XYIdx(wx, wy))
			}

			opaque := !m.InBounds(wx, wy) || m.IsOpaque(m.XYIdx(wx, wy))

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(m, lit, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
