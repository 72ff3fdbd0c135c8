// Package render draws the level and entities onto a tcell screen. It is
// presentation glue only: all game rules live in the system package.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"rogue-depths/internal/component"
	"rogue-depths/internal/ecs"
	"rogue-depths/internal/gamemap"
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	// Reserve the bottom row for the status line.
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-1),
	}
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame renders tiles, entities, and the status line, then shows the screen.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.GameMap, status string) {
	r.screen.Clear()
	r.drawMap(m)
	r.drawEntities(w, m)
	r.drawStatus(status)
	r.screen.Show()
}

// drawMap renders every revealed tile; tiles outside the current field of
// view are dimmed to grey.
func (r *Renderer) drawMap(m *gamemap.GameMap) {
	for idx, kind := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		x, y := m.IdxXY(idx)
		sx, sy, onScreen := r.camera.WorldToScreen(x, y)
		if !onScreen {
			continue
		}

		var glyph rune
		var fg tcell.Color
		switch kind {
		case gamemap.TileWall:
			glyph, fg = '#', tcell.ColorGreen
		case gamemap.TileFloor:
			glyph, fg = '.', tcell.ColorGray
		}
		if !m.Visible[idx] {
			fg = tcell.ColorDarkSlateGray
		}
		style := tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
		r.screen.SetContent(sx, sy, glyph, nil, style)
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders entities standing on currently-visible tiles,
// ordered by RenderOrder (lower = drawn first / behind).
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.GameMap) {
	ids := w.Join(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos := w.Component(id, component.CPosition).(component.Position)
		rend := w.Component(id, component.CRenderable).(component.Renderable)
		if m.InBounds(pos.X, pos.Y) && !m.Visible[m.XYIdx(pos.X, pos.Y)] {
			continue
		}
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	sort.Slice(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// drawStatus writes the status line in the reserved bottom row.
func (r *Renderer) drawStatus(status string) {
	_, h := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	col := 0
	for _, ch := range status {
		r.screen.SetContent(col, h-1, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), padding the trailing column for double-width glyphs.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
