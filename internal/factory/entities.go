// Package factory assembles entities from their components.
package factory

import (
	"github.com/gdamore/tcell/v2"

	"rogue-depths/internal/component"
	"rogue-depths/internal/ecs"
)

// NewPlayer creates the player entity at (x, y). The viewshed starts dirty
// so the first visibility pass runs before anything is drawn.
func NewPlayer(w *ecs.World, x, y, fovRadius int) ecs.EntityID {
	id := w.CreateEntity()
	w.Attach(id, component.Position{X: x, Y: y})
	w.Attach(id, component.Renderable{
		Glyph:       "@",
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorBlack,
		RenderOrder: 10,
	})
	w.Attach(id, component.Viewshed{Range: fovRadius, Dirty: true})
	w.Attach(id, component.TagPlayer{})
	return id
}
