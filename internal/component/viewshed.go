package component

import "rogue-depths/internal/ecs"

const CViewshed ecs.ComponentType = 2

// Viewshed holds an entity's current field of view.
// VisibleTiles are linear map indices. Dirty is set whenever the entity's
// Position changes; the visibility system recomputes and clears it.
type Viewshed struct {
	VisibleTiles []int
	Range        int
	Dirty        bool
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }
