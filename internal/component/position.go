package component

import "rogue-depths/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is an entity's tile coordinate on the map.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
