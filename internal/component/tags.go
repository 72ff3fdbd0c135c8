package component

import "rogue-depths/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 4
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
