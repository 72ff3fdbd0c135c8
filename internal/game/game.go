// Package game owns the turn loop: it reads input, runs the movement and
// visibility systems in a fixed order, and hands the world to the renderer.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"rogue-depths/internal/component"
	"rogue-depths/internal/ecs"
	"rogue-depths/internal/factory"
	"rogue-depths/internal/gamemap"
	"rogue-depths/internal/generate"
	"rogue-depths/internal/render"
	"rogue-depths/internal/system"
	"rogue-depths/internal/telemetry"
)

// Game is the top-level orchestrator for one session.
type Game struct {
	cfg      Config
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	gmap     *gamemap.GameMap
	playerID ecs.EntityID
	rng      *rand.Rand
	seed     int64
	turns    int
	runLog   RunLog
}

// New creates a Game with its screen initialized and a level generated.
func New(ctx context.Context, cfg Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		screen: screen,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		runLog: newRunLog(seed),
	}
	g.loadLevel(ctx)
	return g, nil
}

// loadLevel generates the map and spawns the player in the first room.
func (g *Game) loadLevel(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()
	start := time.Now()

	g.world = ecs.NewWorld()

	genCfg := generate.DefaultConfig(g.rng)
	genCfg.MapWidth = g.cfg.MapWidth
	genCfg.MapHeight = g.cfg.MapHeight
	gmap, px, py := generate.Generate(genCfg)
	g.gmap = gmap

	g.playerID = factory.NewPlayer(g.world, px, py, g.cfg.FOVRadius)

	span.SetAttributes(
		attribute.Int64("level.seed", g.seed),
		attribute.Int("level.width", gmap.Width),
		attribute.Int("level.height", gmap.Height),
		attribute.Int("level.room_count", len(gmap.Rooms)),
		attribute.Int64("level.generation_us", time.Since(start).Microseconds()),
	)

	g.renderer = render.NewRenderer(g.screen)
	g.renderer.CenterOn(px, py)
}

// Run is the main loop. Each tick reads one input event, runs the movement
// validator at most once, lets the visibility system consume dirty
// viewsheds, and renders. It returns when the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	for {
		system.UpdateViewsheds(g.world, g.gmap)
		if pos := g.playerPosition(); pos != nil {
			g.renderer.CenterOn(pos.X, pos.Y)
		}
		g.renderer.DrawFrame(g.world, g.gmap, g.statusLine())

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer = render.NewRenderer(g.screen)
		case *tcell.EventKey:
			action := keyToAction(ev)
			switch action {
			case ActionQuit:
				g.finishRun()
				return nil
			case ActionWait:
				g.turns++
			case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW:
				dx, dy := actionToDelta(action)
				if system.TryMove(g.world, g.gmap, g.playerID, dx, dy) == system.MoveOK {
					g.turns++
				}
			}
		}

		select {
		case <-ctx.Done():
			g.finishRun()
			return ctx.Err()
		default:
		}
	}
}

// playerPosition returns the player's current position, or nil.
func (g *Game) playerPosition() *component.Position {
	c := g.world.Component(g.playerID, component.CPosition)
	if c == nil {
		return nil
	}
	pos := c.(component.Position)
	return &pos
}

func (g *Game) statusLine() string {
	return fmt.Sprintf("turn %d  rooms %d  seed %d  [wasd/arrows move, . wait, q quit]",
		g.turns, len(g.gmap.Rooms), g.seed)
}

// finishRun stamps the run log and writes it out.
func (g *Game) finishRun() {
	g.runLog.TurnsPlayed = g.turns
	g.runLog.RoomCount = len(g.gmap.Rooms)
	g.runLog.TilesRevealed = g.gmap.RevealedCount()
	g.runLog.EndedAt = time.Now().UTC()
	saveRunLog(g.runLog)
}
