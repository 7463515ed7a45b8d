package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/survivors/components"
	"github.com/pthm-cable/survivors/systems"
	"github.com/pthm-cable/survivors/traits"
)

// populate places the Danger, the Food and the initial Survivors, in that
// order, so every placement can respect the ones before it.
func (g *Game) populate() error {
	cfg := g.cfg
	attempts := cfg.World.PlacementAttempts

	anchorArea := g.bounds.Inset(cfg.Danger.SpawnMarginEdges * cfg.Danger.Edge)
	anchor, err := systems.Place(g.rng, anchorArea, nil, attempts)
	if err != nil {
		return fmt.Errorf("danger: %w", err)
	}
	g.danger = systems.NewDanger(cfg.Danger, anchor)

	g.food = systems.NewFood(cfg, g.rng)
	if err := g.food.Relocate(anchor, 0); err != nil {
		return err
	}

	s := cfg.Survivor
	area := g.bounds.Inset(s.SpawnMarginRatio * s.SensoryRadius)
	safe := systems.FarFrom(anchor, s.SensoryRadius+s.DangerEdgeFactor*cfg.Danger.Edge)
	for i := 0; i < cfg.World.Population; i++ {
		pos, err := systems.Place(g.rng, area, safe, attempts)
		if err != nil {
			return fmt.Errorf("survivor %d of %d: %w", i+1, cfg.World.Population, err)
		}
		if _, err := g.spawnSurvivor(pos); err != nil {
			return err
		}
	}
	return nil
}

// spawnSurvivor creates one Survivor at pos with fresh traits and a name.
func (g *Game) spawnSurvivor(pos systems.Vec) (ecs.Entity, error) {
	cfg := &g.cfg.Survivor
	now := g.clock.Now()

	name, err := g.names.Allocate()
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("naming survivor: %w", err)
	}

	id := g.nextID
	g.nextID++

	identity := components.Identity{ID: id, Name: name}
	position := components.Position{X: pos.X, Y: pos.Y}
	motion := components.Motion{Speed: cfg.Speed}
	systems.RandomHeading(&motion, g.rng)
	energy := components.Energy{Value: cfg.EnergyMax, Max: cfg.EnergyMax}
	senses := components.Senses{Radius: cfg.Radius, SensoryRadius: cfg.SensoryRadius}
	tr := traits.Draw(g.ranges, g.rng)
	state := components.State{
		Mode:      components.ModeSearch,
		AbleToEat: true,
		NextTurn:  systems.NextTurnInterval(*cfg, g.rng),
		Stats:     components.Stats{BornAt: now},
	}

	e := g.survivorMapper.NewEntity(&identity, &position, &motion, &energy, &senses, &tr, &state)
	g.lifetime.Register(id, name, now, energy.Value)
	return e, nil
}
