package game

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/survivors/telemetry"
)

// Run steps the simulation until a winner is declared, maxTicks is reached
// (0 = no limit) or ctx is cancelled, then returns the report.
func (g *Game) Run(ctx context.Context, maxTicks int32) telemetry.Report {
	for !g.over && (maxTicks <= 0 || g.tick < maxTicks) {
		if g.tick%1024 == 0 && ctx.Err() != nil {
			slog.Warn("run cancelled", "tick", g.tick)
			break
		}
		g.simulationStep()
	}
	return g.Report()
}
