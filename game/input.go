package game

// Commands the front-end issues. They never advance the simulation.

// TogglePause pauses or resumes Update.
func (g *Game) TogglePause() { g.paused = !g.paused }

// Paused reports whether Update is paused.
func (g *Game) Paused() bool { return g.paused }

// SetSpeed sets the steps run per Update, clamped to [MinSteps, MaxSteps].
func (g *Game) SetSpeed(steps int) {
	g.stepsPerUpdate = min(max(steps, MinSteps), MaxSteps)
}

// Speed returns the steps run per Update.
func (g *Game) Speed() int { return g.stepsPerUpdate }

// Faster increments the speed by one step.
func (g *Game) Faster() { g.SetSpeed(g.stepsPerUpdate + 1) }

// Slower decrements the speed by one step.
func (g *Game) Slower() { g.SetSpeed(g.stepsPerUpdate - 1) }
