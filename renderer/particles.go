package renderer

import (
	"math"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/survivors/camera"
	"github.com/pthm-cable/survivors/telemetry"
)

// ParticleType selects a particle's colour.
type ParticleType uint8

const (
	ParticleHit ParticleType = iota
	ParticleMeal
	ParticleGone
)

// Particle is a short-lived visual effect in world coordinates.
type Particle struct {
	X, Y    float32
	VX, VY  float32
	Life    float32
	MaxLife float32
	Size    float32
	Type    ParticleType
}

type tracked struct {
	hits, meals int
	x, y        float32
}

// ParticleRenderer spawns bursts from the differences between successive
// snapshots: a hit, a meal or a Survivor leaving the world.
type ParticleRenderer struct {
	cam       *camera.Camera
	particles []Particle
	seen      map[uint32]tracked
	scratch   map[uint32]bool
}

// NewParticleRenderer creates a particle renderer.
func NewParticleRenderer(cam *camera.Camera) *ParticleRenderer {
	return &ParticleRenderer{
		cam:     cam,
		seen:    make(map[uint32]tracked),
		scratch: make(map[uint32]bool),
	}
}

// Observe compares s with the previous snapshot and spawns bursts.
func (r *ParticleRenderer) Observe(s *telemetry.Snapshot) {
	clear(r.scratch)
	for _, sv := range s.Survivors {
		r.scratch[sv.ID] = true
		now := tracked{hits: sv.Stats.Hits, meals: sv.Stats.Meals, x: float32(sv.X), y: float32(sv.Y)}
		if prev, ok := r.seen[sv.ID]; ok {
			if now.hits > prev.hits {
				r.burst(now.x, now.y, ParticleHit, 10)
			}
			if now.meals > prev.meals {
				r.burst(now.x, now.y, ParticleMeal, 4)
			}
		}
		r.seen[sv.ID] = now
	}
	for id, prev := range r.seen {
		if !r.scratch[id] {
			r.burst(prev.x, prev.y, ParticleGone, 12)
			delete(r.seen, id)
		}
	}
}

func (r *ParticleRenderer) burst(x, y float32, typ ParticleType, n int) {
	for range n {
		angle := rand.Float64() * 2 * math.Pi
		speed := float32(20 + rand.Float64()*40)
		life := float32(0.4 + rand.Float64()*0.4)
		r.particles = append(r.particles, Particle{
			X: x, Y: y,
			VX:   speed * float32(math.Cos(angle)),
			VY:   speed * float32(math.Sin(angle)),
			Life: life, MaxLife: life,
			Size: float32(2 + rand.Float64()*2),
			Type: typ,
		})
	}
}

// Update ages particles by dt seconds of wall time.
func (r *ParticleRenderer) Update(dt float32) {
	alive := r.particles[:0]
	for _, p := range r.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		alive = append(alive, p)
	}
	r.particles = alive
}

// Len returns the number of live particles.
func (r *ParticleRenderer) Len() int { return len(r.particles) }

// Draw renders all particles.
func (r *ParticleRenderer) Draw() {
	for i := range r.particles {
		p := &r.particles[i]
		lifeRatio := p.Life / p.MaxLife

		var color rl.Color
		switch p.Type {
		case ParticleHit:
			color = rl.Color{R: 255, G: 60, B: 40, A: uint8(lifeRatio * 220)}
		case ParticleMeal:
			color = rl.Color{R: 153, G: 51, B: 255, A: uint8(lifeRatio * 180)}
		case ParticleGone:
			color = rl.Color{R: 100, G: 80, B: 60, A: uint8(lifeRatio * 150)}
		}

		if !r.cam.IsVisible(p.X, p.Y, p.Size) {
			continue
		}
		sx, sy := r.cam.WorldToScreen(p.X, p.Y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, max(r.cam.Scale(p.Size*lifeRatio), 0.5), color)
	}
}
