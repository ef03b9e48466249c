// Package particle scatters short-lived decoration along the trail:
// sparks that explode outward and arc under gravity, and ice crystals
// that drift off perpendicular to the path. Particles age on their
// own clock; they outlive buffer clears and never affect the trail.
package particle

import (
	"math/rand"

	math "github.com/chewxy/math32"
)

// Kind selects the motion model for a particle.
type Kind int

const (
	// Spark flies in an unconstrained random direction with an upward
	// bias, then falls.
	Spark Kind = iota
	// IceCrystal leaves the path perpendicular to its local tangent
	// and floats more than it falls.
	IceCrystal
)

// A Particle is one spark or crystal in flight.
type Particle struct {
	X, Y   float32
	DX, DY float32
	Age    float32
	Life   float32
	Size   float32
	Kind   Kind
}

// Alpha is the particle's render opacity: 1 at spawn, 0 at expiry.
func (p *Particle) Alpha() float32 {
	if p.Life <= 0 {
		return 0
	}
	a := 1 - p.Age/p.Life
	if a < 0 {
		return 0
	}
	return a
}

// DefaultMaxParticles bounds the live set; the oldest entries get
// recycled first when a burst would exceed it.
const DefaultMaxParticles = 2048

// spark tuning: firework physics, heavy gravity
const (
	sparkGravity  = 200  // px/s^2
	sparkDrag     = 0.98 // per-tick velocity retention
	sparkMinSpeed = 25
	sparkMaxSpeed = 200
	sparkMinLife  = 1.5
	sparkMaxLife  = 3.0
	upwardBiasMin = 20
	upwardBiasMax = 80
)

// ice crystal tuning: high drag, barely-there gravity, random drift
const (
	crystalGravity  = 15
	crystalDrag     = 0.94
	crystalMinSpeed = 75
	crystalMaxSpeed = 180
	crystalMinLife  = 0.75
	crystalMaxLife  = 1.875
	crystalMinSize  = 0.8
	crystalMaxSize  = 2.5
	crystalSpread   = 0.52 // ±30 degrees around the perpendicular
)

// A System owns the live particles. Mutated only by the scheduler
// tick; read only by the render pass in the same tick.
type System struct {
	Max       int
	particles []Particle
	rng       *rand.Rand
}

// NewSystem returns an empty particle system. Seed fixes the random
// stream, which the tests rely on; pass anything for production use.
func NewSystem(seed int64) *System {
	return &System{Max: DefaultMaxParticles, rng: rand.New(rand.NewSource(seed))}
}

// Len reports the number of live particles.
func (s *System) Len() int { return len(s.particles) }

// Particles exposes the live set, oldest first, valid until the next
// Spawn or Tick.
func (s *System) Particles() []Particle { return s.particles }

func (s *System) add(p Particle) {
	max := s.Max
	if max <= 0 {
		max = DefaultMaxParticles
	}
	if len(s.particles) >= max {
		copy(s.particles, s.particles[len(s.particles)-max+1:])
		s.particles = s.particles[:max-1]
	}
	s.particles = append(s.particles, p)
}

func (s *System) uniform(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}

// SpawnSpark emits one spark at (x, y) with a random direction,
// randomized speed, and a slight upward kick.
func (s *System) SpawnSpark(x, y float32) {
	theta := s.uniform(0, 2*math.Pi)
	speed := s.uniform(sparkMinSpeed, sparkMaxSpeed)
	sin, cos := math.Sincos(theta)
	s.add(Particle{
		X: x, Y: y,
		DX:   cos * speed,
		DY:   sin*speed - s.uniform(upwardBiasMin, upwardBiasMax),
		Life: s.uniform(sparkMinLife, sparkMaxLife),
		Size: 2,
		Kind: Spark,
	})
}

// SpawnCrystal emits one ice crystal at (x, y). The velocity is
// perpendicular to the path tangent (tx, ty), flipped to a random
// side, with a little angular spread. A degenerate tangent falls back
// to a random direction.
func (s *System) SpawnCrystal(x, y, tx, ty float32) {
	l := math.Sqrt(tx*tx + ty*ty)
	var dirX, dirY float32
	if l > 0.5 {
		// rotate tangent 90 degrees, pick a side
		dirX, dirY = -ty/l, tx/l
		if s.rng.Float32() < 0.5 {
			dirX, dirY = -dirX, -dirY
		}
		spread := s.uniform(-crystalSpread, crystalSpread)
		sin, cos := math.Sincos(spread)
		dirX, dirY = dirX*cos-dirY*sin, dirX*sin+dirY*cos
	} else {
		theta := s.uniform(0, 2*math.Pi)
		dirY, dirX = math.Sincos(theta)
	}
	speed := s.uniform(crystalMinSpeed, crystalMaxSpeed)
	s.add(Particle{
		X: x + s.uniform(-3, 3), Y: y + s.uniform(-3, 3),
		DX:   dirX * speed,
		DY:   dirY * speed,
		Life: s.uniform(crystalMinLife, crystalMaxLife),
		Size: s.uniform(crystalMinSize, crystalMaxSize),
		Kind: IceCrystal,
	})
}

// Tick integrates one frame of motion and compacts out expired
// particles, preserving spawn order of the survivors.
func (s *System) Tick(dt float32) {
	if dt < 0 {
		return
	}
	j := 0
	for _, p := range s.particles {
		p.Age += dt
		if p.Age > p.Life {
			continue
		}
		p.X += p.DX * dt
		p.Y += p.DY * dt
		switch p.Kind {
		case Spark:
			p.DY += sparkGravity * dt
			p.DX *= sparkDrag
			p.DY *= sparkDrag
		case IceCrystal:
			p.DX *= crystalDrag
			p.DY *= crystalDrag
			p.DY += crystalGravity * dt
			p.DX += s.uniform(-2, 2) * dt
			p.DY += s.uniform(-1, 1) * dt
		}
		s.particles[j] = p
		j++
	}
	s.particles = s.particles[:j]
}

// Clear drops every particle.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
