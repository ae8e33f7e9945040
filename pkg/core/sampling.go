package core

import (
	"math/rand"
)

// maxUnitSphereAttempts bounds the rejection loop in RandomInUnitSphere.
// Each draw is accepted with probability ~0.52, so the cap is never
// reached in practice.
const maxUnitSphereAttempts = 64

// Sampler provides uniform random numbers for rendering algorithms
// Can be swapped out for deterministic testing
type Sampler interface {
	// Get1D returns a uniform float32 in [0, 1)
	Get1D() float32
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic generator
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// ball by rejection sampling the [-1,1]³ cube. If every attempt is rejected
// the centre of the ball is returned.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for range maxUnitSphereAttempts {
		p := Vec3{
			X: 2*sampler.Get1D() - 1,
			Y: 2*sampler.Get1D() - 1,
			Z: 2*sampler.Get1D() - 1,
		}
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
	return Vec3{}
}
