package engine

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the subset of *rand.Rand used by the spawn policy
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source, seeded from the clock when seed is 0
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SpawnPolicy decides per tick whether an obstacle appears and in which lane
// Independent rolls give geometric inter-arrival times, not a fixed cadence
type SpawnPolicy struct {
	chance    float64
	laneWidth float64
	rng       RandomSource
}

func NewSpawnPolicy(chance, laneWidth float64, rng RandomSource) *SpawnPolicy {
	return &SpawnPolicy{
		chance:    chance,
		laneWidth: laneWidth,
		rng:       rng,
	}
}

// ShouldSpawn rolls once against the spawn chance
func (p *SpawnPolicy) ShouldSpawn() bool {
	if p.chance <= 0 {
		return false
	}
	return p.rng.Float64() < p.chance
}

// Lane picks one of the three lane centres uniformly
func (p *SpawnPolicy) Lane() float64 {
	return float64(p.rng.IntN(3)-1) * p.laneWidth
}

// Chance returns the per-tick spawn probability
func (p *SpawnPolicy) Chance() float64 {
	return p.chance
}
