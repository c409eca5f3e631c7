package engine

import (
	"math"
	"testing"
)

func TestSpawnPolicyZeroChanceNeverSpawns(t *testing.T) {
	p := NewSpawnPolicy(0, 4, &fixedSource{floats: []float64{0}})
	for i := 0; i < 100; i++ {
		if p.ShouldSpawn() {
			t.Fatal("Expected zero chance never to spawn")
		}
	}
}

func TestSpawnPolicyRoll(t *testing.T) {
	p := NewSpawnPolicy(0.02, 4, &fixedSource{floats: []float64{0.019, 0.02, 0.5}})

	want := []bool{true, false, false}
	for i, w := range want {
		if got := p.ShouldSpawn(); got != w {
			t.Errorf("Roll %d: ShouldSpawn() = %v, want %v", i, got, w)
		}
	}
}

func TestSpawnPolicyLanes(t *testing.T) {
	p := NewSpawnPolicy(1, 4, &fixedSource{ints: []int{0, 1, 2}})

	want := []float64{-4, 0, 4}
	for i, w := range want {
		if got := p.Lane(); got != w {
			t.Errorf("Lane %d = %v, want %v", i, got, w)
		}
	}
}

func TestSpawnPolicyDistribution(t *testing.T) {
	const rolls = 200000
	p := NewSpawnPolicy(0.02, 4, NewRandomSource(42))

	spawns := 0
	lanes := map[float64]int{}
	for i := 0; i < rolls; i++ {
		if p.ShouldSpawn() {
			spawns++
		}
		lanes[p.Lane()]++
	}

	rate := float64(spawns) / rolls
	if math.Abs(rate-0.02) > 0.003 {
		t.Errorf("Spawn rate %.4f far from 0.02", rate)
	}

	if len(lanes) != 3 {
		t.Fatalf("Expected exactly 3 lane slots, got %v", lanes)
	}
	for lane, n := range lanes {
		share := float64(n) / rolls
		if math.Abs(share-1.0/3) > 0.01 {
			t.Errorf("Lane %v share %.4f not uniform", lane, share)
		}
	}
}

func TestNewRandomSourceDeterministic(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}
