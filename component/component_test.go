package component

import (
	"testing"

	"github.com/lixenwraith/lane-racer/physics"
)

var testHandling = Handling{
	LaneWidth:    4,
	MaxSpeed:     100,
	Acceleration: 0.5,
	Deceleration: 0.2,
	SteerStep:    0.05,
}

func TestVehicleSpeedBounds(t *testing.T) {
	var v VehicleComponent

	v.Decelerate(testHandling)
	if v.Speed != 0 {
		t.Errorf("Expected speed 0 after decelerating from rest, got %v", v.Speed)
	}

	for i := 0; i < 500; i++ {
		v.Accelerate(testHandling)
		if v.Speed < 0 || v.Speed > testHandling.MaxSpeed {
			t.Fatalf("Speed %v escaped [0, %v] after %d accelerations", v.Speed, testHandling.MaxSpeed, i+1)
		}
	}
	if v.Speed != testHandling.MaxSpeed {
		t.Errorf("Expected speed pinned at %v, got %v", testHandling.MaxSpeed, v.Speed)
	}

	for i := 0; i < 1000; i++ {
		v.Decelerate(testHandling)
		if v.Speed < 0 {
			t.Fatalf("Speed went negative: %v", v.Speed)
		}
	}
	if v.Speed != 0 {
		t.Errorf("Expected speed back at 0, got %v", v.Speed)
	}
}

func TestVehicleSteerBounds(t *testing.T) {
	tests := []struct {
		name  string
		steer func(*VehicleComponent, Handling)
		want  float64
	}{
		{"Left", (*VehicleComponent).SteerLeft, -4},
		{"Right", (*VehicleComponent).SteerRight, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v VehicleComponent
			for i := 0; i < 200; i++ {
				tt.steer(&v, testHandling)
				if v.Lane < -testHandling.LaneWidth || v.Lane > testHandling.LaneWidth {
					t.Fatalf("Lane %v escaped bounds after %d steps", v.Lane, i+1)
				}
			}
			if v.Lane != tt.want {
				t.Errorf("Expected lane pinned at %v, got %v", tt.want, v.Lane)
			}
		})
	}
}

func TestVehicleAndObstacleBoxes(t *testing.T) {
	v := VehicleComponent{Lane: 0}

	sameLane := ObstacleComponent{ID: 1, Lane: 0, Depth: 0}
	if !physics.Intersects(v.Box(), sameLane.Box()) {
		t.Error("Expected obstacle at vehicle position to intersect")
	}

	otherLane := ObstacleComponent{ID: 2, Lane: 4, Depth: 0}
	if physics.Intersects(v.Box(), otherLane.Box()) {
		t.Error("Expected obstacle in adjacent lane to miss")
	}

	far := ObstacleComponent{ID: 3, Lane: 0, Depth: -500}
	if physics.Intersects(v.Box(), far.Box()) {
		t.Error("Expected far obstacle to miss")
	}
}
