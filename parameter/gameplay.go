package parameter

// Road geometry
const (
	// LaneWidth is the lateral distance between adjacent lane centres
	// Also the steering bound: the vehicle stays within [-LaneWidth, +LaneWidth]
	LaneWidth = 4.0

	// LaneCount is the number of lanes on the road
	LaneCount = 3
)

// Vehicle handling
const (
	MaxSpeed     = 100.0
	Acceleration = 0.5
	Deceleration = 0.2

	// SteerStep is the lateral shift per steer input
	SteerStep = 0.05
)

// Obstacle lifecycle
const (
	// SpawnChance is the independent per-tick probability of spawning an obstacle
	SpawnChance = 0.02

	// SpawnDepth is where new obstacles appear, far ahead of the vehicle
	SpawnDepth = -500.0

	// PassedDepth is the depth past which an obstacle is behind the viewer and culled
	PassedDepth = 20.0

	// AdvanceFactor scales speed into per-tick depth movement
	AdvanceFactor = 0.1
)
