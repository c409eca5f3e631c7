package parameter

// Entity extents, in world units (width on X, height on Y, depth on Z)
const (
	// VehicleWidth covers the 2-unit body plus the wheel hubs on each side
	VehicleWidth  = 2.4
	VehicleHeight = 1.0
	VehicleLength = 4.0

	ObstacleWidth  = 2.0
	ObstacleHeight = 1.0
	ObstacleLength = 2.0

	// GroundOffset is the Y of every entity centre, resting on the road plane
	GroundOffset = 0.5
)
