package parameter

// Chase camera, behind and above the vehicle looking down the road
const (
	CameraHeight   = 5.0
	CameraDistance = 10.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 75.0

	// CameraNear clips geometry closer than this to the camera plane
	CameraNear = 0.1
)

// Road markings
const (
	// MarkingSpacing is the distance between lane dash starts
	MarkingSpacing = 20.0

	// MarkingLength is the length of one dash
	MarkingLength = 3.0
)

// Road extent
const (
	// RoadLength is how far ahead of the vehicle the road surface reaches
	RoadLength = 1000.0

	// MarkingWidth is the world width of a lane dash
	MarkingWidth = 0.2
)
