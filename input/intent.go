package input

// Intent is the semantic action a key press maps to
type Intent uint8

const (
	IntentNone Intent = iota

	// Vehicle control
	IntentAccelerate
	IntentAccelerateRelease // synthesized, terminals report no key-up
	IntentSteerLeft
	IntentSteerRight

	// Session control
	IntentRestart
	IntentPause
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:              "none",
	IntentAccelerate:        "accelerate",
	IntentAccelerateRelease: "accelerate_release",
	IntentSteerLeft:         "steer_left",
	IntentSteerRight:        "steer_right",
	IntentRestart:           "restart",
	IntentPause:             "pause",
	IntentQuit:              "quit",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
