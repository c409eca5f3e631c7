package input

// actionRegistry maps canonical action names to intents
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"accelerate":  IntentAccelerate,
	"steer_left":  IntentSteerLeft,
	"steer_right": IntentSteerRight,
	"restart":     IntentRestart,
	"pause":       IntentPause,
	"quit":        IntentQuit,
}
