package input

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name  string
		press Press
		want  Intent
	}{
		{"ArrowUp", Press{Key: tcell.KeyUp}, IntentAccelerate},
		{"ArrowLeft", Press{Key: tcell.KeyLeft}, IntentSteerLeft},
		{"ArrowRight", Press{Key: tcell.KeyRight}, IntentSteerRight},
		{"Enter", Press{Key: tcell.KeyEnter}, IntentRestart},
		{"Escape", Press{Key: tcell.KeyEscape}, IntentQuit},
		{"CtrlC", Press{Key: tcell.KeyCtrlC}, IntentQuit},
		{"W", Press{Key: tcell.KeyRune, Rune: 'w'}, IntentAccelerate},
		{"ViH", Press{Key: tcell.KeyRune, Rune: 'h'}, IntentSteerLeft},
		{"ViL", Press{Key: tcell.KeyRune, Rune: 'l'}, IntentSteerRight},
		{"Restart", Press{Key: tcell.KeyRune, Rune: 'r'}, IntentRestart},
		{"Pause", Press{Key: tcell.KeyRune, Rune: 'p'}, IntentPause},
		{"Unbound", Press{Key: tcell.KeyRune, Rune: 'z'}, IntentNone},
		{"UnboundSpecial", Press{Key: tcell.KeyF5}, IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.press); got != tt.want {
				t.Errorf("Lookup(%+v) = %v, want %v", tt.press, got, tt.want)
			}
		})
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig(map[string]string{
		"up":    "none",
		"space": "accelerate",
		"j":     "steer_left",
		"Esc":   "pause",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	if got := kt.Runes[' ']; got != IntentAccelerate {
		t.Errorf("space = %v, want accelerate", got)
	}
	if got := kt.Runes['j']; got != IntentSteerLeft {
		t.Errorf("j = %v, want steer_left", got)
	}
	if got := kt.SpecialKeys[tcell.KeyEscape]; got != IntentPause {
		t.Errorf("Esc = %v, want pause", got)
	}
	if got, ok := kt.SpecialKeys[tcell.KeyUp]; !ok || got != IntentNone {
		t.Errorf("up = %v (present %v), want none sentinel", got, ok)
	}

	base := DefaultKeyTable()
	base.Merge(kt)

	if got := base.Lookup(Press{Key: tcell.KeyUp}); got != IntentNone {
		t.Errorf("Expected up unbound after merge, got %v", got)
	}
	if got := base.Lookup(Press{Key: tcell.KeyRune, Rune: ' '}); got != IntentAccelerate {
		t.Errorf("Expected space to accelerate after merge, got %v", got)
	}
	if got := base.Lookup(Press{Key: tcell.KeyRune, Rune: 'w'}); got != IntentAccelerate {
		t.Errorf("Expected untouched default w to survive merge, got %v", got)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		wantErr  string
	}{
		{"UnknownAction", map[string]string{"x": "jump"}, "unknown action"},
		{"UnknownKey", map[string]string{"hyperspace": "quit"}, "unknown key name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig(tt.bindings)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMapperReleaseSynthesis(t *testing.T) {
	m := NewMapper(nil, 300*time.Millisecond)
	start := time.Unix(1000, 0)

	if _, ok := m.Expire(start); ok {
		t.Fatal("Expected no release before any accelerate press")
	}

	up := Press{Key: tcell.KeyUp}
	if got := m.Press(up, start); got != IntentAccelerate {
		t.Fatalf("Press(up) = %v, want accelerate", got)
	}

	// Auto-repeat keeps the key held
	m.Press(up, start.Add(200*time.Millisecond))
	if _, ok := m.Expire(start.Add(400 * time.Millisecond)); ok {
		t.Error("Expected no release while repeats keep arriving")
	}

	intent, ok := m.Expire(start.Add(500 * time.Millisecond))
	if !ok || intent != IntentAccelerateRelease {
		t.Fatalf("Expected release after quiet period, got %v %v", intent, ok)
	}

	if _, ok := m.Expire(start.Add(time.Second)); ok {
		t.Error("Expected release to be reported only once")
	}
}

func TestMapperOtherKeysDoNotHold(t *testing.T) {
	m := NewMapper(nil, 100*time.Millisecond)
	now := time.Unix(0, 0)

	m.Press(Press{Key: tcell.KeyLeft}, now)
	if _, ok := m.Expire(now.Add(time.Second)); ok {
		t.Error("Expected steering press not to trigger a release")
	}

	m.Press(Press{Key: tcell.KeyUp}, now)
	m.Reset()
	if _, ok := m.Expire(now.Add(time.Second)); ok {
		t.Error("Expected Reset to drop the held accelerator")
	}
}

func TestIntentString(t *testing.T) {
	if got := IntentSteerRight.String(); got != "steer_right" {
		t.Errorf("IntentSteerRight.String() = %q", got)
	}
	if got := Intent(200).String(); got != "unknown" {
		t.Errorf("Intent(200).String() = %q", got)
	}
}

func TestKeyTableKeyName(t *testing.T) {
	kt := DefaultKeyTable()
	over, err := LoadKeyConfig(map[string]string{
		"r":     "none",
		"space": "pause",
		"p":     "none",
		"q":     "none",
		"esc":   "none",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}
	kt.Merge(over)

	tests := []struct {
		intent Intent
		want   string
		ok     bool
	}{
		{IntentAccelerate, "k", true}, // lowest of k, w
		{IntentRestart, "Enter", true},
		{IntentPause, "space", true},
		{IntentQuit, "Ctrl-C", true},
		{IntentNone, "", false},
	}
	for _, tt := range tests {
		got, ok := kt.KeyName(tt.intent)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeyName(%v) = %q, %v; want %q, %v", tt.intent, got, ok, tt.want, tt.ok)
		}
	}

	empty := &KeyTable{}
	if _, ok := empty.KeyName(IntentQuit); ok {
		t.Error("Expected no name from an empty table")
	}
}
