package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Press is a single key press, decoupled from tcell's event type
type Press struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// FromEvent extracts a Press from a tcell key event
func FromEvent(ev *tcell.EventKey) Press {
	return Press{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable keys
	Runes map[rune]Intent
}

// DefaultKeyTable returns arrow, WASD and vi bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentAccelerate,
			tcell.KeyLeft:   IntentSteerLeft,
			tcell.KeyRight:  IntentSteerRight,
			tcell.KeyEnter:  IntentRestart,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'w': IntentAccelerate,
			'k': IntentAccelerate,
			'a': IntentSteerLeft,
			'h': IntentSteerLeft,
			'd': IntentSteerRight,
			'l': IntentSteerRight,
			'r': IntentRestart,
			'p': IntentPause,
			'q': IntentQuit,
		},
	}
}

// Lookup returns the intent bound to p, IntentNone if unbound
func (kt *KeyTable) Lookup(p Press) Intent {
	if p.Key == tcell.KeyRune {
		return kt.Runes[p.Rune]
	}
	return kt.SpecialKeys[p.Key]
}

// Merge applies overrides on top of kt; binding "none" removes a key
func (kt *KeyTable) Merge(over *KeyTable) {
	if over == nil {
		return
	}
	for k, intent := range over.SpecialKeys {
		if intent == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = intent
	}
	for r, intent := range over.Runes {
		if intent == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = intent
	}
}

// KeyName returns a display name for one key bound to intent
// Printable keys win over special keys; ties resolve to the lowest key so the
// name is stable across map iteration
func (kt *KeyTable) KeyName(intent Intent) (string, bool) {
	var (
		bestRune rune
		haveRune bool
	)
	for r, in := range kt.Runes {
		if in == intent && (!haveRune || r < bestRune) {
			bestRune, haveRune = r, true
		}
	}
	if haveRune {
		for alias, r := range runeAliases {
			if r == bestRune {
				return alias, true
			}
		}
		return string(bestRune), true
	}

	var (
		bestKey tcell.Key
		haveKey bool
	)
	for k, in := range kt.SpecialKeys {
		if in == intent && (!haveKey || k < bestKey) {
			bestKey, haveKey = k, true
		}
	}
	if !haveKey {
		return "", false
	}
	if name, ok := tcell.KeyNames[bestKey]; ok {
		return name, true
	}
	return fmt.Sprintf("key %d", bestKey), true
}
