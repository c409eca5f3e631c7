package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// specialKeysByName indexes tcell key names case-insensitively ("up", "esc", "ctrl-c")
var specialKeysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses key name → action name bindings into a sparse override KeyTable
// Returns error on unknown action names or key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent),
		Runes:       make(map[rune]Intent),
	}

	for keyStr, actionName := range bindings {
		intent, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = intent
			continue
		}

		k, ok := specialKeysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown key name", keyStr)
		}
		kt.SpecialKeys[k] = intent
	}

	return kt, nil
}

func resolveAction(name string) (Intent, error) {
	intent, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q", name)
	}
	return intent, nil
}

func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, true
	}
	return 0, false
}
