package input

import "time"

// Mapper turns key presses into intents and synthesizes accelerator release
// A held key arrives as a stream of auto-repeated presses; once no accelerate
// press has been seen for releaseDelay, Expire reports a single release
type Mapper struct {
	table        *KeyTable
	releaseDelay time.Duration

	accelHeld bool
	lastAccel time.Time
}

func NewMapper(table *KeyTable, releaseDelay time.Duration) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{
		table:        table,
		releaseDelay: releaseDelay,
	}
}

// Press resolves p at time now
func (m *Mapper) Press(p Press, now time.Time) Intent {
	intent := m.table.Lookup(p)
	if intent == IntentAccelerate {
		m.accelHeld = true
		m.lastAccel = now
	}
	return intent
}

// Expire reports IntentAccelerateRelease once the accelerator has been quiet for releaseDelay
func (m *Mapper) Expire(now time.Time) (Intent, bool) {
	if !m.accelHeld {
		return IntentNone, false
	}
	if now.Sub(m.lastAccel) < m.releaseDelay {
		return IntentNone, false
	}
	m.accelHeld = false
	return IntentAccelerateRelease, true
}

// Reset forgets any held accelerator
func (m *Mapper) Reset() {
	m.accelHeld = false
	m.lastAccel = time.Time{}
}
