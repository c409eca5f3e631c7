package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/lane-racer/parameter"
	"github.com/lixenwraith/lane-racer/vmath"
)

// EngineHum is an endless low drone whose pitch is set from outside the audio
// goroutine. Phase stays continuous across pitch changes so there are no clicks
type EngineHum struct {
	rate  beep.SampleRate
	freq  atomic.Uint64 // math.Float64bits of the current pitch
	phase float64
}

// NewEngineHum creates a hum at the idle pitch
func NewEngineHum(rate beep.SampleRate) *EngineHum {
	h := &EngineHum{rate: rate}
	h.SetFrequency(parameter.EngineHumIdleFreq)
	return h
}

// SetFrequency changes the pitch; safe to call while streaming
func (h *EngineHum) SetFrequency(freq float64) {
	h.freq.Store(math.Float64bits(freq))
}

// Frequency returns the current pitch
func (h *EngineHum) Frequency() float64 {
	return math.Float64frombits(h.freq.Load())
}

func (h *EngineHum) Stream(samples [][2]float64) (n int, ok bool) {
	step := h.Frequency() / float64(h.rate)
	for i := range samples {
		// Sine with a saw overtone for a rough motor timbre
		val := 0.7*waveSample(WaveSine, h.phase) + 0.3*waveSample(WaveSaw, h.phase)
		samples[i][0] = val
		samples[i][1] = val

		h.phase += step
		h.phase -= math.Floor(h.phase)
	}
	return len(samples), true
}

func (h *EngineHum) Err() error { return nil }

// HumFrequency maps vehicle speed onto the hum's pitch range
func HumFrequency(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return parameter.EngineHumIdleFreq
	}
	t := vmath.Clamp(speed/maxSpeed, 0, 1)
	return vmath.Lerp(parameter.EngineHumIdleFreq, parameter.EngineHumMaxFreq, t)
}
