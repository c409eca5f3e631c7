package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/lane-racer/parameter"
)

// TestOscillatorRange verifies every wave stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			osc := NewOscillator(440.0, 50*time.Millisecond, w.wave, rate)

			samples := make([][2]float64, 200)
			n, ok := osc.Stream(samples)
			if !ok || n != 200 {
				t.Fatalf("Expected 200 samples with ok=true, got %d ok=%v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
				}
			}
		})
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expectedSamples*2)
	n, _ := osc.Stream(samples)
	if n != expectedSamples {
		t.Errorf("Expected %d samples, got %d", expectedSamples, n)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 {
		t.Error("Expected second stream to return ok=false after duration exceeded")
	}
	if n2 != 0 {
		t.Errorf("Expected 0 samples after duration, got %d", n2)
	}
}

// TestEnvelopeShape verifies the attack starts silent and the release ends near silence
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, ok := env.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples, got %d ok=%v", len(samples), n, ok)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", mid)
	}
	if last := samples[n-1][0]; last > 0.01 {
		t.Errorf("Expected release to end near silence, got %f", last)
	}
}

// TestStartSoundLength verifies the chime plays both notes and then drains
func TestStartSoundLength(t *testing.T) {
	cfg := parameter.DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := rate.N(parameter.StartSoundNote1Duration) + rate.N(parameter.StartSoundNote2Duration)

	s := CreateStartSound(cfg)
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestCrashSoundAudible verifies the crash effect produces bounded, non-silent output
func TestCrashSoundAudible(t *testing.T) {
	s := GetSoundEffect(SoundCrash, parameter.DefaultAudioConfig())
	if s == nil {
		t.Fatal("Expected crash sound")
	}

	samples := make([][2]float64, 2048)
	n, _ := s.Stream(samples)

	peak := 0.0
	for i := 0; i < n; i++ {
		peak = math.Max(peak, math.Abs(samples[i][0]))
	}
	if peak == 0 {
		t.Error("Expected audible crash sound")
	}
	if peak > 1.0 {
		t.Errorf("Crash sound clips: peak %f", peak)
	}
}

func TestGetSoundEffectUnknown(t *testing.T) {
	if s := GetSoundEffect(SoundType(99), parameter.DefaultAudioConfig()); s != nil {
		t.Error("Expected nil for unknown sound type")
	}
}
