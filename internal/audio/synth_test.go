package audio

import (
	"testing"
	"time"

	"github.com/bsgelman/Marble-Madness-Game/internal/config"
	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	"github.com/gopxl/beep"
	"go.uber.org/zap/zaptest"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return 0
}

func TestSynth_EveryCue(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range event.Sounds() {
		st := Synth(s, rate, 0)
		if st == nil {
			t.Errorf("%s has no recipe", s)
			continue
		}
		got := drain(t, st)
		want := rate.N(Duration(s))
		if got < want-len(recipes[s]) || got > want+len(recipes[s]) {
			t.Errorf("%s streamed %d samples, want about %d", s, got, want)
		}
	}
}

func TestSynth_Unknown(t *testing.T) {
	if Synth(event.SoundNone, 8000, 0) != nil {
		t.Error("SoundNone should have no recipe")
	}
}

func TestOscillator_Ends(t *testing.T) {
	osc := newOscillator(440, 10*time.Millisecond, WaveSine, 1000)
	buf := make([][2]float64, 4)
	total := 0
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 10 {
		t.Errorf("streamed %d samples, want 10", total)
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := newEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("n = %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("middle sample = %f, want 1", buf[50][0])
	}
	if buf[99][0] > 0.2 {
		t.Errorf("last sample = %f, want near 0", buf[99][0])
	}
}

func TestPlayer_Disabled(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: false, SampleRate: 8000}, zaptest.NewLogger(t))
	if p.Live() {
		t.Fatal("disabled player is live")
	}
	p.Play(event.SoundPlayerFire)
	p.Close()
}
