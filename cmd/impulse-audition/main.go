// impulse-audition renders impulse envelopes to audio so their attack and
// decay can be tuned by ear: each preset's gain curve is sampled into a
// coefficient block, applied to a carrier tone, and played back.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/impulse"
	"github.com/lixenwraith/impulse/vmath"
)

// ==========================================
// TUNING VARIABLES - PLAY WITH THESE
// ==========================================

var (
	CarrierFreq      = 220.0 // Hz
	ListenerDistance = 5.0   // world units from the event origin
	AuditionSeconds  = 2.0   // per preset, covers the longest decay tail
)

const sampleRate = beep.SampleRate(48000)

// bufferStreamer plays a mono float buffer once on both channels
type bufferStreamer struct {
	buf []float64
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

// renderEvent samples the event's perceived gain over the audition window
// and applies it to a carrier tone
func renderEvent(e *impulse.Event, listener vmath.Vec3F) []float64 {
	total := int(AuditionSeconds * float64(sampleRate))
	carrier := make([]float64, total)
	gains := make([]float64, total)

	phase := 0.0
	phaseInc := CarrierFreq / float64(sampleRate)
	for i := 0; i < total; i++ {
		carrier[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}

		elapsed := float64(i) / float64(sampleRate)
		gains[i] = e.Envelope.GetValueAt(elapsed) * e.DistanceDecay(vmath.V3FDist(listener, e.Position))
	}

	vecmath.MulBlockInPlace(carrier, gains)
	return carrier
}

func play(buf []float64) {
	done := make(chan struct{})
	speaker.Play(beep.Seq(&bufferStreamer{buf: buf}, beep.Callback(func() {
		close(done)
	})))
	<-done
}

func main() {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		fmt.Fprintln(os.Stderr, "speaker:", err)
		os.Exit(1)
	}

	listener := vmath.Vec3F{X: ListenerDistance}

	presets := []struct {
		name      string
		configure func(*impulse.Event)
	}{
		{"explosion", func(e *impulse.Event) { impulse.PresetExplosion(e, vmath.Vec3F{}, 1) }},
		{"bump", func(e *impulse.Event) {
			impulse.PresetBump(e, vmath.Vec3F{}, vmath.Vec3F{Y: -1})
			e.Radius = 10
		}},
		{"recoil", func(e *impulse.Event) { impulse.PresetRecoil(e, vmath.Vec3F{X: 1}) }},
	}

	for _, p := range presets {
		var e impulse.Event
		e.Clear()
		p.configure(&e)

		fmt.Printf("%-10s attack=%.2fs hold=%.2fs decay=%.2fs %s falloff\n",
			p.name, e.Envelope.AttackTime, e.Envelope.HoldTime, e.Envelope.DecayTime,
			e.DissipationMode)
		play(renderEvent(&e, listener))
		time.Sleep(300 * time.Millisecond)
	}
}
