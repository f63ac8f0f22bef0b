package impulse

import (
	"math"
	"testing"

	"github.com/lixenwraith/impulse/vmath"
)

// TestShakeSourceDeterministic verifies equal elapsed times yield equal samples
func TestShakeSourceDeterministic(t *testing.T) {
	s := &ShakeSource{
		Amplitude:         vmath.Vec3F{X: 1, Y: 2, Z: 0.5},
		Frequency:         7,
		Phase:             vmath.Vec3F{Y: 1.1, Z: 2.2},
		RotationAmplitude: vmath.Vec3F{X: 0.05},
	}
	for _, elapsed := range []float64{0, 0.13, 1.7, 42} {
		p1, r1, ok1 := s.Sample(elapsed)
		p2, r2, ok2 := s.Sample(elapsed)
		if !ok1 || !ok2 || p1 != p2 || r1 != r2 {
			t.Errorf("Expected identical samples at t=%f", elapsed)
		}
	}
}

// TestShakeSourceBounds verifies amplitude limits and the duration window
func TestShakeSourceBounds(t *testing.T) {
	s := &ShakeSource{
		Amplitude: vmath.Vec3F{X: 2, Y: 3, Z: 1},
		Frequency: 11,
		Duration:  1,
	}
	for i := 0; i <= 100; i++ {
		pos, _, ok := s.Sample(float64(i) * 0.01)
		if !ok {
			t.Fatalf("Expected signal inside duration at step %d", i)
		}
		if math.Abs(pos.X) > 2 || math.Abs(pos.Y) > 3 || math.Abs(pos.Z) > 1 {
			t.Fatalf("Expected amplitude-bounded sample, got %+v", pos)
		}
	}
	if _, _, ok := s.Sample(-0.1); ok {
		t.Error("Expected no signal before start")
	}
	if _, _, ok := s.Sample(1.5); ok {
		t.Error("Expected no signal past duration")
	}
}

// TestShakeSourceRotationSmallAngle verifies the wobble stays near the
// configured per-axis amplitudes
func TestShakeSourceRotationSmallAngle(t *testing.T) {
	s := &ShakeSource{
		Frequency:         5,
		RotationAmplitude: vmath.Vec3F{X: 0.02, Y: 0.03, Z: 0.01},
	}
	for i := 0; i <= 100; i++ {
		_, rot, _ := s.Sample(float64(i) * 0.01)
		// Generous bound: composed small angles cannot exceed the sum
		if vmath.QAngle(rot) > 0.061 {
			t.Fatalf("Expected small wobble, got angle %f", vmath.QAngle(rot))
		}
	}
}

// TestNoiseSourceDeterministic verifies seed-stable output
func TestNoiseSourceDeterministic(t *testing.T) {
	a := &NoiseSource{Amplitude: vmath.Vec3F{X: 1, Y: 1, Z: 1}, Frequency: 6, Seed: 99}
	b := &NoiseSource{Amplitude: vmath.Vec3F{X: 1, Y: 1, Z: 1}, Frequency: 6, Seed: 99}

	for _, elapsed := range []float64{0, 0.01, 0.5, 3.33, 100} {
		p1, r1, _ := a.Sample(elapsed)
		p2, r2, _ := b.Sample(elapsed)
		if p1 != p2 || r1 != r2 {
			t.Errorf("Expected seed-identical samples at t=%f", elapsed)
		}
	}
}

// TestNoiseSourceSeedVariation verifies different seeds diverge
func TestNoiseSourceSeedVariation(t *testing.T) {
	a := &NoiseSource{Amplitude: vmath.Vec3F{X: 1}, Frequency: 6, Seed: 1}
	b := &NoiseSource{Amplitude: vmath.Vec3F{X: 1}, Frequency: 6, Seed: 2}

	same := 0
	for i := 0; i < 20; i++ {
		p1, _, _ := a.Sample(float64(i) * 0.1)
		p2, _, _ := b.Sample(float64(i) * 0.1)
		if p1 == p2 {
			same++
		}
	}
	if same == 20 {
		t.Error("Expected different seeds to produce different signals")
	}
}

// TestNoiseSourceBounds verifies amplitude limits and smooth continuity
func TestNoiseSourceBounds(t *testing.T) {
	s := &NoiseSource{Amplitude: vmath.Vec3F{X: 2}, Frequency: 10, Seed: 7}

	prev, _, _ := s.Sample(0)
	for i := 1; i <= 1000; i++ {
		pos, _, ok := s.Sample(float64(i) * 0.001)
		if !ok {
			t.Fatal("Expected noise to always have signal at t >= 0")
		}
		if math.Abs(pos.X) > 2 {
			t.Fatalf("Expected amplitude-bounded noise, got %f", pos.X)
		}
		// 1 ms steps at 10 keys/s: adjacent samples stay close
		if math.Abs(pos.X-prev.X) > 0.3 {
			t.Fatalf("Expected smooth noise, jumped %f at step %d", pos.X-prev.X, i)
		}
		prev = pos
	}
}

// TestConstantSource verifies fixed output and the zero-rotation guard
func TestConstantSource(t *testing.T) {
	s := &ConstantSource{Position: vmath.Vec3F{X: 1, Z: -2}}

	pos, rot, ok := s.Sample(10)
	if !ok || pos != (vmath.Vec3F{X: 1, Z: -2}) {
		t.Errorf("Expected fixed position, got %+v ok=%v", pos, ok)
	}
	if rot != vmath.QIdentity() {
		t.Errorf("Expected identity for unset rotation, got %+v", rot)
	}
	if _, _, ok := s.Sample(-1); ok {
		t.Error("Expected no signal before start")
	}
}
