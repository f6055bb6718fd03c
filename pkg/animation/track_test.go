package animation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func translationOf(m mgl64.Mat4) core.Vec3 {
	return core.NewVec3(m.At(0, 3), m.At(1, 3), m.At(2, 3))
}

func slidingTrack(t *testing.T, mode Interpolation) *Track {
	t.Helper()
	one := core.NewVec3(1, 1, 1)
	track, err := NewTrack("slide", 4, mode,
		NewKeyframe(core.NewVec3(0, 0, 0), core.Vec3{}, one),
		NewKeyframe(core.NewVec3(4, 0, 0), core.Vec3{}, one),
		NewKeyframe(core.NewVec3(4, 4, 0), core.Vec3{}, one),
		NewKeyframe(core.NewVec3(0, 4, 0), core.Vec3{}, one),
	)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}
	return track
}

func TestTrack_Interpolation(t *testing.T) {
	tests := []struct {
		mode     Interpolation
		time     float64
		expected core.Vec3
	}{
		{Nearest, 0.4, core.NewVec3(0, 0, 0)},
		{Nearest, 0.6, core.NewVec3(4, 0, 0)},
		{Linear, 0.5, core.NewVec3(2, 0, 0)},
		{Linear, 1.25, core.NewVec3(4, 1, 0)},
		{Linear, 3.5, core.NewVec3(0, 2, 0)}, // last frame blends back into the first
		{Linear, 4.5, core.NewVec3(2, 0, 0)}, // wraps by duration
		{Linear, -0.5, core.NewVec3(0, 2, 0)},
		{CatmullRom, 1, core.NewVec3(4, 0, 0)}, // passes through keyframes
		{CatmullRom, 0.5, core.NewVec3(2, -0.5, 0)},
		{BSpline, 0, core.NewVec3(2.0/3, 2.0/3, 0)}, // approximates keyframes
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			track := slidingTrack(t, tt.mode)
			track.SetTime(tt.time)
			got := translationOf(track.Matrix())
			if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 || math.Abs(got.Z-tt.expected.Z) > 1e-9 {
				t.Errorf("At %f: expected %v, got %v", tt.time, tt.expected, got)
			}
		})
	}
}

func TestTrack_WeightsSumToOne(t *testing.T) {
	for _, mode := range []Interpolation{Nearest, Linear, CatmullRom, BSpline} {
		for u := 0.0; u < 1; u += 0.037 {
			_, w := mode.weights(5, u)
			if sum := w[0] + w[1] + w[2] + w[3]; math.Abs(sum-1) > 1e-12 {
				t.Errorf("%v at %f: weights sum to %f", mode, u, sum)
			}
		}
	}
}

func TestTrack_RotationSlerp(t *testing.T) {
	one := core.NewVec3(1, 1, 1)
	track, err := NewTrack("spin", 2, Linear,
		NewKeyframe(core.Vec3{}, core.Vec3{}, one),
		NewKeyframe(core.Vec3{}, core.NewVec3(0, 0, math.Pi/2), one),
	)
	if err != nil {
		t.Fatalf("NewTrack failed: %v", err)
	}

	// Halfway to the second frame is a 45 degree turn about z
	track.SetTime(0.5)
	got := core.NewAffine(track.Matrix()).TransformPoint(core.NewVec3(1, 0, 0))
	expected := core.NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0)
	if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestNewTrack_Invalid(t *testing.T) {
	if _, err := NewTrack("empty", 1, Linear); err == nil {
		t.Error("Expected error for a track without keyframes")
	}
	if _, err := NewTrack("still", 0, Linear, NewKeyframe(core.Vec3{}, core.Vec3{}, core.NewVec3(1, 1, 1))); err == nil {
		t.Error("Expected error for zero duration")
	}
}

func TestParseInterpolation(t *testing.T) {
	for _, mode := range []Interpolation{Nearest, Linear, CatmullRom, BSpline} {
		parsed, err := ParseInterpolation(mode.String())
		if err != nil || parsed != mode {
			t.Errorf("ParseInterpolation(%q) = %v, %v", mode.String(), parsed, err)
		}
	}
	if _, err := ParseInterpolation("cubic"); err == nil {
		t.Error("Expected error for unknown interpolation")
	}
}
