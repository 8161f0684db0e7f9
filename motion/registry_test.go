package motion

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestRegistryPrioritiesDescending(t *testing.T) {
	r := NewRegistry()
	for _, p := range []int{0, 7, -3, 7, 2, math.MinInt, math.MaxInt} {
		r.Add(Constant(Vec3(1, 0, 0), 1), 0, 1, p)
	}
	got := slices.Collect(r.PrioritiesDescending())
	want := []int{math.MaxInt, 7, 2, 0, -3, math.MinInt}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if r.Len() != 7 {
		t.Fatalf("expected 7 instances, got %d", r.Len())
	}
}

func TestRegistryPrunesEmptyBuckets(t *testing.T) {
	r := NewRegistry()
	h := r.Add(Constant(Vec3(1, 0, 0), 1), 0, 1, 3)
	r.Add(Constant(Vec3(1, 0, 0), 1), 0, 5, 1)

	if !r.Remove(h) {
		t.Fatalf("expected Remove to succeed")
	}
	got := slices.Collect(r.PrioritiesDescending())
	if !slices.Equal(got, []int{1}) {
		t.Fatalf("expected only priority 1 left, got %v", got)
	}

	if n := Sweep(r, 10); n != 1 {
		t.Fatalf("expected one expired instance, got %d", n)
	}
	if got := slices.Collect(r.PrioritiesDescending()); len(got) != 0 {
		t.Fatalf("expected no priorities, got %v", got)
	}
}

func TestRegistryRemoveExpiredKeepsOrder(t *testing.T) {
	r := NewRegistry()
	durations := []float64{1, 5, 1, 5, 5}
	handles := make([]Handle, len(durations))
	for i, d := range durations {
		handles[i] = r.Add(Constant(Vec3(1, 0, 0), float64(i)), 0, d, 0)
	}

	removed := r.removeExpiredAt(0, func(in *instance) bool { return in.expired(2) })
	if len(removed) != 2 {
		t.Fatalf("expected 2 removed, got %d", len(removed))
	}
	if removed[0].Speed(0) != 0 || removed[1].Speed(0) != 2 {
		t.Fatalf("expected removed directives in registration order")
	}

	var kept []Handle
	for _, in := range r.bucket(0) {
		kept = append(kept, in.handle)
	}
	want := []Handle{handles[1], handles[3], handles[4]}
	if !slices.Equal(kept, want) {
		t.Fatalf("expected kept %v, got %v", want, kept)
	}
}

func TestRegistryHandlesAreUnique(t *testing.T) {
	r := NewRegistry()
	seen := make(map[Handle]bool)
	for i := 0; i < 50; i++ {
		h := r.Add(Directive{}, 0, 1, i%3)
		if h == 0 || seen[h] {
			t.Fatalf("handle %d reused or zero", h)
		}
		seen[h] = true
	}
	r.Clear()
	if r.Len() != 0 || r.Contains(1) {
		t.Fatalf("expected Clear to empty the registry")
	}
	if h := r.Add(Directive{}, 0, 1, 0); seen[h] {
		t.Fatalf("handle %d reused after Clear", h)
	}
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	if h := r.Add(Directive{}, 0, 1, 0); h != 0 {
		t.Fatalf("expected zero handle from nil registry, got %d", h)
	}
	if r.Len() != 0 || r.Contains(0) || r.Remove(0) {
		t.Fatalf("nil registry should hold nothing")
	}
	if n := Sweep(r, 1); n != 0 {
		t.Fatalf("expected nothing swept, got %d", n)
	}
}

func TestInstanceProgress(t *testing.T) {
	cases := []struct {
		name     string
		start    float64
		duration float64
		now      float64
		want     float64
	}{
		{"start", 1, 2, 1, 0},
		{"half", 1, 2, 2, 0.5},
		{"end", 1, 2, 3, 1},
		{"past", 1, 2, 9, 1},
		{"before_start", 1, 2, 0, 0},
		{"zero_duration", 1, 0, 1, 1},
		{"negative_duration", 1, -3, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := &instance{start: c.start, duration: c.duration}
			if got := in.progress(c.now); math.Abs(got-c.want) > eps {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestComposeEmptyRegistry(t *testing.T) {
	v := Vec3(1, 2, 3)
	assertVector(t, Compose(Spatial, v, NewRegistry(), 0), v)
	assertVector(t, Compose(Spatial, v, nil, 0), v)
	assertVector(t, Compose(Planar, v, NewRegistry(), 0), Vec2(1, 2))
}

func TestDirectiveOnCompleteCopies(t *testing.T) {
	var calls []string
	base := Constant(Vec3(1, 0, 0), 1).OnComplete(func() { calls = append(calls, "base") })
	a := base.OnComplete(func() { calls = append(calls, "a") })
	b := base.OnComplete(func() { calls = append(calls, "b") })

	a.fire()
	b.fire()
	base.fire()
	want := []string{"base", "a", "base", "b", "base"}
	if !slices.Equal(calls, want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
}

func TestDirectiveDefaults(t *testing.T) {
	d := Constant(Vec3(0, 2, 0), 3)
	if d.Blend() != MaximumMagnitude {
		t.Fatalf("expected default blend maximum, got %s", d.Blend())
	}
	if d.Channels() != ChannelsXYZ {
		t.Fatalf("expected default channels XYZ, got %s", d.Channels())
	}
	assertVector(t, d.Movement(0.3), Vec3(0, 3, 0))

	v := Toward(Vec3(3, 4, 0))
	if math.Abs(v.Speed(0.9)-5) > eps {
		t.Fatalf("expected speed 5, got %v", v.Speed(0.9))
	}
	assertVector(t, v.Movement(0), Vec3(3, 4, 0))

	if NewDirective(Vec3(1, 0, 0), nil).Speed(0.5) != 0 {
		t.Fatalf("nil curve should yield zero speed")
	}
}

func TestCurves(t *testing.T) {
	outQuad, ok := EaseByName("OUT_QUAD")
	if !ok {
		t.Fatalf("expected out_quad easing")
	}
	cases := []struct {
		name  string
		curve SpeedCurve
		t     float64
		want  float64
	}{
		{"constant", ConstantSpeed(4), 0.7, 4},
		{"linear_mid", Linear(2, 6), 0.5, 4},
		{"linear_clamped", Linear(2, 6), 3, 6},
		{"linear_reverse", Linear(10, 0), 0.25, 7.5},
		{"out_quad_mid", Eased(0, 8, outQuad), 0.5, 6},
		{"nil_ease_is_linear", Eased(0, 8, nil), 0.25, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.curve(c.t); math.Abs(got-c.want) > 1e-5 {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	if _, ok := EaseByName("wobble"); ok {
		t.Fatalf("unknown easing should not resolve")
	}
	if names := EaseNames(); !slices.IsSorted(names) || !slices.Contains(names, "linear") {
		t.Fatalf("unexpected easing names %v", names)
	}
}

func TestParseChannelMask(t *testing.T) {
	cases := []struct {
		in      string
		want    ChannelMask
		wantErr bool
	}{
		{"", ChannelsXYZ, false},
		{"x", ChannelX, false},
		{"YZ", ChannelsYZ, false},
		{" zx ", ChannelsXZ, false},
		{"xyz", ChannelsXYZ, false},
		{"w", 0, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseChannelMask(c.in)
			if c.wantErr {
				if !errors.Is(err, ErrInvalidChannelMask) {
					t.Fatalf("expected ErrInvalidChannelMask, got %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("expected %s, got %s err=%v", c.want, got, err)
			}
		})
	}

	if ChannelsXZ.String() != "XZ" || ChannelMask(0).String() != "none" {
		t.Fatalf("unexpected mask strings")
	}
	if ChannelX.Complement() != ChannelsYZ {
		t.Fatalf("expected complement of X to be YZ")
	}
}

func TestParseBlendMode(t *testing.T) {
	cases := []struct {
		in   string
		want BlendMode
	}{
		{"", MaximumMagnitude},
		{"additive", Additive},
		{"Overwrite", Overwrite},
		{"max", MaximumMagnitude},
	}
	for _, c := range cases {
		got, err := ParseBlendMode(c.in)
		if err != nil || got != c.want {
			t.Fatalf("%q: expected %s, got %s err=%v", c.in, c.want, got, err)
		}
		if back, err := ParseBlendMode(got.String()); err != nil || back != got {
			t.Fatalf("%s did not survive String/Parse", got)
		}
	}
	if _, err := ParseBlendMode("lerp"); !errors.Is(err, ErrInvalidBlendMode) {
		t.Fatalf("expected ErrInvalidBlendMode, got %v", err)
	}
}
