package particle

import (
	"math"
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestParseRange_FixedValue tests parsing of fixed value format
func TestParseRange_FixedValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"Integer", "1500", 1500},
		{"Float", "3.14", 3.14},
		{"Negative", "-10.5", -10.5},
		{"Zero", "0", 0},
		{"Bracketed single", "[3]", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.input, err)
			}
			if r.Min != tt.want || r.Max != tt.want {
				t.Errorf("ParseRange(%q) = %v, want fixed %v", tt.input, r, tt.want)
			}
			if !r.IsFixed() {
				t.Errorf("ParseRange(%q) should be fixed", tt.input)
			}
		})
	}
}

// TestParseRange_Range tests parsing of range format
func TestParseRange_Range(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Float range", "[0.7 0.9]", 0.7, 0.9},
		{"Integer range", "[10 20]", 10, 20},
		{"Negative range", "[-5 -2]", -5, -2},
		{"Padded", "  [-1   1] ", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if err != nil {
				t.Fatalf("ParseRange(%q) error: %v", tt.input, err)
			}
			if r.Min != tt.wantMin || r.Max != tt.wantMax {
				t.Errorf("ParseRange(%q) = [%v %v], want [%v %v]", tt.input, r.Min, r.Max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "[1 2", "[1 2 3]", "[a b]"} {
		if _, err := ParseRange(input); err == nil {
			t.Errorf("ParseRange(%q) should fail", input)
		}
	}
}

func TestRange_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Scalar   Range `yaml:"scalar"`
		Bracket  Range `yaml:"bracket"`
		Sequence Range `yaml:"sequence"`
	}
	src := "scalar: 4.5\nbracket: \"[-1 1]\"\nsequence: [0, 1]\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.Scalar != Fixed(4.5) {
		t.Errorf("scalar = %v, want 4.5", doc.Scalar)
	}
	if doc.Bracket != (Range{Min: -1, Max: 1}) {
		t.Errorf("bracket = %v, want [-1 1]", doc.Bracket)
	}
	if doc.Sequence != (Range{Min: 0, Max: 1}) {
		t.Errorf("sequence = %v, want [0 1]", doc.Sequence)
	}
}

func TestRange_UnmarshalYAML_Error(t *testing.T) {
	var doc struct {
		R Range `yaml:"r"`
	}
	if err := yaml.Unmarshal([]byte("r: [1, 2, 3]\n"), &doc); err == nil {
		t.Error("three-element sequence should be rejected")
	}
	if err := yaml.Unmarshal([]byte("r: nope\n"), &doc); err == nil {
		t.Error("non-numeric scalar should be rejected")
	}
}

func TestRange_String(t *testing.T) {
	if s := Fixed(2).String(); s != "2" {
		t.Errorf("Fixed(2).String() = %q, want \"2\"", s)
	}
	if s := (Range{Min: -1, Max: 0.5}).String(); s != "[-1 0.5]" {
		t.Errorf("String() = %q, want \"[-1 0.5]\"", s)
	}
}

func TestRange_SampleWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Range{Min: -1, Max: 1}
	for i := 0; i < 1000; i++ {
		v := r.Sample(rng)
		if v < -1 || v >= 1 {
			t.Fatalf("sample %v out of [-1, 1)", v)
		}
	}
	if v := Fixed(7).Sample(rng); v != 7 {
		t.Errorf("fixed sample = %v, want 7", v)
	}
}

// TestEvaluateKeyframes_Linear tests linear interpolation
func TestEvaluateKeyframes_Linear(t *testing.T) {
	keyframes := []Keyframe{
		{Time: 0, Value: 1},
		{Time: 1, Value: 0},
	}

	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
		{-1, 1}, // clamped
		{2, 0},  // clamped
	}

	for _, tt := range tests {
		got := EvaluateKeyframes(keyframes, tt.t, InterpLinear)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EvaluateKeyframes(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEvaluateKeyframes_Modes(t *testing.T) {
	keyframes := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 1}}

	if got := EvaluateKeyframes(keyframes, 0.5, InterpEaseIn); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("EaseIn(0.5) = %v, want 0.25", got)
	}
	if got := EvaluateKeyframes(keyframes, 0.5, InterpEaseOut); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("EaseOut(0.5) = %v, want 0.75", got)
	}
	if got := EvaluateKeyframes(keyframes, 0.5, InterpSmooth); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("FastInOutWeak(0.5) = %v, want 0.5", got)
	}
	if got := EvaluateKeyframes(keyframes, 0.5, "Unknown"); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("unknown mode should be linear, got %v", got)
	}
}

func TestEvaluateKeyframes_Edges(t *testing.T) {
	if got := EvaluateKeyframes(nil, 0.5, ""); got != 0 {
		t.Errorf("empty keyframes = %v, want 0", got)
	}
	if got := EvaluateKeyframes([]Keyframe{{Time: 0.3, Value: 9}}, 0.9, ""); got != 9 {
		t.Errorf("single keyframe = %v, want 9", got)
	}
	late := []Keyframe{{Time: 0.5, Value: 2}, {Time: 1, Value: 4}}
	if got := EvaluateKeyframes(late, 0.1, ""); got != 2 {
		t.Errorf("before first keyframe = %v, want 2", got)
	}
}

func TestRandomInDisc_StaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		x, y := RandomInDisc(rng, 4.5)
		if math.Hypot(x, y) > 4.5+1e-9 {
			t.Fatalf("point (%v, %v) outside radius 4.5", x, y)
		}
	}
	if x, y := RandomInDisc(rng, 0); x != 0 || y != 0 {
		t.Errorf("zero radius should return origin, got (%v, %v)", x, y)
	}
}

func TestVelocity_Sample(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	box := Box(Range{Min: -1, Max: 1}, Range{Min: 2, Max: 3})
	for i := 0; i < 500; i++ {
		vx, vy := box.Sample(rng)
		if vx < -1 || vx >= 1 || vy < 2 || vy >= 3 {
			t.Fatalf("box sample (%v, %v) out of bounds", vx, vy)
		}
	}

	disc := Disc(10)
	for i := 0; i < 500; i++ {
		vx, vy := disc.Sample(rng)
		if math.Hypot(vx, vy) > 10+1e-9 {
			t.Fatalf("disc sample (%v, %v) outside radius", vx, vy)
		}
	}
}

func TestVelocity_Validate(t *testing.T) {
	if err := Disc(4.5).Validate(); err != nil {
		t.Errorf("disc should validate: %v", err)
	}
	if err := Disc(-1).Validate(); err == nil {
		t.Error("negative radius should fail")
	}
	if err := Box(Range{Min: 1, Max: -1}, Fixed(0)).Validate(); err == nil {
		t.Error("inverted box should fail")
	}
	if err := (Velocity{Kind: "spiral"}).Validate(); err == nil {
		t.Error("unknown kind should fail")
	}
}
