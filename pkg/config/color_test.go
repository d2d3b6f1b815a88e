package config

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGBA
	}{
		{"#1b1b1b", color.RGBA{0x1b, 0x1b, 0x1b, 0xff}},
		{"#FF000080", color.RGBA{0xff, 0, 0, 0x80}},
		{"red", color.RGBA{0xff, 0, 0, 0xff}},
		{"Lime", color.RGBA{0, 0xff, 0, 0xff}},
		{" green ", color.RGBA{0, 0x80, 0, 0xff}},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.input, err)
			continue
		}
		if got.RGBA != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got.RGBA, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "#12", "#gggggg", "#1234567890", "notacolor"} {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("ParseColor(%q) should fail", input)
		}
	}
}

func TestColor_YAML(t *testing.T) {
	var doc struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("c: \"#102030\"\n"), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.C != RGB(0x10, 0x20, 0x30) {
		t.Errorf("expected #102030, got %s", doc.C)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal of %q failed: %v", out, err)
	}
	if back.C != doc.C {
		t.Errorf("yaml output %q decoded to %s, want %s", out, back.C, doc.C)
	}

	if err := yaml.Unmarshal([]byte("c: [1, 2]\n"), &doc); err == nil {
		t.Error("sequence color should be rejected")
	}
}
