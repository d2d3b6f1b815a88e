package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color 配置中的颜色值
//
// 支持的写法：
//   - "#RRGGBB" / "#RRGGBBAA"
//   - CSS 颜色名（"red", "green", "darkslategray" ...）
type Color struct {
	color.RGBA
}

// RGB 构造不透明颜色
func RGB(r, g, b uint8) Color {
	return Color{color.RGBA{R: r, G: g, B: b, A: 0xff}}
}

// ParseColor 解析颜色字符串
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		raw, err := hex.DecodeString(s[1:])
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		switch len(raw) {
		case 3:
			return RGB(raw[0], raw[1], raw[2]), nil
		case 4:
			return Color{color.RGBA{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}}, nil
		default:
			return Color{}, fmt.Errorf("hex color %q must be #RRGGBB or #RRGGBBAA", s)
		}
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{c}, nil
	}
	return Color{}, fmt.Errorf("unknown color name %q", s)
}

// String 以 #RRGGBBAA 形式输出
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string", node.Line)
	}
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
