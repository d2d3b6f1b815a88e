package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range 是一个闭区间数值，生成粒子时从中均匀取值
//
// 配置中支持两种写法：
//   - 固定值: "4.5" → Min=4.5, Max=4.5
//   - 范围:   "[-1 1]" → Min=-1, Max=1
type Range struct {
	Min float64
	Max float64
}

// Fixed 返回一个固定值区间
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// IsFixed 区间是否退化为单个值
func (r Range) IsFixed() bool {
	return r.Min == r.Max
}

// Sample 在 [Min, Max) 中均匀取值；Min >= Max 时返回 Min
func (r Range) Sample(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// String 以配置格式输出区间
func (r Range) String() string {
	if r.IsFixed() {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// ParseRange parses a fixed value ("1.5"), a bracketed range ("[0.7 0.9]") or a
// single bracketed value ("[3]").
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
			}
			return Fixed(v), nil
		case 2:
			lo, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range min %q: %w", s, err)
			}
			hi, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range max %q: %w", s, err)
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("range %q must hold one or two numbers", s)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Fixed(v), nil
}

// UnmarshalYAML 支持标量数字、"[min max]" 字符串以及 yaml 序列 [min, max]
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseRange(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*r = parsed
		return nil
	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		switch len(vals) {
		case 1:
			*r = Fixed(vals[0])
		case 2:
			*r = Range{Min: vals[0], Max: vals[1]}
		default:
			return fmt.Errorf("line %d: range must hold one or two numbers, got %d", node.Line, len(vals))
		}
		return nil
	}
	return fmt.Errorf("line %d: unsupported range node", node.Line)
}

// MarshalYAML 输出与 ParseRange 兼容的字符串
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// Keyframe 动画曲线上的一个关键帧
type Keyframe struct {
	Time  float64 // 归一化时间 (0-1)
	Value float64
}

// Interpolation modes understood by EvaluateKeyframes.
const (
	InterpLinear  = "Linear"
	InterpEaseIn  = "EaseIn"
	InterpEaseOut = "EaseOut"
	InterpSmooth  = "FastInOutWeak"
)

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
// Keyframes must be sorted by Time. Unknown modes fall back to linear.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]
		if t < k0.Time || t > k1.Time {
			continue
		}

		duration := k1.Time - k0.Time
		if duration <= 0 {
			return k0.Value
		}
		ratio := (t - k0.Time) / duration

		switch interpolation {
		case InterpEaseIn:
			ratio = ratio * ratio
		case InterpEaseOut:
			ratio = 1 - (1-ratio)*(1-ratio)
		case InterpSmooth:
			ratio = ratio * ratio * (3 - 2*ratio)
		}
		return k0.Value + ratio*(k1.Value-k0.Value)
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max).
// A nil rng uses the shared math/rand source.
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}

// RandomInDisc 在以原点为圆心、半径为 radius 的圆内均匀取点
// 半径使用 sqrt 随机，避免点集中在圆心附近
func RandomInDisc(rng *rand.Rand, radius float64) (x, y float64) {
	if radius <= 0 {
		return 0, 0
	}
	r := math.Sqrt(RandomInRange(rng, 0, 1)) * radius
	ang := RandomInRange(rng, 0, 2*math.Pi)
	return r * math.Cos(ang), r * math.Sin(ang)
}
