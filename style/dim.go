// Package style holds the value types shared by arrays/layout/primitives:
// the Dim dimension sum type, the small layout/visual enums, and the
// RGBA color type. Grounded on the teacher's runtime/types.go
// (BoxConstraints, Size, clamp) and runtime/style_types.go (Direction,
// Align, Justify, Overflow) — same attribute set, reshaped into the
// sum-type/enum-int form spec.md §3 specifies rather than the teacher's
// plain strings.
package style

import (
	"fmt"

	"github.com/spf13/cast"
)

// DimKind discriminates a Dim's representation.
type DimKind uint8

const (
	DimAuto DimKind = iota
	DimInt
	DimPercent
)

// Dim is spec.md §3's "Dim = Int | Percent(f32) | Auto" value type. The
// zero value is Auto, matching the "0 sentinel = Auto on this tier" note.
type Dim struct {
	Kind    DimKind
	Int     int
	Percent float32
}

// Auto returns the Auto Dim.
func Auto() Dim { return Dim{Kind: DimAuto} }

// FixedInt returns an integer-cell Dim.
func FixedInt(v int) Dim { return Dim{Kind: DimInt, Int: v} }

// Pct returns a percentage Dim, p in [0,100] (not enforced — callers may
// pass out-of-range values, which resolve the same way any other Percent
// would).
func Pct(p float32) Dim { return Dim{Kind: DimPercent, Percent: p} }

// IsAuto reports whether d is the Auto variant.
func (d Dim) IsAuto() bool { return d.Kind == DimAuto }

// Resolve computes d against a containing-block size in cells, per
// spec.md §4.4 item 1: Auto defers (callers must special-case it before
// calling Resolve for intrinsic sizing), Int is as-is, Percent floors
// containing*p/100.
func (d Dim) Resolve(containing int) int {
	switch d.Kind {
	case DimInt:
		return d.Int
	case DimPercent:
		return int(float32(containing) * d.Percent / 100.0)
	default:
		return 0
	}
}

// ParseDim coerces a loosely-typed prop value into a Dim: a bare number
// becomes DimInt, a string like "50%" becomes DimPercent, "auto" (or a
// nil/empty value) becomes Auto. Uses spf13/cast the way the teacher's
// props_resolver.go tolerates loosely-typed JSON-ish prop values.
func ParseDim(v interface{}) (Dim, error) {
	if v == nil {
		return Auto(), nil
	}
	if s, ok := v.(string); ok {
		if s == "" || s == "auto" {
			return Auto(), nil
		}
		if len(s) > 0 && s[len(s)-1] == '%' {
			f, err := cast.ToFloat32E(s[:len(s)-1])
			if err != nil {
				return Dim{}, fmt.Errorf("style: invalid percent dim %q: %w", s, err)
			}
			return Pct(f), nil
		}
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return Dim{}, fmt.Errorf("style: invalid dim %v: %w", v, err)
	}
	return FixedInt(i), nil
}

// Clamp bounds value within [min, max], ignoring a bound that is itself
// Auto (treated as unbounded on that side), mirroring
// BoxConstraints.Constrain's clamp helper.
func Clamp(value int, min, max Dim, containing int) int {
	v := value
	if !min.IsAuto() {
		if m := min.Resolve(containing); v < m {
			v = m
		}
	}
	if !max.IsAuto() {
		if m := max.Resolve(containing); v > m {
			v = m
		}
	}
	return v
}
