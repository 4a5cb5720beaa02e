/*
Package css interprets CSS length values of computed styles.

Computed styles in snapshots are plain strings. For reporting, differences
between lengths are more helpful than the raw values, e.g.

    margin-top: 12px → 16px  (Δ 3.00pt)

This package parses CSS lengths into an option type DimenT and computes
such deltas.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// ErrNotALength is returned for values which cannot be parsed as a CSS length.
var ErrNotALength = errors.New("not a CSS length")

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// ---------------------------------------------------------------------------

// units in big points (1/72 inch), CSS reference pixel is 0.75pt
var unitsInPoints = map[string]float64{
	"px": 0.75,
	"pt": 1.0,
	"pc": 12.0,
	"in": 72.0,
	"cm": 72.0 / 2.54,
	"mm": 72.0 / 25.4,
}

// ParseDimen parses a CSS length, e.g. "12px", "80%" or "auto".
// Font- and viewport-relative units are not supported, as computed styles
// never contain them.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	if strings.HasSuffix(s, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("%w: %q", ErrNotALength, s)
		}
		return Percentage(FromInt(int(math.Round(n)))), nil
	}
	if len(s) < 3 {
		return DimenT{}, fmt.Errorf("%w: %q", ErrNotALength, s)
	}
	unit := s[len(s)-2:]
	factor, ok := unitsInPoints[unit]
	if !ok {
		return DimenT{}, fmt.Errorf("%w: %q", ErrNotALength, s)
	}
	x, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("%w: %q", ErrNotALength, s)
	}
	return JustDimen(dimen.DU(math.Round(x * factor * float64(dimen.PT)))), nil
}

// LengthDelta parses two CSS lengths and returns their difference (s2 - s1),
// if both are fixed lengths.
func LengthDelta(s1, s2 string) (dimen.DU, bool) {
	d1, err1 := ParseDimen(s1)
	d2, err2 := ParseDimen(s2)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	var du1, du2 dimen.DU
	m1, m2 := d1.Match(), d2.Match()
	if m1.Just(&du1) == nil || m2.Just(&du2) == nil {
		return 0, false
	}
	return du2 - du1, true
}

// FormatPoints formats a dimension in points, e.g. "-3.00pt".
func FormatPoints(du dimen.DU) string {
	return fmt.Sprintf("%.2fpt", float64(du)/float64(dimen.PT))
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		if m.dimen.flags&kindMask == dimenNone && (m.dimen.flags&dimenPercent) != (d.flags&dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	if m.dimen.flags&dimenPercent > 0 {
		return patterns.Percent
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
