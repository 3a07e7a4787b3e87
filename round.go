// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"math/big"

	"github.com/jorgefdezg/justbytes/radix"
)

// Bounds optionally clamps the result of RoundTo. A nil field leaves
// that side unbounded.
type Bounds struct {
	Lower *Size
	Upper *Size
}

// RoundTo rounds s to a whole multiple of the given unit, using mode to
// pick the multiple, and then clamps the result to bounds.
//
// A negative unit factor is a *ValueError; a zero factor yields the zero
// size unconditionally. Bounds with Lower > Upper are a *ValueError.
//
// Clamping is applied after rounding and takes precedence over it: when
// the rounded value falls outside the bounds, the returned bound may lie
// in the opposite direction of the requested rounding mode. This is
// intentional.
func (s Size) RoundTo(unit UnitSpec, mode radix.RoundingMode, bounds Bounds) (Size, error) {
	factor, err := factorOf(unit, "unit")
	if err != nil {
		return Size{}, err
	}
	if factor.Sign() < 0 {
		return Size{}, &ValueError{Param: "unit", Value: factor, Msg: "cannot round to negative unit"}
	}

	var res Size
	if factor.Sign() == 0 {
		res = Size{}
	} else {
		q := new(big.Rat).Quo(s.rat(), factor)
		rounded, _, err := radix.RoundToInt(q, mode)
		if err != nil {
			return Size{}, &ValueError{Param: "mode", Value: mode, Msg: "unknown rounding mode", err: err}
		}
		res, err = makeSize(q.Mul(q.SetInt(rounded), factor))
		if err != nil {
			return Size{}, err
		}
	}

	if bounds.Lower != nil && bounds.Upper != nil && bounds.Lower.Cmp(*bounds.Upper) > 0 {
		return Size{}, &ValueError{Param: "bounds", Value: bounds, Msg: "lower bound exceeds upper bound"}
	}
	if bounds.Lower != nil && res.Cmp(*bounds.Lower) < 0 {
		return *bounds.Lower, nil
	}
	if bounds.Upper != nil && res.Cmp(*bounds.Upper) > 0 {
		return *bounds.Upper, nil
	}
	return res, nil
}
