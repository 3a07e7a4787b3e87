// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import "math/big"

// A UnitSpec designates a unit of measurement wherever one is required:
// a named Unit, a Size (whose magnitude is the factor), or a raw
// rational Factor. The interface is sealed; these three types are the
// only implementations. A nil UnitSpec means B where a default applies.
type UnitSpec interface {
	unitFactor() *big.Rat
}

// A Factor is a raw rational number used directly as a unit factor.
type Factor struct {
	v *big.Rat
}

// NewFactor returns a Factor with the given value. The value is copied.
func NewFactor(v *big.Rat) Factor {
	if v == nil {
		return Factor{}
	}
	return Factor{new(big.Rat).Set(v)}
}

// NewIntFactor returns a Factor with the given integral value.
func NewIntFactor(v int64) Factor {
	return Factor{new(big.Rat).SetInt64(v)}
}

// Value returns the factor's value.
func (f Factor) Value() *big.Rat {
	if f.v == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(f.v)
}

func (f Factor) unitFactor() *big.Rat {
	if f.v == nil {
		return nil
	}
	return new(big.Rat).Set(f.v)
}

// factorOf resolves a unit specifier to its numeric factor. A nil spec
// resolves to B. The factor may be non-positive; operations that need a
// positive factor check separately.
func factorOf(spec UnitSpec, param string) (*big.Rat, error) {
	if spec == nil {
		return big.NewRat(1, 1), nil
	}
	f := spec.unitFactor()
	if f == nil {
		return nil, &ValueError{Param: param, Value: spec, Msg: "does not designate a unit"}
	}
	return f, nil
}
