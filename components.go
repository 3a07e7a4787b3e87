// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"math/big"

	"github.com/jorgefdezg/justbytes/radix"
)

// A Component is a size decomposed for display: the magnitude expressed
// in a unit, and that unit. Value × Unit.Factor() always recovers the
// original magnitude exactly.
type Component struct {
	Value *big.Rat
	Unit  Unit
}

// ComponentsList returns the decomposition of s into every unit of the
// requested family: B first, then the family units in ascending exponent
// order. The slice is freshly built on every call.
func (s Size) ComponentsList(binaryUnits bool) []Component {
	units := DecimalUnits()
	if binaryUnits {
		units = BinaryUnits()
	}
	cs := make([]Component, 0, len(units)+1)
	for _, u := range append([]Unit{B}, units...) {
		v, _ := s.ConvertTo(u) // unit factors are always positive
		cs = append(cs, Component{Value: v, Unit: u})
	}
	return cs
}

// Components returns the single most natural (value, unit) decomposition
// of s for display under cfg.
//
// Unless cfg forces a unit, candidates are taken from ComponentsList up
// to and including the first unit in which the represented magnitude
// drops below base × cfg.MinValue; the first unit to qualify wins, and
// coarser units are never reconsidered. If no unit qualifies the
// coarsest one is used. When cfg.ExactValue is set, the candidates are
// re-scanned from coarsest to finest for one that renders exactly at
// cfg.Base and cfg.MaxPlaces, falling back to the finest candidate.
func (s Size) Components(cfg ValueConfig) (Component, error) {
	if err := cfg.validate(); err != nil {
		return Component{}, err
	}

	if cfg.Unit != nil {
		v, err := s.ConvertTo(cfg.Unit)
		if err != nil {
			return Component{}, err
		}
		// validate guarantees a named unit
		return Component{Value: v, Unit: cfg.Unit.(Unit)}, nil
	}

	limit := new(big.Rat).Mul(familyBase(cfg.BinaryUnits), cfg.minValue())
	all := s.ComponentsList(cfg.BinaryUnits)
	candidates := all[:0:0]
	for _, c := range all {
		candidates = append(candidates, c)
		if new(big.Rat).Abs(c.Value).Cmp(limit) < 0 {
			break
		}
	}

	if cfg.ExactValue {
		// scan coarse to fine; when nothing renders exactly, the last
		// scanned (finest) candidate wins
		for i := len(candidates) - 1; i >= 0; i-- {
			_, acc, err := radix.FromRational(candidates[i].Value, cfg.Base, cfg.MaxPlaces, cfg.rounding())
			if err != nil {
				return Component{}, &ValueError{Param: "cfg", Value: cfg, Msg: "unusable rendering configuration", err: err}
			}
			if acc == radix.Exact {
				return candidates[i], nil
			}
		}
		return candidates[0], nil
	}
	return candidates[len(candidates)-1], nil
}
