// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"github.com/jorgefdezg/justbytes/radix"
)

const bytesSymbol = "B"

// StringInfo returns everything needed to display s under cfg: the
// rendered numeral, its relation to the exact value, and the unit chosen
// by Components.
func (s Size) StringInfo(cfg ValueConfig) (radix.Numeral, radix.Accuracy, Unit, error) {
	comp, err := s.Components(cfg)
	if err != nil {
		return radix.Numeral{}, radix.Exact, Unit{}, err
	}
	n, acc, err := radix.FromRational(comp.Value, cfg.Base, cfg.MaxPlaces, cfg.Rounding)
	if err != nil {
		return radix.Numeral{}, radix.Exact, Unit{}, &ValueError{
			Param: "cfg", Value: cfg, Msg: "unusable rendering configuration", err: err,
		}
	}
	return n, acc, comp.Unit, nil
}

// GetString returns the human-readable representation of s under cfg,
// for example "1.25 KiB" or "~1.46 GiB".
func (s Size) GetString(cfg StringConfig) (string, error) {
	n, acc, unit, err := s.StringInfo(cfg.Value)
	if err != nil {
		return "", err
	}
	return formatNumeral(n, acc, cfg.Display) + " " + unit.Abbr() + bytesSymbol, nil
}

// String renders s with the process-wide default configuration. An
// invalid default yields an error literal instead of a panic.
func (s Size) String() string {
	str, err := s.GetString(DefaultStringConfig())
	if err != nil {
		return "%!Size(" + err.Error() + ")"
	}
	return str
}

// GoString returns a debug form carrying the exact magnitude, such as
// Size(171/10).
func (s Size) GoString() string {
	return "Size(" + s.rat().RatString() + ")"
}
