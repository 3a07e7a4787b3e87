// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package justbytes

import (
	"strconv"
	"strings"

	"github.com/jorgefdezg/justbytes/radix"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxLetterBase is the largest base whose digits all fit the letter
// table; beyond it digits are printed numerically.
const maxLetterBase = len(digitChars)

// formatNumeral applies the display policy to a rendered numeral and its
// exactness relation: approximation marker, sign, base prefix, digit
// text and trailing-zero stripping, in that order.
func formatNumeral(n radix.Numeral, acc radix.Accuracy, cfg DisplayConfig) string {
	var b strings.Builder

	if cfg.ShowApprox && acc != radix.Exact {
		b.WriteString(cfg.approxSymbol())
	}
	if n.Negative {
		b.WriteByte('-')
	}
	if cfg.Base.UsePrefix {
		switch n.Base {
		case 2:
			b.WriteString("0b")
		case 8:
			b.WriteString("0o")
		case 16:
			b.WriteString("0x")
		}
	}

	frac := n.Fraction
	switch {
	case cfg.Strip.Strip:
		frac = stripZeros(frac)
	case cfg.Strip.StripExact && acc == radix.Exact:
		frac = stripZeros(frac)
	case cfg.Strip.StripWhole && acc == radix.Exact && len(stripZeros(frac)) == 0:
		frac = nil
	}

	b.WriteString(digitText(n.Integer, n.Base, cfg.Digits))
	if len(frac) > 0 {
		b.WriteByte('.')
		b.WriteString(digitText(frac, n.Base, cfg.Digits))
	}
	return b.String()
}

// digitText renders a run of digits. With letters enabled and a base
// small enough, each digit is one character from the digit table,
// optionally upper-cased. Otherwise digits are printed as decimal
// numbers joined by the configured separator.
func digitText(ds []int, base int, cfg DigitsConfig) string {
	if cfg.UseLetters && base <= maxLetterBase {
		var b strings.Builder
		for _, d := range ds {
			c := digitChars[d]
			if cfg.UseCaps && c >= 'a' {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
		}
		return b.String()
	}
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, cfg.Separator)
}

func stripZeros(ds []int) []int {
	end := len(ds)
	for end > 0 && ds[end-1] == 0 {
		end--
	}
	return ds[:end]
}
