// Copyright 2024 The justbytes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package justbytes represents quantities of bytes as exact values and
computes with them without losing precision to floating point.

The central type is Size, an immutable wrapper around an exact rational
magnitude of unbounded precision. New values are constructed from a
number or numeral string plus a unit specifier:

	s, err := justbytes.New(2, justbytes.GiB)      // 2 GiB
	t, err := justbytes.NewFromString("1.5", justbytes.KB)

Every arithmetic, conversion and rounding operation allocates a fresh
result; a Size is never modified in place, so values may be shared
freely across goroutines. The operand rules are strict: sizes add and
subtract only with sizes, multiply only by bare numbers, and dividing a
size by a size yields a dimensionless rational. Operand combinations
without a defined meaning do not exist in the API, and illegal operand
values (such as a zero divisor) are reported as typed errors.

Unit specifiers are a closed set: a named Unit from the binary (KiB,
MiB, ...) or decimal (KB, MB, ...) tables, another Size whose magnitude
serves as the factor, or a raw rational Factor.

Display is driven by configuration values. Components picks the most
natural unit for a magnitude under a ValueConfig, and GetString renders
the final text under a StringConfig:

	s, _ := justbytes.New(1280, justbytes.B)
	str, _ := s.GetString(justbytes.NewStringConfig()) // "1.25 KiB"

Size.String uses a process-wide default configuration which may be
replaced with SetDefaultStringConfig; the package itself performs no
locking around it, so hosts must either set it once at startup or guard
updates themselves. The same applies to strict mode (SetStrict), which
rejects construction of sizes with fractional byte counts.

The digit-level machinery lives in the radix subpackage: rounding a
rational to an integer under a RoundingMode, and rendering a rational as
a positional numeral in an arbitrary base with a bounded number of
fractional places.
*/
package justbytes
