// Copyright 2013 Sonia Keys
// License: MIT

// Base: arithmetic helpers and constants shared across the module.
//
// The package holds the polynomial and integer-division helpers used by
// the astronomical series, and the cyclic cell arithmetic used by every
// chart rule.  Cells, stems and branches are 1-based throughout the
// module; Wrap12 implements the (x−1+k+12K) mod 12 + 1 idiom so the
// offset rules read the way the reference tables state them.
package base
