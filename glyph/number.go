// SPDX-License-Identifier: MIT

package glyph

import "slices"

// Digits decomposes n into decimal digits in display order (most
// significant first). Digits(0) is [0].
func Digits(n uint64) []int {
	var ds []int
	for {
		ds = append(ds, int(n%10)) // least significant first
		n /= 10
		if n == 0 {
			break
		}
	}
	slices.Reverse(ds)

	return ds
}
