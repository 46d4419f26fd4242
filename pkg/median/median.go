/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package median renders medians as decimal strings with exactly two fractional digits.
// Extra digits are truncated, never rounded.
package median

import "strconv"

// Zero is the median reported before any edge has been seen.
const Zero = "0.00"

// FormatRatio renders num/den truncated to two decimals. den must be positive and num non-negative.
func FormatRatio(num, den int64) string {
	whole := num / den
	frac := (num % den) * 100 / den
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, whole, 10)
	buf = append(buf, '.')
	if frac < 10 {
		buf = append(buf, '0')
	}
	buf = strconv.AppendInt(buf, frac, 10)
	return string(buf)
}

// Format renders the median of two middle values lo and hi, i.e. (lo+hi)/2.
// For an odd sized sequence lo and hi are the same element.
func Format(lo, hi int) string {
	return FormatRatio(int64(lo)+int64(hi), 2)
}

// Of returns the formatted median of an ascending sequence, Zero if it is empty.
func Of(sorted []int) string {
	n := len(sorted)
	if n == 0 {
		return Zero
	}
	if n%2 == 1 {
		return Format(sorted[n/2], sorted[n/2])
	}
	return Format(sorted[n/2-1], sorted[n/2])
}
