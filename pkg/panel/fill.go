/*
Copyright 2024 The Rollproj Authors.

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

package panel

import "math"

// fillColumn replaces NaN entries of one column with neighbor values:
// forward fill first, then a backward pass for the leading gap. Only
// values within the same column are used. A column with no present value
// at all is left as NaN.
func fillColumn(c columnView) {
	n := c.len()

	last := math.NaN()
	for t := 0; t < n; t++ {
		v := c.at(t)
		if math.IsNaN(v) {
			if !math.IsNaN(last) {
				c.set(t, last)
			}
			continue
		}
		last = v
	}

	next := math.NaN()
	for t := n - 1; t >= 0; t-- {
		v := c.at(t)
		if math.IsNaN(v) {
			if !math.IsNaN(next) {
				c.set(t, next)
			}
			continue
		}
		next = v
	}
}
