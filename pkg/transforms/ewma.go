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

package transforms

import (
	"math"

	"github.com/rollproj/rollwin/pkg/engine"
)

// EWMA returns a transform computing an exponentially weighted moving
// average of the field per identifier, walking the window oldest to
// newest. span controls the decay the same way a span parameter does for
// pandas: alpha = 2 / (span + 1).
func EWMA(field string, span float64) engine.TransformFunc {
	alpha := 2.0 / (span + 1.0)
	return perIdentifier(field, func(col []float64) float64 {
		v := math.NaN()
		for _, x := range col {
			if math.IsNaN(v) {
				v = x
				continue
			}
			v = v + alpha*(x-v)
		}
		return v
	})
}
