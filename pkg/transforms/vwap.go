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
	"context"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rollproj/rollwin/pkg/engine"
	"github.com/rollproj/rollwin/pkg/panel"
)

// VWAP returns a transform computing the volume weighted average price of
// the window per identifier. Periods where either price or volume is
// missing do not contribute. The weighted sum is accumulated in decimals
// so long windows do not drift.
func VWAP(priceField, volumeField string) engine.TransformFunc {
	return func(_ context.Context, p *panel.Panel, _ ...any) (any, error) {
		out := make(map[string]decimal.Decimal, p.NumIdentifiers())
		for _, id := range p.Identifiers() {
			prices := p.Column(priceField, id)
			volumes := p.Column(volumeField, id)
			notional := decimal.Zero
			volume := decimal.Zero
			for t := range prices {
				if math.IsNaN(prices[t]) || math.IsNaN(volumes[t]) {
					continue
				}
				px := decimal.NewFromFloat(prices[t])
				vol := decimal.NewFromFloat(volumes[t])
				notional = notional.Add(px.Mul(vol))
				volume = volume.Add(vol)
			}
			if volume.IsZero() {
				continue
			}
			out[id] = notional.Div(volume)
		}
		return out, nil
	}
}
