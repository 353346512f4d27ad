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

// Package transforms provides ready-made transform functions for common
// rolling window analyses. They are ordinary engine.TransformFunc values;
// a simulation is free to supply its own instead.
package transforms

import (
	"context"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/rollproj/rollwin/pkg/engine"
	"github.com/rollproj/rollwin/pkg/panel"
)

// Field returns a transform that materializes one field of the panel as a
// (period x identifier) matrix, rows oldest first.
func Field(name string) engine.TransformFunc {
	return func(_ context.Context, p *panel.Panel, _ ...any) (any, error) {
		out := make([][]float64, p.NumPeriods())
		for t := range out {
			row := make([]float64, p.NumIdentifiers())
			for i, id := range p.Identifiers() {
				row[i] = p.Value(name, t, id)
			}
			out[t] = row
		}
		return out, nil
	}
}

// Mean returns a transform computing the rolling mean of a field per
// identifier. Missing values are ignored; an identifier with no value in
// the window maps to NaN.
func Mean(field string) engine.TransformFunc {
	return perIdentifier(field, func(col []float64) float64 {
		m, err := stats.Mean(col)
		if err != nil {
			return math.NaN()
		}
		return m
	})
}

// StdDev returns a transform computing the rolling sample standard
// deviation of a field per identifier.
func StdDev(field string) engine.TransformFunc {
	return perIdentifier(field, func(col []float64) float64 {
		sd, err := stats.StandardDeviationSample(col)
		if err != nil {
			return math.NaN()
		}
		return sd
	})
}

// ZScore returns a transform computing, per identifier, how many sample
// standard deviations the latest value of the field sits away from the
// window mean.
func ZScore(field string) engine.TransformFunc {
	return perIdentifier(field, func(col []float64) float64 {
		if len(col) < 2 {
			return math.NaN()
		}
		m, err := stats.Mean(col)
		if err != nil {
			return math.NaN()
		}
		sd, err := stats.StandardDeviationSample(col)
		if err != nil || sd == 0 {
			return math.NaN()
		}
		return (col[len(col)-1] - m) / sd
	})
}

// perIdentifier lifts a column statistic into a TransformFunc returning
// one value per identifier column. NaN entries are dropped before the
// statistic is applied.
func perIdentifier(field string, fn func(col []float64) float64) engine.TransformFunc {
	return func(_ context.Context, p *panel.Panel, _ ...any) (any, error) {
		out := make(map[string]float64, p.NumIdentifiers())
		for _, id := range p.Identifiers() {
			col := dropNaN(p.Column(field, id))
			if len(col) == 0 {
				out[id] = math.NaN()
				continue
			}
			out[id] = fn(col)
		}
		return out, nil
	}
}

func dropNaN(col []float64) []float64 {
	out := col[:0]
	for _, v := range col {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
