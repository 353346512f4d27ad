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

// Package panel materializes the window buffer into a dense
// (period x identifier x field) structure that is handed to the
// user transform. A panel is a derived, disposable projection; the
// buffer keeps owning the raw records.
package panel

import (
	"math"

	"github.com/rollproj/rollwin/pkg/calendar"
)

// Panel is a dense 3-dimensional block of float64 values indexed by
// period (rows, chronological), identifier (columns, registry order) and
// field. Missing values are NaN.
type Panel struct {
	periods     []calendar.PeriodKey
	identifiers []string
	fields      []string

	idIndex    map[string]int
	fieldIndex map[string]int

	// data is laid out [field][period][identifier], flattened.
	data []float64
}

func newPanel(periods []calendar.PeriodKey, identifiers, fields []string) *Panel {
	p := &Panel{
		periods:     periods,
		identifiers: identifiers,
		fields:      fields,
		idIndex:     make(map[string]int, len(identifiers)),
		fieldIndex:  make(map[string]int, len(fields)),
		data:        make([]float64, len(fields)*len(periods)*len(identifiers)),
	}
	for i, id := range identifiers {
		p.idIndex[id] = i
	}
	for i, f := range fields {
		p.fieldIndex[f] = i
	}
	for i := range p.data {
		p.data[i] = math.NaN()
	}
	return p
}

func (p *Panel) offset(f, t, i int) int {
	return (f*len(p.periods)+t)*len(p.identifiers) + i
}

// NumPeriods returns the number of rows.
func (p *Panel) NumPeriods() int { return len(p.periods) }

// NumIdentifiers returns the number of columns.
func (p *Panel) NumIdentifiers() int { return len(p.identifiers) }

// NumFields returns the number of fields.
func (p *Panel) NumFields() int { return len(p.fields) }

// Periods returns the period keys, oldest first.
func (p *Panel) Periods() []calendar.PeriodKey { return p.periods }

// Identifiers returns the identifier columns in registry order.
func (p *Panel) Identifiers() []string { return p.identifiers }

// Fields returns the field names.
func (p *Panel) Fields() []string { return p.fields }

// HasIdentifier reports whether the panel has a column for id.
func (p *Panel) HasIdentifier(id string) bool {
	_, ok := p.idIndex[id]
	return ok
}

// HasField reports whether the panel carries the field.
func (p *Panel) HasField(field string) bool {
	_, ok := p.fieldIndex[field]
	return ok
}

// At returns the value at the given field, period and identifier indices.
func (p *Panel) At(f, t, i int) float64 {
	return p.data[p.offset(f, t, i)]
}

// Value returns the value for (field, period index, identifier), NaN if
// the field or identifier is not present.
func (p *Panel) Value(field string, t int, id string) float64 {
	f, ok := p.fieldIndex[field]
	if !ok {
		return math.NaN()
	}
	i, ok := p.idIndex[id]
	if !ok {
		return math.NaN()
	}
	return p.data[p.offset(f, t, i)]
}

func (p *Panel) set(f, t, i int, v float64) {
	p.data[p.offset(f, t, i)] = v
}

// Column returns one time series: the values of a field for one
// identifier across all periods, oldest first. The returned slice is a
// copy.
func (p *Panel) Column(field, id string) []float64 {
	out := make([]float64, len(p.periods))
	f, fok := p.fieldIndex[field]
	i, iok := p.idIndex[id]
	for t := range out {
		if fok && iok {
			out[t] = p.data[p.offset(f, t, i)]
		} else {
			out[t] = math.NaN()
		}
	}
	return out
}

// Latest returns the value in the most recent period for (field,
// identifier), NaN when the panel is empty.
func (p *Panel) Latest(field, id string) float64 {
	if len(p.periods) == 0 {
		return math.NaN()
	}
	return p.Value(field, len(p.periods)-1, id)
}

// column returns a mutable view usable by the NaN cleaning pass.
func (p *Panel) column(f, i int) columnView {
	return columnView{panel: p, f: f, i: i}
}

type columnView struct {
	panel *Panel
	f, i  int
}

func (c columnView) len() int             { return len(c.panel.periods) }
func (c columnView) at(t int) float64     { return c.panel.At(c.f, t, c.i) }
func (c columnView) set(t int, v float64) { c.panel.set(c.f, t, c.i, v) }
