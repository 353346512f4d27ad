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

import (
	"sort"

	"github.com/rollproj/rollwin/pkg/calendar"
	"github.com/rollproj/rollwin/pkg/event"
	"github.com/rollproj/rollwin/pkg/window"
)

// Assembler materializes the current slot sequence into a Panel. It is
// stateless: Assemble is a pure function of (slots, identifiers, filters)
// and never retains a previous panel.
type Assembler struct {
	// IdentifierFilter restricts the identifier columns when non-nil.
	IdentifierFilter map[string]struct{}
	// FieldFilter restricts the field axis when non-nil.
	FieldFilter map[string]struct{}
	// CleanNaNs fills missing values from forward/backward neighbors
	// within the same column. Missing values at the head of a column are
	// backfilled from the first present value; a column that is missing
	// for the whole window is kept and stays NaN.
	CleanNaNs bool
}

// NewAssembler returns an Assembler with the given filters. Nil slices
// leave the corresponding axis unrestricted.
func NewAssembler(identifierFilter, fieldFilter []string, cleanNaNs bool) *Assembler {
	a := &Assembler{CleanNaNs: cleanNaNs}
	if identifierFilter != nil {
		a.IdentifierFilter = make(map[string]struct{}, len(identifierFilter))
		for _, id := range identifierFilter {
			a.IdentifierFilter[id] = struct{}{}
		}
	}
	if fieldFilter != nil {
		a.FieldFilter = make(map[string]struct{}, len(fieldFilter))
		for _, f := range fieldFilter {
			a.FieldFilter[f] = struct{}{}
		}
	}
	return a
}

// Assemble builds a dense Panel from the slot sequence. identifiers is
// the registry's insertion-ordered sequence; it fixes column order so
// that columns never reorder as new identifiers appear. Values are
// coerced to float64; a pass-through field value that is not numeric
// materializes as NaN.
func (a *Assembler) Assemble(it *window.SlotIterator, identifiers []string) *Panel {
	it.Reset()

	keys := make([]calendar.PeriodKey, 0, it.Len())
	fieldSet := make(map[string]struct{})
	slots := make([]*window.Slot, 0, it.Len())
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		slots = append(slots, s)
		keys = append(keys, s.Key())
		for name := range s.Fields() {
			if a.FieldFilter != nil {
				if _, keep := a.FieldFilter[name]; !keep {
					continue
				}
			}
			fieldSet[name] = struct{}{}
		}
	}

	cols := identifiers
	if a.IdentifierFilter != nil {
		cols = make([]string, 0, len(a.IdentifierFilter))
		for _, id := range identifiers {
			if _, keep := a.IdentifierFilter[id]; keep {
				cols = append(cols, id)
			}
		}
	}

	fields := make([]string, 0, len(fieldSet))
	for name := range fieldSet {
		fields = append(fields, name)
	}
	// the field axis ordering must be deterministic across materializations
	sort.Strings(fields)

	p := newPanel(keys, cols, fields)

	for t, s := range slots {
		for i, id := range cols {
			rec, ok := s.Record(id)
			if !ok {
				continue
			}
			for f, name := range fields {
				v, ok := rec.Fields[name]
				if !ok {
					continue
				}
				if x, ok := event.AsFloat(v); ok {
					p.set(f, t, i, x)
				}
			}
		}
	}

	if a.CleanNaNs {
		for f := range fields {
			for i := range cols {
				fillColumn(p.column(f, i))
			}
		}
	}

	return p
}
