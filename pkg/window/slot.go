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

package window

import (
	"github.com/rollproj/rollwin/pkg/calendar"
	"github.com/rollproj/rollwin/pkg/event"
)

// Slot holds everything observed for one period across all identifiers.
// At most one record per identifier is retained; a later record for the
// same identifier in the same period overwrites the earlier one.
type Slot struct {
	key     calendar.PeriodKey
	records map[string]event.Record
}

func newSlot(key calendar.PeriodKey) *Slot {
	return &Slot{key: key, records: make(map[string]event.Record)}
}

// Key returns the period key of the slot.
func (s *Slot) Key() calendar.PeriodKey {
	return s.key
}

// Set merges the record into the slot, last write wins per identifier.
func (s *Slot) Set(rec event.Record) {
	s.records[rec.Identifier] = rec
}

// Record returns the record for the identifier, if any.
func (s *Slot) Record(id string) (event.Record, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Len returns the number of identifiers with a record in this slot.
func (s *Slot) Len() int {
	return len(s.records)
}

// IsEmpty reports whether no identifier has a record in this slot. Empty
// slots exist for valid trading periods the event stream skipped over.
func (s *Slot) IsEmpty() bool {
	return len(s.records) == 0
}

// Fields returns the set of field names present across the records of
// this slot.
func (s *Slot) Fields() map[string]struct{} {
	out := make(map[string]struct{})
	for _, rec := range s.records {
		for name := range rec.Fields {
			out[name] = struct{}{}
		}
	}
	return out
}
