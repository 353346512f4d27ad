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

// Package calendar defines the calendar gate consulted by the window buffer
// for every incoming event. The calendar decides which period an event
// belongs to, whether a timestamp falls inside a valid trading period at
// all, and what the next valid period after a given one is. The window
// buffer needs Next to record empty slots for valid periods the event
// stream skipped over.
package calendar

import "time"

// PeriodKey identifies one period. It is the Unix timestamp (seconds) of
// the period start, so keys of the same calendar compare chronologically
// with the ordinary integer operators.
type PeriodKey int64

// Time returns the start of the period in UTC.
func (k PeriodKey) Time() time.Time {
	return time.Unix(int64(k), 0).UTC()
}

// Calendar is the gate that maps event timestamps to periods.
// Implementations must be deterministic; the same timestamp always maps
// to the same key.
type Calendar interface {
	// PeriodKey returns the key of the period containing t.
	PeriodKey(t time.Time) PeriodKey
	// IsValid reports whether t falls inside a valid trading period.
	IsValid(t time.Time) bool
	// Next returns the key of the first valid period after k.
	Next(k PeriodKey) PeriodKey
}
