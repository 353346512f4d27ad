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

package calendar

import "time"

// Interval is a calendar whose periods are fixed-length buckets aligned to
// the epoch, e.g. one minute or one day. Every instant is a valid period.
type Interval struct {
	// Length is the temporal length of one period.
	Length time.Duration
}

var _ Calendar = (*Interval)(nil)

// NewInterval returns an Interval calendar with the given period length.
// Length must be positive.
func NewInterval(length time.Duration) *Interval {
	if length <= 0 {
		panic("calendar: interval length must be positive")
	}
	return &Interval{Length: length}
}

// NewDaily returns a calendar with one period per UTC day.
func NewDaily() *Interval {
	return NewInterval(24 * time.Hour)
}

// NewMinutely returns a calendar with one period per minute.
func NewMinutely() *Interval {
	return NewInterval(time.Minute)
}

// PeriodKey truncates t down to the period boundary. Assignment is left
// inclusive and right exclusive, so an event exactly on a boundary falls
// into the period to the right of the boundary.
func (c *Interval) PeriodKey(t time.Time) PeriodKey {
	return PeriodKey(t.Truncate(c.Length).Unix())
}

// IsValid always returns true; an interval calendar has no closed periods.
func (c *Interval) IsValid(_ time.Time) bool {
	return true
}

// Next returns the key of the immediately following period.
func (c *Interval) Next(k PeriodKey) PeriodKey {
	return k + PeriodKey(c.Length/time.Second)
}
