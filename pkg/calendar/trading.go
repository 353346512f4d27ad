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

// Trading is a calendar that marks weekends and configured holidays as
// invalid. With a period length of one day it models daily bars on an
// exchange calendar; with a sub-daily period length it additionally
// restricts valid periods to the session hours of a trading day.
type Trading struct {
	// Length is the temporal length of one period.
	Length time.Duration
	// SessionOpen and SessionClose bound the valid session within a
	// trading day, as offsets from midnight UTC. They only apply when
	// Length is shorter than a day. Valid periods are left inclusive and
	// right exclusive, [SessionOpen, SessionClose).
	SessionOpen  time.Duration
	SessionClose time.Duration

	holidays map[PeriodKey]struct{}
}

var _ Calendar = (*Trading)(nil)

const day = 24 * time.Hour

// NewTradingDaily returns a Trading calendar with one period per trading
// day. Weekends and the given holidays are invalid.
func NewTradingDaily(holidays ...time.Time) *Trading {
	return NewTrading(day, 0, day, holidays...)
}

// NewTrading returns a Trading calendar with the given period length and
// session bounds.
func NewTrading(length time.Duration, open, close time.Duration, holidays ...time.Time) *Trading {
	if length <= 0 {
		panic("calendar: trading period length must be positive")
	}
	c := &Trading{
		Length:       length,
		SessionOpen:  open,
		SessionClose: close,
		holidays:     make(map[PeriodKey]struct{}, len(holidays)),
	}
	for _, h := range holidays {
		c.holidays[PeriodKey(h.Truncate(day).Unix())] = struct{}{}
	}
	return c
}

// PeriodKey truncates t down to the period boundary.
func (c *Trading) PeriodKey(t time.Time) PeriodKey {
	return PeriodKey(t.Truncate(c.Length).Unix())
}

// IsValid reports whether t falls on a trading day and, for sub-daily
// periods, within the session.
func (c *Trading) IsValid(t time.Time) bool {
	t = t.UTC()
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	if _, ok := c.holidays[PeriodKey(t.Truncate(day).Unix())]; ok {
		return false
	}
	if c.Length >= day {
		return true
	}
	sinceMidnight := t.Sub(t.Truncate(day))
	return sinceMidnight >= c.SessionOpen && sinceMidnight < c.SessionClose
}

// Next returns the key of the first valid period after k, skipping
// weekends, holidays and out-of-session buckets.
func (c *Trading) Next(k PeriodKey) PeriodKey {
	step := PeriodKey(c.Length / time.Second)
	for n := k + step; ; n += step {
		if c.IsValid(n.Time()) {
			return n
		}
	}
}
