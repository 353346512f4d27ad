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

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 4096

// Cached wraps a Calendar and memoizes Next lookups, which can be
// expensive for trading calendars that walk over weekends and holidays.
// The calendar gate is consulted for every event, so a minute-granular
// simulation hits the same handful of keys millions of times.
type Cached struct {
	inner Calendar
	next  *lru.Cache[PeriodKey, PeriodKey]
}

var _ Calendar = (*Cached)(nil)

// NewCached returns a memoizing wrapper around the given calendar.
func NewCached(inner Calendar) *Cached {
	next, _ := lru.New[PeriodKey, PeriodKey](defaultCacheSize)
	return &Cached{inner: inner, next: next}
}

// PeriodKey delegates to the wrapped calendar. Truncation is cheap, so it
// is not cached.
func (c *Cached) PeriodKey(t time.Time) PeriodKey {
	return c.inner.PeriodKey(t)
}

// IsValid delegates to the wrapped calendar.
func (c *Cached) IsValid(t time.Time) bool {
	return c.inner.IsValid(t)
}

// Next returns the memoized next valid period key.
func (c *Cached) Next(k PeriodKey) PeriodKey {
	if n, ok := c.next.Get(k); ok {
		return n
	}
	n := c.inner.Next(k)
	c.next.Add(k, n)
	return n
}
