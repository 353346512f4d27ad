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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCached_MatchesInner(t *testing.T) {
	inner := NewTradingDaily()
	c := NewCached(inner)

	at := time.Date(1990, 1, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, inner.PeriodKey(at), c.PeriodKey(at))
	assert.Equal(t, inner.IsValid(at), c.IsValid(at))

	k := inner.PeriodKey(at)
	want := inner.Next(k)
	assert.Equal(t, want, c.Next(k))
	// second lookup is served from the cache
	assert.Equal(t, want, c.Next(k))
}
