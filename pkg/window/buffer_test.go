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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollproj/rollwin/pkg/calendar"
	"github.com/rollproj/rollwin/pkg/event"
	"github.com/rollproj/rollwin/pkg/registry"
)

func day(d int) time.Time {
	return time.Date(1990, 1, d, 12, 0, 0, 0, time.UTC)
}

func rec(d int, id string, price float64) event.Record {
	return event.Record{
		Timestamp:  day(d),
		Identifier: id,
		Fields:     map[string]any{"price": price},
	}
}

func keys(b *Buffer) []time.Time {
	var out []time.Time
	it := b.Slots()
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		out = append(out, s.Key().Time())
	}
	return out
}

func TestBuffer_InsertAppends(t *testing.T) {
	b := NewBuffer(3, calendar.NewDaily(), registry.New())

	n, err := b.Insert(rec(1, "0", 1))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = b.Insert(rec(2, "0", 2))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, b.Len())
}

func TestBuffer_MergeSamePeriodLastWriteWins(t *testing.T) {
	reg := registry.New()
	b := NewBuffer(3, calendar.NewDaily(), reg)

	_, err := b.Insert(rec(1, "0", 1))
	require.NoError(t, err)
	n, err := b.Insert(rec(1, "0", 99))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, b.Len())

	it := b.Slots()
	s, _ := it.Next()
	r, ok := s.Record("0")
	require.True(t, ok)
	v, _ := r.Float("price")
	assert.Equal(t, 99.0, v)
}

func TestBuffer_CrossIdentifierInterleaving(t *testing.T) {
	reg := registry.New()
	b := NewBuffer(3, calendar.NewDaily(), reg)

	_, err := b.Insert(rec(1, "0", 1))
	require.NoError(t, err)
	n, err := b.Insert(rec(1, "1", 10))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{"0", "1"}, reg.Identifiers())

	it := b.Slots()
	s, _ := it.Next()
	assert.Equal(t, 2, s.Len())
}

func TestBuffer_EvictsOldestAtCapacity(t *testing.T) {
	b := NewBuffer(3, calendar.NewDaily(), registry.New())
	for d := 1; d <= 5; d++ {
		_, err := b.Insert(rec(d, "0", float64(d)))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, b.Len())
	assert.True(t, b.IsFull())
	got := keys(b)
	assert.Equal(t, []time.Time{
		time.Date(1990, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(1990, 1, 4, 0, 0, 0, 0, time.UTC),
		time.Date(1990, 1, 5, 0, 0, 0, 0, time.UTC),
	}, got)
}

func TestBuffer_OutOfOrderRejected(t *testing.T) {
	b := NewBuffer(3, calendar.NewDaily(), registry.New())
	_, err := b.Insert(rec(3, "0", 3))
	require.NoError(t, err)

	_, err = b.Insert(rec(2, "0", 2))
	var oo *OutOfOrderEventError
	require.True(t, errors.As(err, &oo))
	// the buffer is left in its prior valid state
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, time.Date(1990, 1, 3, 0, 0, 0, 0, time.UTC), oo.Latest.Time())
}

func TestBuffer_SkippedValidPeriodsBecomeEmptySlots(t *testing.T) {
	b := NewBuffer(5, calendar.NewDaily(), registry.New())
	_, err := b.Insert(rec(2, "0", 1))
	require.NoError(t, err)
	n, err := b.Insert(rec(4, "0", 2))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	it := b.Slots()
	s1, _ := it.Next()
	s2, _ := it.Next()
	s3, _ := it.Next()
	assert.False(t, s1.IsEmpty())
	assert.True(t, s2.IsEmpty())
	assert.Equal(t, time.Date(1990, 1, 3, 0, 0, 0, 0, time.UTC), s2.Key().Time())
	assert.False(t, s3.IsEmpty())
}

func TestBuffer_WeekendIsNotASlot(t *testing.T) {
	// 1990-01-05 is a Friday; the next valid trading day is Monday the 8th
	b := NewBuffer(5, calendar.NewTradingDaily(), registry.New())
	_, err := b.Insert(rec(5, "0", 1))
	require.NoError(t, err)
	n, err := b.Insert(rec(8, "0", 2))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, b.Len())
}

func TestBuffer_State(t *testing.T) {
	b := NewBuffer(2, calendar.NewDaily(), registry.New())
	assert.Equal(t, StateEmpty, b.State())

	_, _ = b.Insert(rec(1, "0", 1))
	assert.Equal(t, StateFilling, b.State())

	_, _ = b.Insert(rec(2, "0", 2))
	assert.Equal(t, StateFull, b.State())

	// a full buffer keeps sliding, it never goes back to filling
	_, _ = b.Insert(rec(3, "0", 3))
	assert.Equal(t, StateFull, b.State())
	assert.Equal(t, 2, b.Len())
}

func TestSlotIterator_Restartable(t *testing.T) {
	b := NewBuffer(3, calendar.NewDaily(), registry.New())
	for d := 1; d <= 3; d++ {
		_, _ = b.Insert(rec(d, "0", float64(d)))
	}

	it := b.Slots()
	count := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	assert.Equal(t, 3, count)

	it.Reset()
	s, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), s.Key().Time())
}

func TestSlotIterator_SnapshotIsolation(t *testing.T) {
	b := NewBuffer(3, calendar.NewDaily(), registry.New())
	_, _ = b.Insert(rec(1, "0", 1))
	it := b.Slots()

	_, _ = b.Insert(rec(2, "0", 2))
	assert.Equal(t, 1, it.Len())
}
