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

// Package window implements the rolling window buffer: a capacity-bounded,
// time-ordered ring of period slots. Each slot holds all records observed
// for one calendar period across all identifiers. Once the buffer reaches
// its configured length, appending a new slot evicts the oldest, so the
// window slides by calendar period rather than by event count.
package window

import (
	"github.com/rollproj/rollwin/pkg/calendar"
	"github.com/rollproj/rollwin/pkg/event"
	"github.com/rollproj/rollwin/pkg/registry"
)

// State is the lifecycle state of the buffer.
type State int

const (
	// StateEmpty means no slot has been created yet.
	StateEmpty State = iota
	// StateFilling means the buffer holds fewer slots than its length.
	StateFilling
	// StateFull means the buffer is at capacity and slides on append.
	// A full buffer never returns to an earlier state.
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateFilling:
		return "Filling"
	case StateFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// Buffer is the rolling window of period slots, oldest first. The slots
// are strictly ordered by period key with no duplicates; valid trading
// periods skipped by the event stream are recorded as empty slots so that
// the window still slides one slot per calendar period.
//
// A Buffer is owned exclusively by one engine instance and is not safe
// for concurrent use.
type Buffer struct {
	length int
	cal    calendar.Calendar
	reg    *registry.Registry
	slots  []*Slot
}

// NewBuffer returns a Buffer retaining at most length slots. Records are
// bucketed into periods by the given calendar; identifiers of inserted
// records are registered in reg.
func NewBuffer(length int, cal calendar.Calendar, reg *registry.Registry) *Buffer {
	if length <= 0 {
		panic("window: buffer length must be positive")
	}
	return &Buffer{
		length: length,
		cal:    cal,
		reg:    reg,
		slots:  make([]*Slot, 0, length),
	}
}

// Insert absorbs one record. It returns the number of slots appended by
// this insert: 0 when the record merged into the current slot, n >= 1
// when the record opened a new period (n > 1 when empty slots were
// recorded for skipped valid periods in between).
//
// A record whose period is behind the most recent slot is rejected with
// an *OutOfOrderEventError and the buffer is left in its prior state.
func (b *Buffer) Insert(rec event.Record) (int, error) {
	key := b.cal.PeriodKey(rec.Timestamp)

	if len(b.slots) == 0 {
		b.reg.Register(rec.Identifier)
		s := newSlot(key)
		s.Set(rec)
		b.append(s)
		return 1, nil
	}

	latest := b.slots[len(b.slots)-1]
	switch {
	case key == latest.Key():
		b.reg.Register(rec.Identifier)
		latest.Set(rec)
		return 0, nil
	case key < latest.Key():
		return 0, &OutOfOrderEventError{Got: key, Latest: latest.Key()}
	}

	b.reg.Register(rec.Identifier)
	appended := 0
	// record the valid periods the stream skipped over as empty slots
	for k := b.cal.Next(latest.Key()); k < key; k = b.cal.Next(k) {
		b.append(newSlot(k))
		appended++
	}
	s := newSlot(key)
	s.Set(rec)
	b.append(s)
	return appended + 1, nil
}

// the oldest slot overflows once the buffer is at capacity
func (b *Buffer) append(s *Slot) {
	if len(b.slots) >= b.length {
		b.slots = b.slots[1:]
	}
	b.slots = append(b.slots, s)
}

// IsFull reports whether the buffer has reached its configured length.
func (b *Buffer) IsFull() bool {
	return len(b.slots) == b.length
}

// Len returns the number of retained slots.
func (b *Buffer) Len() int {
	return len(b.slots)
}

// State returns the lifecycle state of the buffer.
func (b *Buffer) State() State {
	switch {
	case len(b.slots) == 0:
		return StateEmpty
	case len(b.slots) < b.length:
		return StateFilling
	default:
		return StateFull
	}
}

// Slots returns a restartable iterator over the retained slots in
// chronological order. The iterator holds a snapshot of the slot
// sequence; iterating does not mutate buffer state.
func (b *Buffer) Slots() *SlotIterator {
	snapshot := make([]*Slot, len(b.slots))
	copy(snapshot, b.slots)
	return &SlotIterator{slots: snapshot}
}

// SlotIterator walks a snapshot of the buffer's slots oldest first.
type SlotIterator struct {
	slots []*Slot
	pos   int
}

// Next returns the next slot, or false once the sequence is exhausted.
func (it *SlotIterator) Next() (*Slot, bool) {
	if it.pos >= len(it.slots) {
		return nil, false
	}
	s := it.slots[it.pos]
	it.pos++
	return s, true
}

// Reset rewinds the iterator to the oldest slot.
func (it *SlotIterator) Reset() {
	it.pos = 0
}

// Len returns the total number of slots in the sequence.
func (it *SlotIterator) Len() int {
	return len(it.slots)
}
