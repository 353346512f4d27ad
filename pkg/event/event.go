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

// Package event normalizes raw market events into canonical records.
// A raw event is an arbitrary field mapping produced by a data source;
// a caller supplied Schema declares which fields carry the timestamp and
// the identifier and how the remaining fields are typed.
package event

import "time"

// RawEvent is one heterogeneous event as delivered by a source.
type RawEvent map[string]any

// Record is the canonical form of one observation: one identifier at one
// instant with a set of named field values. A Record is immutable once
// created.
type Record struct {
	// Timestamp is the event time. Per identifier, timestamps are
	// non-decreasing across the stream.
	Timestamp time.Time
	// Identifier names the tracked entity, e.g. a tradable asset.
	Identifier string
	// Fields holds the remaining event payload. Numeric fields are stored
	// as float64; pass-through fields keep the source value unchanged.
	Fields map[string]any
}

// Float returns the named field as a float64.
func (r Record) Float(name string) (float64, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return 0, false
	}
	f, ok := AsFloat(v)
	return f, ok
}
