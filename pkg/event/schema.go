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

package event

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// FieldKind declares how a schema field is coerced during normalization.
type FieldKind int

const (
	// KindNumeric coerces the value to float64.
	KindNumeric FieldKind = iota
	// KindTime parses the value as a timestamp.
	KindTime
	// KindPassthrough keeps the value as-is.
	KindPassthrough
)

func (k FieldKind) String() string {
	switch k {
	case KindNumeric:
		return "Numeric"
	case KindTime:
		return "Time"
	case KindPassthrough:
		return "Passthrough"
	default:
		return "Unknown"
	}
}

// Schema declares the shape of raw events from one source: which fields
// carry the timestamp and the identifier, and how the payload fields are
// typed. Payload fields not declared in Fields are passed through
// unchanged, so the field set of a stream is open.
type Schema struct {
	// TimestampField names the raw field holding the event time. Required.
	TimestampField string
	// IdentifierField names the raw field holding the identifier. Required.
	IdentifierField string
	// Fields maps payload field names to their declared kinds.
	Fields map[string]FieldKind
}

// DefaultSchema returns a schema with the conventional "dt"/"sid" field
// names used by the simulation sources.
func DefaultSchema() Schema {
	return Schema{TimestampField: "dt", IdentifierField: "sid"}
}

// Normalize converts one raw event into a canonical Record. It returns a
// *MalformedEventError if the timestamp or identifier is missing or not
// coercible. Normalization has no side effects; a failed event leaves no
// trace.
func (s Schema) Normalize(raw RawEvent) (Record, error) {
	tv, ok := raw[s.TimestampField]
	if !ok {
		return Record{}, &MalformedEventError{Field: s.TimestampField, Reason: "timestamp missing"}
	}
	ts, ok := asTime(tv)
	if !ok {
		return Record{}, &MalformedEventError{Field: s.TimestampField, Reason: fmt.Sprintf("cannot parse %T as timestamp", tv)}
	}

	iv, ok := raw[s.IdentifierField]
	if !ok {
		return Record{}, &MalformedEventError{Field: s.IdentifierField, Reason: "identifier missing"}
	}
	id, ok := asIdentifier(iv)
	if !ok {
		return Record{}, &MalformedEventError{Field: s.IdentifierField, Reason: fmt.Sprintf("cannot use %T as identifier", iv)}
	}

	fields := make(map[string]any, len(raw))
	for name, v := range raw {
		if name == s.TimestampField || name == s.IdentifierField {
			continue
		}
		switch s.Fields[name] {
		case KindNumeric:
			f, ok := AsFloat(v)
			if !ok {
				return Record{}, &MalformedEventError{Field: name, Reason: fmt.Sprintf("cannot coerce %T to numeric", v)}
			}
			fields[name] = f
		case KindTime:
			t, ok := asTime(v)
			if !ok {
				return Record{}, &MalformedEventError{Field: name, Reason: fmt.Sprintf("cannot parse %T as time", v)}
			}
			fields[name] = t
		default:
			fields[name] = v
		}
	}

	return Record{Timestamp: ts, Identifier: id, Fields: fields}, nil
}

// AsFloat coerces a raw value to float64.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case decimal.Decimal:
		return x.InexactFloat64(), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case int64:
		return time.Unix(x, 0).UTC(), true
	case string:
		t, err := dateparse.ParseAny(x)
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

func asIdentifier(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	default:
		return "", false
	}
}
