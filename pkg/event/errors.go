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

import "fmt"

// MalformedEventError is returned when a raw event cannot be normalized,
// e.g. the timestamp or identifier field is absent or of the wrong type.
// The event is rejected before any engine state is mutated.
type MalformedEventError struct {
	// Field is the offending field name.
	Field string
	// Reason describes why normalization failed.
	Reason string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event: field %q: %s", e.Field, e.Reason)
}
