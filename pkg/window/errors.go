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
	"fmt"

	"github.com/rollproj/rollwin/pkg/calendar"
)

// OutOfOrderEventError is returned when an event's period key regresses
// behind the most recent slot. The buffer is left untouched; interleaving
// of identifiers within the same period is allowed and does not trigger
// this error.
type OutOfOrderEventError struct {
	// Got is the period key of the rejected event.
	Got calendar.PeriodKey
	// Latest is the key of the most recent slot at rejection time.
	Latest calendar.PeriodKey
}

func (e *OutOfOrderEventError) Error() string {
	return fmt.Sprintf("out of order event: period %s is behind latest slot %s",
		e.Got.Time().Format("2006-01-02T15:04:05Z"), e.Latest.Time().Format("2006-01-02T15:04:05Z"))
}
