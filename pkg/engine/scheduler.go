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

package engine

// scheduler decides whether enough periods have elapsed since the last
// invocation to re-invoke the transform. It counts elapsed periods and is
// independent of the buffer fullness gate: the counter resets whenever
// the refresh cadence is reached, even if the fullness gate then
// suppresses the invocation.
type scheduler struct {
	// refreshPeriod is the number of periods between invocations.
	// 0 behaves like 1: every period is due.
	refreshPeriod int
	elapsed       int
}

// tick advances the counter by n new periods and reports whether an
// invocation is due. On due, the counter resets.
func (s *scheduler) tick(n int) bool {
	s.elapsed += n
	if s.refreshPeriod == 0 || s.elapsed >= s.refreshPeriod {
		s.elapsed = 0
		return true
	}
	return false
}
