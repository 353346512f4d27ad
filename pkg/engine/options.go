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

import "fmt"

type options struct {
	// windowLength is the number of periods retained by the buffer.
	windowLength int
	// refreshPeriod is the number of periods between invocations,
	// 0 meaning every period.
	refreshPeriod int
	// cleanNaNs fills missing panel values from in-column neighbors.
	cleanNaNs bool
	// identifierFilter restricts panel columns when non-nil.
	identifierFilter []string
	// fieldFilter restricts panel fields when non-nil.
	fieldFilter []string
	// computeOnlyFull suppresses invocation until the buffer is full.
	computeOnlyFull bool
	// args are forwarded verbatim to the transform on every invocation.
	args []any
	// name labels the engine in logs and metrics.
	name string
}

func defaultOptions() *options {
	return &options{
		windowLength:  1,
		refreshPeriod: 0,
		name:          "transform",
	}
}

// Option customizes an Engine.
type Option func(*options) error

// WithWindowLength sets the number of periods the window retains.
func WithWindowLength(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("window length must be positive, got %d", n)
		}
		o.windowLength = n
		return nil
	}
}

// WithRefreshPeriod sets the number of periods between invocations.
// 0 invokes on every period.
func WithRefreshPeriod(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("refresh period must be non-negative, got %d", n)
		}
		o.refreshPeriod = n
		return nil
	}
}

// WithCleanNaNs enables filling of missing panel values from neighbor
// values within the same column.
func WithCleanNaNs() Option {
	return func(o *options) error {
		o.cleanNaNs = true
		return nil
	}
}

// WithIdentifierFilter restricts the panel columns to the given
// identifiers.
func WithIdentifierFilter(ids ...string) Option {
	return func(o *options) error {
		o.identifierFilter = ids
		return nil
	}
}

// WithFieldFilter restricts the panel fields to the given names.
func WithFieldFilter(fields ...string) Option {
	return func(o *options) error {
		o.fieldFilter = fields
		return nil
	}
}

// WithComputeOnlyFull suppresses invocation until the buffer holds a full
// window.
func WithComputeOnlyFull() Option {
	return func(o *options) error {
		o.computeOnlyFull = true
		return nil
	}
}

// WithArgs sets extra arguments forwarded to the transform on every
// invocation.
func WithArgs(args ...any) Option {
	return func(o *options) error {
		o.args = args
		return nil
	}
}

// WithName labels the engine in logs and metrics.
func WithName(name string) Option {
	return func(o *options) error {
		o.name = name
		return nil
	}
}
