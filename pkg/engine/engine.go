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

// Package engine wires the rolling window components together: it
// normalizes incoming events, feeds them to the window buffer, and
// invokes the user transform with a freshly assembled panel whenever the
// refresh cadence and fullness gates allow.
//
// The engine is single-threaded and synchronous relative to its caller:
// ProcessEvent runs to completion, including any transform invocation,
// before returning. Engine instances share nothing, so no locking exists
// anywhere on this path.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rollproj/rollwin/pkg/calendar"
	"github.com/rollproj/rollwin/pkg/event"
	"github.com/rollproj/rollwin/pkg/panel"
	"github.com/rollproj/rollwin/pkg/registry"
	"github.com/rollproj/rollwin/pkg/shared/logging"
	"github.com/rollproj/rollwin/pkg/window"
)

// TransformFunc is the user-supplied analysis function. It receives the
// assembled panel plus the extra arguments configured with WithArgs and
// returns an arbitrary result. Errors returned by the transform propagate
// to the ProcessEvent caller unmodified; the engine neither retries nor
// logs them.
type TransformFunc func(ctx context.Context, p *panel.Panel, args ...any) (any, error)

// Result is the per-event outcome. Ready is false while the window is
// not ready (refresh not due, or the buffer not yet full with
// WithComputeOnlyFull), which is distinct from a transform returning a
// nil or zero value.
type Result struct {
	Value any
	Ready bool
}

// NotReady is the sentinel returned while no transform result is due.
var NotReady = Result{}

// Engine owns one window buffer and one identifier registry and drives
// one transform. Create one engine per analysis pipeline.
type Engine struct {
	id     string
	schema event.Schema
	cal    calendar.Calendar
	reg    *registry.Registry
	buf    *window.Buffer
	sched  *scheduler
	asm    *panel.Assembler
	fn     TransformFunc
	opts   *options
	log    *zap.SugaredLogger
}

// New returns an Engine bucketing events with the given calendar and
// invoking fn on the configured cadence.
func New(ctx context.Context, schema event.Schema, cal calendar.Calendar, fn TransformFunc, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			if err := opt(o); err != nil {
				return nil, err
			}
		}
	}

	reg := registry.New()
	e := &Engine{
		id:     uuid.New().String()[:8],
		schema: schema,
		cal:    cal,
		reg:    reg,
		buf:    window.NewBuffer(o.windowLength, cal, reg),
		sched:  &scheduler{refreshPeriod: o.refreshPeriod},
		asm:    panel.NewAssembler(o.identifierFilter, o.fieldFilter, o.cleanNaNs),
		fn:     fn,
		opts:   o,
		log:    logging.FromContext(ctx).With("engine", o.name),
	}
	e.log.Infow("Created rolling window engine",
		"id", e.id, "windowLength", o.windowLength, "refreshPeriod", o.refreshPeriod,
		"computeOnlyFull", o.computeOnlyFull, "cleanNaNs", o.cleanNaNs)
	return e, nil
}

// ProcessEvent normalizes one raw event, absorbs it into the window and,
// if an invocation is due, calls the transform with a freshly assembled
// panel. It returns NotReady with a nil error when the event was absorbed
// (or skipped as a non-trading timestamp) but no invocation happened.
//
// Errors: a *event.MalformedEventError or *window.OutOfOrderEventError
// rejects the event and leaves all state untouched; transform errors pass
// through verbatim.
func (e *Engine) ProcessEvent(ctx context.Context, raw event.RawEvent) (Result, error) {
	rec, err := e.schema.Normalize(raw)
	if err != nil {
		eventsRejectedCount.WithLabelValues(e.id, e.opts.name, "malformed").Inc()
		return NotReady, err
	}

	if !e.cal.IsValid(rec.Timestamp) {
		// not a trading period, the event does not advance the window
		eventsRejectedCount.WithLabelValues(e.id, e.opts.name, "invalid_period").Inc()
		e.log.Debugw("Skipping event outside valid trading periods", "timestamp", rec.Timestamp)
		return NotReady, nil
	}

	before := e.buf.State()
	appended, err := e.buf.Insert(rec)
	if err != nil {
		eventsRejectedCount.WithLabelValues(e.id, e.opts.name, "out_of_order").Inc()
		return NotReady, err
	}
	eventsCount.WithLabelValues(e.id, e.opts.name).Inc()
	retainedSlots.WithLabelValues(e.id, e.opts.name).Set(float64(e.buf.Len()))
	if after := e.buf.State(); after != before {
		e.log.Infow("Window state transition", "from", before.String(), "to", after.String())
	}

	if appended == 0 {
		// still inside the current period
		return NotReady, nil
	}
	if !e.sched.tick(appended) {
		return NotReady, nil
	}
	if e.opts.computeOnlyFull && !e.buf.IsFull() {
		return NotReady, nil
	}

	return e.invoke(ctx)
}

func (e *Engine) invoke(ctx context.Context) (Result, error) {
	start := time.Now()
	p := e.asm.Assemble(e.buf.Slots(), e.reg.Identifiers())

	v, err := e.fn(ctx, p, e.opts.args...)
	if err != nil {
		// recovery policy belongs to the surrounding simulation loop
		return NotReady, err
	}
	invocationsCount.WithLabelValues(e.id, e.opts.name).Inc()
	invokeTime.WithLabelValues(e.id, e.opts.name).Observe(float64(time.Since(start).Microseconds()))
	return Result{Value: v, Ready: true}, nil
}

// ID returns the engine instance id.
func (e *Engine) ID() string {
	return e.id
}

// State returns the window buffer lifecycle state.
func (e *Engine) State() window.State {
	return e.buf.State()
}

// Identifiers returns all identifiers seen so far, in column order.
func (e *Engine) Identifiers() []string {
	return e.reg.Identifiers()
}
