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

package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rollproj/rollwin/pkg/event"
)

var start = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

func collect(ch <-chan event.RawEvent) []event.RawEvent {
	var out []event.RawEvent
	for e := range ch {
		out = append(out, e)
	}
	return out
}

func TestGenerator_EmitsAllPeriods(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := New([]string{"AAA", "BBB"}, start, 24*time.Hour, 5, WithSeed(42))
	events := collect(g.Events(context.Background()))

	assert.Len(t, events, 10)
	assert.Equal(t, int64(10), g.Generated())
}

func TestGenerator_Chronological(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := New([]string{"AAA"}, start, 24*time.Hour, 4, WithSeed(1))
	events := collect(g.Events(context.Background()))

	require.Len(t, events, 4)
	for i, e := range events {
		ts, ok := e["dt"].(time.Time)
		require.True(t, ok)
		assert.Equal(t, start.Add(time.Duration(i)*24*time.Hour), ts)
		assert.Equal(t, "AAA", e["sid"])
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := collect(New([]string{"AAA"}, start, time.Minute, 10, WithSeed(7)).Events(context.Background()))
	b := collect(New([]string{"AAA"}, start, time.Minute, 10, WithSeed(7)).Events(context.Background()))
	assert.Equal(t, a, b)
}

func TestGenerator_CancelStopsStream(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	g := New([]string{"AAA"}, start, time.Minute, 1000, WithSeed(3))
	ch := g.Events(ctx)

	<-ch
	cancel()

	// the producer goroutine exits and closes the channel
	for range ch {
	}
	assert.Less(t, g.Generated(), int64(1000))
}
