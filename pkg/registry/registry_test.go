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

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_InsertionOrder(t *testing.T) {
	r := New()
	assert.True(t, r.Register("b"))
	assert.True(t, r.Register("a"))
	assert.True(t, r.Register("c"))
	assert.Equal(t, []string{"b", "a", "c"}, r.Identifiers())
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_RegisterIdempotent(t *testing.T) {
	r := New()
	assert.True(t, r.Register("a"))
	assert.False(t, r.Register("a"))
	assert.Equal(t, []string{"a"}, r.Identifiers())
}

func TestRegistry_Index(t *testing.T) {
	r := New()
	r.Register("x")
	r.Register("y")
	i, ok := r.Index("y")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = r.Index("z")
	assert.False(t, ok)
}

func TestRegistry_IdentifiersIsACopy(t *testing.T) {
	r := New()
	r.Register("a")
	ids := r.Identifiers()
	ids[0] = "mutated"
	assert.Equal(t, []string{"a"}, r.Identifiers())
}
