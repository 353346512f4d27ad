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

// Package registry tracks the ordered set of identifiers observed on the
// event stream. The set only ever grows; insertion order fixes the column
// order of assembled panels, so an identifier that stops trading keeps
// its column.
package registry

// Registry is an append-only ordered set of identifiers. It is owned
// exclusively by one engine instance and is not safe for concurrent use.
type Registry struct {
	order []string
	index map[string]int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds the identifier if unseen and reports whether it was new.
// Registering an already known identifier is a no-op.
func (r *Registry) Register(id string) bool {
	if _, ok := r.index[id]; ok {
		return false
	}
	r.index[id] = len(r.order)
	r.order = append(r.order, id)
	return true
}

// Identifiers returns all identifiers ever seen, in insertion order.
// The returned slice is a copy.
func (r *Registry) Identifiers() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Index returns the insertion position of the identifier.
func (r *Registry) Index(id string) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

// Len returns the number of identifiers seen so far.
func (r *Registry) Len() int {
	return len(r.order)
}
