package schema

import "sync/atomic"

// Registry is the process-wide handle for the active schema. A built
// Schema is immutable, so replacing it is a single pointer swap and
// readers never see a half-updated schema.
type Registry struct {
	current atomic.Pointer[Schema]
}

// NewRegistry returns a registry serving the given schema.
func NewRegistry(s *Schema) *Registry {
	r := &Registry{}
	r.current.Store(s)
	return r
}

// Current returns the active schema.
func (r *Registry) Current() *Schema {
	return r.current.Load()
}

// Swap installs a new schema and returns the previous one. In-flight
// operations holding the old schema keep a consistent view until they
// finish.
func (r *Registry) Swap(s *Schema) *Schema {
	return r.current.Swap(s)
}
