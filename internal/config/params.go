package config

import "github.com/emirpasic/gods/maps/linkedhashmap"

// ParameterSet is an ordered mapping from configuration-key name to an
// untyped value, as declared in a configuration file. Keys are unique;
// iteration follows declaration order. Values are whatever the file
// declared: string, int64, float64, bool, []any, or map[string]any.
type ParameterSet struct {
	m *linkedhashmap.Map
}

// NewParameterSet creates an empty ParameterSet.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{m: linkedhashmap.New()}
}

// Set stores a value under a key. Setting an existing key replaces its
// value without changing its position.
func (ps *ParameterSet) Set(key string, value any) {
	ps.m.Put(key, value)
}

// Get returns the value stored under a key and whether the key exists.
func (ps *ParameterSet) Get(key string) (any, bool) {
	return ps.m.Get(key)
}

// Has reports whether a key exists in the set.
func (ps *ParameterSet) Has(key string) bool {
	_, ok := ps.m.Get(key)
	return ok
}

// Keys returns all keys in declaration order.
func (ps *ParameterSet) Keys() []string {
	raw := ps.m.Keys()
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k.(string))
	}
	return keys
}

// Len returns the number of keys in the set.
func (ps *ParameterSet) Len() int {
	return ps.m.Size()
}

// ToMap returns the set as a plain map, for consumers that decode the
// untyped values into their own typed settings. Ordering is lost.
func (ps *ParameterSet) ToMap() map[string]any {
	out := make(map[string]any, ps.m.Size())
	for _, k := range ps.Keys() {
		v, _ := ps.m.Get(k)
		out[k] = v
	}
	return out
}
