package internal

import (
	"maps"
	"slices"
)

// Jar maps cookie names to values for a single request/response exchange.
// Later writes to the same name replace earlier ones.
type Jar map[string]string

// Set stores value under name.
func (j Jar) Set(name, value string) {
	j[name] = value
}

// Delete removes name from the jar.
func (j Jar) Delete(name string) {
	delete(j, name)
}

// Merge copies every entry of other into j, overwriting existing names.
func (j Jar) Merge(other Jar) {
	maps.Copy(j, other)
}

// Clone returns an independent copy. A nil jar clones to an empty one.
func (j Jar) Clone() Jar {
	if j == nil {
		return Jar{}
	}
	return maps.Clone(j)
}

// Names returns the cookie names in lexical order.
func (j Jar) Names() []string {
	return slices.Sorted(maps.Keys(j))
}

// Len returns the number of cookies in the jar.
func (j Jar) Len() int {
	return len(j)
}
