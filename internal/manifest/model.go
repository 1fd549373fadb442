package manifest

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Filename is the manifest file name looked up in project directories.
const Filename = "package.json"

// Manifest represents the fields of package.json this tool reads. It is
// never written back. Scripts and dependency maps preserve the order
// declared in the file so listings and pickers match the manifest.
type Manifest struct {
	Name            string                                 `json:"name"`
	Version         string                                 `json:"version"`
	Scripts         *orderedmap.OrderedMap[string, string] `json:"scripts"`
	Dependencies    *orderedmap.OrderedMap[string, string] `json:"dependencies"`
	DevDependencies *orderedmap.OrderedMap[string, string] `json:"devDependencies"`
}

// Entry is a single (name, value) pair from an ordered manifest map:
// script name → command, or package name → version spec.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ScriptEntries returns the scripts in declared order.
func (m *Manifest) ScriptEntries() []Entry {
	return entries(m.Scripts)
}

// DependencyEntries returns the runtime dependencies in declared order.
func (m *Manifest) DependencyEntries() []Entry {
	return entries(m.Dependencies)
}

// DevDependencyEntries returns the development dependencies in declared order.
func (m *Manifest) DevDependencyEntries() []Entry {
	return entries(m.DevDependencies)
}

// HasScript reports whether the manifest declares the named script.
func (m *Manifest) HasScript(name string) bool {
	if m.Scripts == nil {
		return false
	}
	_, ok := m.Scripts.Get(name)
	return ok
}

// HasDependency reports whether name appears in dependencies or
// devDependencies.
func (m *Manifest) HasDependency(name string) bool {
	if m.Dependencies != nil {
		if _, ok := m.Dependencies.Get(name); ok {
			return true
		}
	}
	if m.DevDependencies != nil {
		if _, ok := m.DevDependencies.Get(name); ok {
			return true
		}
	}
	return false
}

func entries(om *orderedmap.OrderedMap[string, string]) []Entry {
	if om == nil {
		return nil
	}
	out := make([]Entry, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Name: pair.Key, Value: pair.Value})
	}
	return out
}
