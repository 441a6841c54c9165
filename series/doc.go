// Package series provides the time-series container that owns components.
//
// A Series mints component identities (UUIDs), proposes per-kind display
// names ("Normal 1", "Normal 2", ...), keeps a Compositor naming registry in
// sync with renames, and recomputes a composite whenever a component asks it
// to: composite[i] is the element-wise sum, over visible components, of each
// component's instance i (components that are not seed-required contribute
// their single shared series to every index).
//
// Series are described declaratively in YAML (see Spec) and round-trip
// through JSON as {id, name, samples, components}.
package series
