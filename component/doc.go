// Package component implements the instance manager of a time series: one
// generator run as N parallel seeded instances, with the seeds, the instance
// count and the produced data kept mutually consistent.
//
// Invariants:
//
//   - For seed-required generators len(Seeds()) == Instances().
//   - Data is regenerated wholesale after every change of the instance count
//     (seeded generators only), a single seed, or the full seed set.
//   - Operations on a component with no owning Series are silent no-ops;
//     the owner can be bound later with Bind.
//
// Seeds drawn by SetInstances and RandomSeed come from a process-wide source
// (generator.DrawSeed by default) and are assigned in index order.
//
// A Component is not safe for concurrent use.
package component
