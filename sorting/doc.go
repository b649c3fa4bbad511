// Package sorting provides instrumented comparison and distribution sorts
// that emit a replayable step trace instead of just a sorted slice.
//
// Algorithms:
//
//	Bubble, Selection, Insertion, Quick (Lomuto), Heap — comparison sorts.
//	Merge  — top-down merge sort with an auxiliary buffer.
//	Bucket — one bucket per element, values normalized to [0,1].
//	Radix  — LSD radix sort, base 10, non-negative integers only.
//
// What is recorded:
//
//   - comparison sorts: a step at every comparison, every swap, and at the
//     close of every pass / partition / heapify call. Indices are tagged
//     with RoleComparing, RoleSwapping, RolePivot, RoleHeapRoot, RoleSorted.
//   - merge sort: additional steps for split boundaries (RoleRange), the
//     copy of a run into the auxiliary buffer and every write back into the
//     main array. RoleAuxiliary indices address State.Aux.
//   - bucket / radix sort: steps for every bucket assignment, bucket sort
//     completion and every gathered element. RoleBucket indices address
//     State.Buckets, the full bucket-of-buckets structure is snapshotted.
//
// Bucket index policy:
//
//	idx = floor(n · (v − min) / (max − min)), clamped to n − 1.
//	The maximum element therefore lands in the last bucket through the clamp;
//	when every value is equal all of them go to bucket 0.
//
// Errors:
//
//   - ErrEmptyInput       — nothing to sort.
//   - ErrNegativeValue    — Radix only accepts values ≥ 0.
//   - ErrUnknownAlgorithm — Run was given an Algorithm outside the enum.
//
// All of them match trace.ErrInvalidInput.
//
// Complexity is the textbook one of each algorithm in time; memory is
// O(steps · n) because every step owns a copy of the array.
package sorting
