// Package pqindex implements a generic indexed min-priority-queue: a
// keyed map combined with a binary heap so that, in addition to the usual
// push/pop-min operations, a caller can look up, mutate, or reprioritize
// the entry for any key in O(log n) time.
//
// The heap mechanics are the standard container/heap.Interface shape used
// for priority queues in graph algorithms; the difference here is that
// every heap element also lives at a known index in a side map, so
// "decrease the priority of vertex v" is a direct operation instead of a
// push-a-duplicate-and-ignore-stale-entries trick.
package pqindex
