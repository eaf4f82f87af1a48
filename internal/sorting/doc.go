// Package sorting implements the animated sorting algorithms.
//
// Every algorithm is a textbook in-place sort instrumented the same way: it
// polls input, performs one comparison or move, reports a [Frame] to its
// [Driver] and pauses. The context passed to [Run] is the cancellation token
// and is checked at every loop condition.
//
//   - [Algorithm]: selection, bubble, insertion, merge, quick, heap, shell
//   - [Frame]: one step event with its highlight roles
//   - [Complete]: the sweep and flash played after a finished sort
//
// # Example
//
//	alg, _ := sorting.Lookup("quick")
//	outcome := sorting.Run(ctx, alg, arr, driver, sorting.DefaultTiming())
//
// # Cancellation
//
// A cancelled run stops at the next check. The step in flight completes and
// the array is left as a permutation of its original elements, unsorted.
package sorting
