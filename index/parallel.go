package index

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DivideEvenly splits the range [0, n) into m contiguous partition sizes:
// the first m-1 are n/m, the last absorbs the remainder. Returns an empty
// slice for m == 0. Panics if m is out of [0, n].
func DivideEvenly(n, m int) []int {
	if m < 0 || m > n {
		panic(fmt.Sprintf("index: DivideEvenly(%d, %d): m out of [0, n]", n, m))
	}
	if m == 0 {
		return []int{}
	}
	sizes := make([]int, m)
	each := n / m
	for i := 0; i < m-1; i++ {
		sizes[i] = each
	}
	sizes[m-1] = n - (m-1)*each
	return sizes
}

// PEachIndexed runs f(i, coll[i]) for every index in [0, len(coll)),
// possibly concurrently across threads workers, each owning one contiguous
// index range produced by DivideEvenly. threads is clamped to
// min(threads, len(coll)); a threads value of zero or less yields no
// partitions, so f is never called and nil is returned. It returns only
// once every call has completed,
// and returns the first error any worker produced (via errgroup), which
// callers should treat as terminal.
func PEachIndexed[T any](ctx context.Context, f func(i int, v T) error, coll []T, threads int) error {
	n := len(coll)
	if threads > n {
		threads = n
	}
	if threads < 0 {
		threads = 0
	}
	sizes := DivideEvenly(n, threads)

	g, ctx := errgroup.WithContext(ctx)
	start := 0
	for _, size := range sizes {
		lo, hi := start, start+size
		start = hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := f(i, coll[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// BuildParallel is the concurrent counterpart to Build: it partitions the
// corpus across threads workers, each of which emits terms for its range
// and sets the corresponding bits in the shared, get-or-create Term→Bitset
// map. Worker failures (there are none today, but the shape is kept for
// parity with spec.md §4.8's "terminal error" requirement) abort the whole
// build and are returned wrapped in ErrBuildFailed.
func BuildParallel(ctx context.Context, corpus Corpus, threads int) (*Index, error) {
	idx := newIndex(uint(len(corpus)))
	err := PEachIndexed(ctx, func(i int, word string) error {
		indexWord(idx, uint(i), word)
		return nil
	}, []string(corpus), threads)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}
	return idx, nil
}
