package FD2D

import (
	"runtime"
	"sync"

	"github.com/notargets/goplume/utils"
)

// ParallelDegree is the number of goroutines used for the per-cell
// operator loops. Operators read only step-n fields and write only
// freshly allocated step-n+1 fields, so rows partition cleanly with no
// cross-cell synchronization.
var ParallelDegree = runtime.GOMAXPROCS(0)

// parRange runs work over [0,n) split into ParallelDegree contiguous
// row buckets and waits for completion.
func parRange(n int, work func(imin, imax int)) {
	var (
		np = ParallelDegree
	)
	if np > n {
		np = n
	}
	if np <= 1 {
		work(0, n)
		return
	}
	pm := utils.NewPartitionMap(np, n)
	wg := sync.WaitGroup{}
	for b := 0; b < np; b++ {
		imin, imax := pm.GetBucketRange(b)
		wg.Add(1)
		go func(imin, imax int) {
			defer wg.Done()
			work(imin, imax)
		}(imin, imax)
	}
	wg.Wait()
}
