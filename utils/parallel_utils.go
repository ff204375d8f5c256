package utils

// PartitionMap splits an index range into contiguous buckets, one per
// worker goroutine. Bucket sizes differ by at most one.
type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// Split1D returns the [begin, end) index range of bucket n.
func (pm *PartitionMap) Split1D(n int) (r [2]int) {
	var (
		base = pm.MaxIndex / pm.ParallelDegree
		rem  = pm.MaxIndex % pm.ParallelDegree
	)
	begin := n * base
	if n < rem {
		begin += n
	} else {
		begin += rem
	}
	size := base
	if n < rem {
		size++
	}
	r = [2]int{begin, begin + size}
	return
}

func (pm *PartitionMap) GetBucketRange(n int) (imin, imax int) {
	imin, imax = pm.Partitions[n][0], pm.Partitions[n][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(n int) (size int) {
	size = pm.Partitions[n][1] - pm.Partitions[n][0]
	return
}
