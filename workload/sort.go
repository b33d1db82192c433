package workload

import (
	"encoding/binary"
	"slices"

	"gobench/bench"
)

// newSort sorts a shuffled int64 slice per invocation. The source slice is
// copied into scratch space first, so every invocation sorts the same
// unsorted input; the copy is part of the measured work.
func newSort(cfg Config) (Workload, error) {
	n := cfg.Size / 8
	if n < 2 {
		n = 2
	}
	raw, err := randomPayload(n * 8)
	if err != nil {
		return Workload{}, err
	}
	src := make([]int64, n)
	for i := range src {
		src[i] = int64(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	scratch := make([]int64, n)
	return Workload{
		Name:  "sort",
		Bytes: uint64(n * 8),
		Fn: func() {
			copy(scratch, src)
			slices.Sort(scratch)
			bench.KeepAlive(scratch)
		},
	}, nil
}
