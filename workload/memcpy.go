package workload

import "gobench/bench"

// newMemcpy copies a random block into a fixed destination per invocation.
func newMemcpy(cfg Config) (Workload, error) {
	src, err := randomPayload(cfg.Size)
	if err != nil {
		return Workload{}, err
	}
	dst := make([]byte, cfg.Size)
	return Workload{
		Name:  "memcpy",
		Bytes: uint64(cfg.Size),
		Fn: func() {
			copy(dst, src)
			bench.KeepAlive(dst)
		},
	}, nil
}
