package workload

import (
	"crypto/sha256"

	"gobench/bench"
)

// newSHA256 hashes a random block per invocation.
func newSHA256(cfg Config) (Workload, error) {
	data, err := randomPayload(cfg.Size)
	if err != nil {
		return Workload{}, err
	}
	return Workload{
		Name:  "sha256",
		Bytes: uint64(cfg.Size),
		Fn: func() {
			sum := sha256.Sum256(data)
			bench.KeepAlive(sum)
		},
	}, nil
}
