package workload

import "crypto/rand"

// randomPayload returns size bytes of random data, so a workload cannot be
// constant-folded against a fixed input.
func randomPayload(size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
