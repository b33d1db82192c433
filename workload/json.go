package workload

import (
	"encoding/hex"
	"encoding/json"

	"gobench/bench"
)

type jsonRecord struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Payload string `json:"payload"`
	Active  bool   `json:"active"`
}

// newJSON marshals a fixture slice per invocation. Bytes reports the actual
// encoded size, measured once up front.
func newJSON(cfg Config) (Workload, error) {
	// Each record encodes to roughly 96 bytes.
	n := cfg.Size/96 + 1
	raw, err := randomPayload(16)
	if err != nil {
		return Workload{}, err
	}
	name := hex.EncodeToString(raw)

	records := make([]jsonRecord, n)
	for i := range records {
		records[i] = jsonRecord{
			ID:      i,
			Name:    name,
			Payload: name[:16],
			Active:  i%2 == 0,
		}
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return Workload{}, err
	}
	return Workload{
		Name:  "json",
		Bytes: uint64(len(encoded)),
		Fn: func() {
			out, _ := json.Marshal(records)
			bench.KeepAlive(out)
		},
	}, nil
}
