package diagram

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh identifier for a node ("node") or cluster
// ("cluster"). IDs only need to be unique within one diagram.
type IDGenerator func(prefix string) string

// RandomIDs returns a generator of random 32-character hex UUIDs.
func RandomIDs() IDGenerator {
	return func(string) string {
		u := uuid.New()
		return hex.EncodeToString(u[:])
	}
}

// SequentialIDs returns a generator of "node1", "node2", "cluster1", ...
// Use it when DOT output must be reproducible. It is not safe for
// concurrent use.
func SequentialIDs() IDGenerator {
	counters := make(map[string]int)
	return func(prefix string) string {
		counters[prefix]++
		return fmt.Sprintf("%s%d", prefix, counters[prefix])
	}
}
