// Package broker defines the abstract broker protocol (§6 EXTERNAL
// INTERFACES "Broker protocol") the distributed coordinator, worker, and
// display speak: an ordered list with atomic lpush, a counted tail pop
// (rpop of up to n items) and llen, a TTL-less key-value get/set, and an
// atomic counter increment. There is no rpush or head pop (lpop). The
// concrete implementation is Redis (github.com/redis/go-redis/v9),
// grounded on original_source/turbocow/src/distributed/runner.rs's
// redis::Commands / redis::pipe() usage — the teacher repo has no
// analogous component, since it has no distributed subsystem at all.
package broker

import (
	"context"
	"strconv"
)

// Broker is the minimal set of operations the distributed subsystem
// needs from a shared-state backend (§4.5-§4.7, §6).
type Broker interface {
	// LPush prepends values to the list at key.
	LPush(ctx context.Context, key string, values ...[]byte) error
	// RPopN pipelined-pops up to n values from the tail of the list at
	// key, returning fewer if the list is shorter. Used by the worker's
	// task-IO task and the display's pixel drain (§4.6, §4.7).
	RPopN(ctx context.Context, key string, n int) ([][]byte, error)
	// LLen returns the current length of the list at key.
	LLen(ctx context.Context, key string) (int64, error)

	// Get fetches the value at key; ok is false if the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value at key with no expiry.
	Set(ctx context.Context, key string, value []byte) error

	// Incr atomically increments the counter at key and returns the new
	// value.
	Incr(ctx context.Context, key string) (int64, error)

	// ScanDeletePrefix deletes every key beginning with prefix (§4.5 reset).
	ScanDeletePrefix(ctx context.Context, prefix string) error

	// Close releases the broker connection.
	Close() error
}

// Keyspace names the well-known broker keys (§3 BrokerKeyspace).
const (
	KeyTaskIDCounter = "turbocow:task_id_counter"
	KeyTasks         = "turbocow:tasks"
	KeyPixels        = "turbocow:pixels"
	ScenePrefix      = "turbocow:scene:"
	KeyPrefix        = "turbocow:"
)

// SceneKey returns the broker key holding the serialized scene for sid.
func SceneKey(sid uint64) string {
	return ScenePrefix + strconv.FormatUint(sid, 10)
}
