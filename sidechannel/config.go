// Package sidechannel implements the optional reliable+unreliable
// dual-transport message queue used for the low-latency local display
// link (§4.8), bypassing the broker entirely. Grounded on the teacher's
// network package (network/config.go, network/transport.go,
// network/connection.go, network/protocol.go), adapted from a single
// TCP peer-to-peer game transport to a UDP-best-effort +
// TCP-reliable pairing.
package sidechannel

import "time"

// Role mirrors the teacher's network.Role: which side of the pairing this
// process plays.
type Role uint8

const (
	RoleNone Role = iota
	RoleServer
	RoleClient
)

// MaxUDPBatch is the maximum number of pixel updates coalesced into one
// UDP datagram (§4.8).
const MaxUDPBatch = 32

// Config holds the dual-transport configuration.
type Config struct {
	Role Role

	TCPAddress string
	UDPAddress string

	// UDPFlushInterval is how often a partially-filled UDP batch is
	// flushed even if it hasn't reached MaxUDPBatch (§4.8).
	UDPFlushInterval time.Duration

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

// DefaultConfig returns the dual-transport defaults used by the local
// display link, mirroring network.DefaultConfig's shape.
func DefaultConfig() *Config {
	return &Config{
		Role:             RoleNone,
		TCPAddress:       "127.0.0.1:30420",
		UDPAddress:       "127.0.0.1:30421",
		UDPFlushInterval: 20 * time.Millisecond,
		ConnectTimeout:   5 * time.Second,
		ReadTimeout:      30 * time.Second,
	}
}
