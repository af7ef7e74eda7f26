package sidechannel

import "sync/atomic"

// ConnState is the per-transport lifecycle state (§4.8 "State machine").
type ConnState int32

const (
	StateIdle ConnState = iota
	StateConnected
	StateDraining
	StateClosed
)

// connState wraps an atomic ConnState, mirroring the teacher's
// network.Peer atomic state field (network/connection.go).
type connState struct {
	v atomic.Int32
}

func (s *connState) set(v ConnState) { s.v.Store(int32(v)) }
func (s *connState) get() ConnState  { return ConnState(s.v.Load()) }
