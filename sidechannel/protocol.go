package sidechannel

import (
	"encoding/binary"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// MessageType distinguishes the side-channel wire message variants.
type MessageType uint8

const (
	// MsgSetPixel carries one or more pixel updates.
	MsgSetPixel MessageType = iota
	// MsgStartStreaming requests the receiving side begin a streaming_render
	// session (supplemented feature, grounded on
	// original_source/turbocow/src/protocol/message.rs and streaming.rs).
	MsgStartStreaming
	// MsgBatchLarge wraps more than one pending message into a single TCP
	// frame, used by the reliable path whenever more than one message is
	// queued at flush time (§4.8).
	MsgBatchLarge
	// MsgClose is the sentinel written on both transports before the
	// connection is torn down (§4.8 lifecycle).
	MsgClose
	// MsgPing carries no payload; it is used by the connectivity_test
	// harness to exercise both transports end to end (supplemented
	// feature, grounded on
	// original_source/turbocow/src/protocol/connectivity_test.rs).
	MsgPing
)

// PixelUpdate is one (x,y,color) tuple.
type PixelUpdate struct {
	X, Y    uint32
	R, G, B uint8
}

// Message is a framed side-channel message. Batch is only populated on a
// MsgBatchLarge envelope, wrapping more than one pending message.
type Message struct {
	Type   MessageType
	Pixels []PixelUpdate `msgpack:",omitempty"`
	Batch  []Message     `msgpack:",omitempty"`
}

// Meta describes the delivery characteristics of a received message.
type Meta struct {
	GuaranteedDelivery bool
}

// encode serializes a message with msgpack, round-tripping arbitrary
// precision losslessly (§6 broker protocol; re-used here for the
// side-channel's own wire format).
func encode(m Message) ([]byte, error) {
	return msgpack.Marshal(&m)
}

func decodeMessage(data []byte) (Message, error) {
	var m Message
	err := msgpack.Unmarshal(data, &m)
	return m, err
}

// writeFrame writes a length-prefixed frame to w (TCP path): a 4-byte
// big-endian length followed by the msgpack payload.
func writeFrame(w io.Writer, payload []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// readFrame reads one length-prefixed frame from r.
func readFrame(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
