package broker

import (
	"github.com/lixenwraith/turbocow/scene"
	"github.com/vmihailenco/msgpack/v5"
)

// ProcessPixel is one task queue entry (§3 DistributedMessage).
type ProcessPixel struct {
	SceneID uint64
	X, Y    uint32
}

// SetPixel is one pixel-result queue entry (§3 DistributedMessage).
type SetPixel struct {
	SceneID uint64
	X, Y    uint32
	R, G, B uint8
}

// EncodeTask serializes a ProcessPixel with msgpack, a self-describing
// binary format that round-trips arbitrary precision losslessly (§6
// "Broker protocol").
func EncodeTask(t ProcessPixel) ([]byte, error) { return msgpack.Marshal(&t) }

// DecodeTask deserializes a ProcessPixel.
func DecodeTask(data []byte) (ProcessPixel, error) {
	var t ProcessPixel
	err := msgpack.Unmarshal(data, &t)
	return t, err
}

// EncodePixel serializes a SetPixel.
func EncodePixel(p SetPixel) ([]byte, error) { return msgpack.Marshal(&p) }

// DecodePixel deserializes a SetPixel.
func DecodePixel(data []byte) (SetPixel, error) {
	var p SetPixel
	err := msgpack.Unmarshal(data, &p)
	return p, err
}

// EncodeScene serializes a scene.SceneDescription for storage at
// scene:<sid>.
func EncodeScene(desc scene.SceneDescription) ([]byte, error) {
	return scene.EncodeDescription(desc)
}

// DecodeScene deserializes a scene.SceneDescription.
func DecodeScene(data []byte) (scene.SceneDescription, error) {
	return scene.DecodeDescription(data)
}
