package scene

import "github.com/vmihailenco/msgpack/v5"

// EncodeDescription serializes desc to the self-describing binary
// format used both for the on-disk ".cowscene" blob and the broker's
// scene:<sid> value (§3 BrokerKeyspace, §6 "Scene description").
func EncodeDescription(desc SceneDescription) ([]byte, error) {
	return msgpack.Marshal(&desc)
}

// DecodeDescription deserializes a blob produced by EncodeDescription.
func DecodeDescription(data []byte) (SceneDescription, error) {
	var desc SceneDescription
	err := msgpack.Unmarshal(data, &desc)
	return desc, err
}
