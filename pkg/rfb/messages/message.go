package messages

// Message is an interface implemented by client -> server messages. Encode
// packs the full wire form, message type byte included, so a message can be
// queued as bytes and written later without touching protocol state.
type Message interface {
	Code() uint8
	Encode() []byte
}
