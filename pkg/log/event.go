package log

import (
	"time"

	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ExchangeID identifies the request/response exchange (UUID).
	ExchangeID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// LocalRole indicates whether this endpoint is a client or server.
	LocalRole Role `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the peer address (IP:port).
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Datagram *DatagramEvent  `cbor:"10,keyasint,omitempty"` // Transport layer
	Message  *MessageEvent   `cbor:"11,keyasint,omitempty"` // Wire layer (decoded)
	Error    *ErrorEventData `cbor:"12,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer captured the event.
type Layer uint8

const (
	// LayerTransport is the datagram layer (raw bytes).
	LayerTransport Layer = 0
	// LayerWire is the message layer (decoded packet).
	LayerWire Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a protocol message.
	CategoryMessage Category = 0
	// CategoryError indicates an error event.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Role indicates whether the local endpoint is a client or server.
type Role uint8

const (
	// RoleClient indicates this endpoint sends requests.
	RoleClient Role = 0
	// RoleServer indicates this endpoint answers requests.
	RoleServer Role = 1
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleClient:
		return "CLIENT"
	case RoleServer:
		return "SERVER"
	default:
		return "UNKNOWN"
	}
}

// DatagramEvent captures raw datagram bytes at the transport layer.
type DatagramEvent struct {
	// Size is the datagram size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw bytes (may be truncated for large datagrams).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MessageEvent captures a decoded packet at the wire layer.
type MessageEvent struct {
	// Type is the message type (CON/NON/ACK/RST).
	Type wire.Type `cbor:"1,keyasint"`

	// Code is the raw code byte.
	Code wire.Code `cbor:"2,keyasint"`

	// MessageID is used for deduplication and ACK matching.
	MessageID uint16 `cbor:"3,keyasint"`

	// Token correlates requests and responses.
	Token []byte `cbor:"4,keyasint,omitempty"`

	// Options in wire order.
	Options []OptionEvent `cbor:"5,keyasint,omitempty"`

	// PayloadSize is the full payload length.
	PayloadSize int `cbor:"6,keyasint,omitempty"`

	// Payload bytes (may be truncated).
	Payload []byte `cbor:"7,keyasint,omitempty"`

	// ContentFormat if the Content-Format option is present and valid.
	ContentFormat *wire.ContentFormat `cbor:"8,keyasint,omitempty"`

	// Path is the joined Uri-Path for requests.
	Path string `cbor:"9,keyasint,omitempty"`
}

// OptionEvent captures a single option.
type OptionEvent struct {
	Number wire.OptionNumber `cbor:"1,keyasint"`
	Value  []byte            `cbor:"2,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the response status to report for the error (if applicable).
	Code *wire.Code `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}

// NewDatagramEvent captures data, keeping at most maxData bytes.
// A maxData of zero or less keeps nothing but the size.
func NewDatagramEvent(data []byte, maxData int) *DatagramEvent {
	kept, truncated := truncate(data, maxData)
	return &DatagramEvent{
		Size:      len(data),
		Data:      kept,
		Truncated: truncated,
	}
}

// NewMessageEvent captures the header, options and payload of p.
// Payload bytes beyond maxData are dropped; all slices are copied.
func NewMessageEvent(p *wire.Packet, maxData int) *MessageEvent {
	ev := &MessageEvent{
		Type:        p.Type(),
		Code:        p.Code(),
		MessageID:   p.MessageID(),
		Token:       clone(p.Token()),
		PayloadSize: len(p.Payload()),
	}
	ev.Payload, _ = truncate(p.Payload(), maxData)

	for _, opt := range p.Options() {
		ev.Options = append(ev.Options, OptionEvent{Number: opt.Number, Value: clone(opt.Value)})
	}
	if cf, ok, err := p.ContentFormat(); ok && err == nil {
		ev.ContentFormat = &cf
	}
	if p.IsRequest() {
		if path, err := wire.NewRequest(p, nil).Path(); err == nil {
			ev.Path = path
		}
	}
	return ev
}

func truncate(data []byte, max int) ([]byte, bool) {
	if max <= 0 {
		return nil, len(data) > 0
	}
	if len(data) > max {
		return clone(data[:max]), true
	}
	return clone(data), false
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
