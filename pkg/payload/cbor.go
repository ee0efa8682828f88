// Package payload encodes and decodes application/cbor message bodies.
//
// The codec in package wire treats payloads as opaque bytes. This package
// pairs a CBOR body with its Content-Format option so that handlers can
// build and read structured CoAP messages.
package payload

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// encMode is the CBOR encoder mode for message bodies.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for message bodies.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create payload CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility; bounded to one packet.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		MaxArrayElements:  wire.PacketMaxSize,
		MaxMapPairs:       wire.PacketMaxSize,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create payload CBOR decoder mode: %v", err))
	}
}

// MaxBodySize is the largest body that fits a packet after the fixed
// header and the payload marker.
const MaxBodySize = wire.PacketMaxSize - 5

// Payload errors.
var (
	ErrEmpty                   = errors.New("payload: empty body")
	ErrUnexpectedContentFormat = errors.New("payload: unexpected content format")
)

// Marshal encodes v to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// ContentFormatOption returns the Content-Format option for CBOR bodies.
func ContentFormatOption() wire.Option {
	return wire.UintOption(wire.OptionContentFormat, uint32(wire.ApplicationCBOR))
}

// Encode encodes v as a message body and returns it with its
// Content-Format option.
func Encode(v any) ([]byte, wire.Option, error) {
	body, err := Marshal(v)
	if err != nil {
		return nil, wire.Option{}, fmt.Errorf("failed to encode payload: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, wire.Option{}, fmt.Errorf("%w: payload of %d bytes", wire.ErrCapacityExceeded, len(body))
	}
	return body, ContentFormatOption(), nil
}

// Decode decodes the body of p into v. The packet must carry a
// Content-Format option of application/cbor and a non-empty payload.
func Decode(p *wire.Packet, v any) error {
	cf, ok, err := p.ContentFormat()
	if err != nil {
		return fmt.Errorf("%w: %w", wire.ErrInvalidContentFormat, err)
	}
	if !ok {
		return fmt.Errorf("%w: none", ErrUnexpectedContentFormat)
	}
	if cf != wire.ApplicationCBOR {
		return fmt.Errorf("%w: %s", ErrUnexpectedContentFormat, cf)
	}
	if len(p.Payload()) == 0 {
		return ErrEmpty
	}
	if err := Unmarshal(p.Payload(), v); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
