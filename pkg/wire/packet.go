package wire

import (
	"fmt"
	"iter"
)

// Packet is a single CoAP message.
//
// A Packet is read-only after construction. Packets returned by FromBytes
// alias the decoded input: Token, option values and Payload are sub-slices
// of it, so the input must not be modified while the Packet is in use.
type Packet struct {
	version   uint8
	typ       Type
	class     Class
	messageID uint16
	token     []byte
	options   []Option
	payload   []byte

	// store backs options for decoded packets.
	store [MaxOptions]Option
}

// NewPacket builds a packet from its fields. The fields are stored as
// given: limits and option order are checked when the packet is encoded.
func NewPacket(typ Type, class Class, version uint8, messageID uint16, token []byte, options []Option, payload []byte) *Packet {
	if class == nil {
		class = EmptyClass{}
	}
	return &Packet{
		version:   version,
		typ:       typ,
		class:     class,
		messageID: messageID,
		token:     token,
		options:   options,
		payload:   payload,
	}
}

// Version returns the protocol version.
func (p *Packet) Version() uint8 { return p.version }

// Type returns the message type.
func (p *Packet) Type() Type { return p.typ }

// TokenLength returns the token length in bytes.
func (p *Packet) TokenLength() uint8 { return uint8(len(p.token)) }

// Class returns the decoded code.
func (p *Packet) Class() Class {
	if p.class == nil {
		return EmptyClass{}
	}
	return p.class
}

// Code returns the raw code byte.
func (p *Packet) Code() Code { return classCode(p.class) }

// MessageID returns the message ID.
func (p *Packet) MessageID() uint16 { return p.messageID }

// Token returns the token.
func (p *Packet) Token() []byte { return p.token }

// Options returns the options in wire order.
func (p *Packet) Options() []Option { return p.options }

// Payload returns the payload, or nil if there is none.
func (p *Packet) Payload() []byte { return p.payload }

// IsRequest returns true if the code is a request method.
func (p *Packet) IsRequest() bool {
	_, ok := p.Class().(RequestClass)
	return ok
}

// IsResponse returns true if the code is a response status.
func (p *Packet) IsResponse() bool {
	_, ok := p.Class().(ResponseClass)
	return ok
}

// OptionsByNumber yields every option with number n, in wire order.
func (p *Packet) OptionsByNumber(n OptionNumber) iter.Seq[Option] {
	return func(yield func(Option) bool) {
		for _, opt := range p.options {
			if opt.Number == n && !yield(opt) {
				return
			}
		}
	}
}

// FirstOption returns the first option with number n.
func (p *Packet) FirstOption(n OptionNumber) (Option, bool) {
	for _, opt := range p.options {
		if opt.Number == n {
			return opt, true
		}
	}
	return Option{}, false
}

// ContentFormat returns the Content-Format option value. The boolean is
// false if the option is absent.
func (p *Packet) ContentFormat() (ContentFormat, bool, error) {
	opt, ok := p.FirstOption(OptionContentFormat)
	if !ok {
		return 0, false, nil
	}
	v, err := OptionUint[uint16](opt.Value)
	if err != nil {
		return 0, true, fmt.Errorf("content format: %w", err)
	}
	return ContentFormat(v), true, nil
}

// ObserveValue returns the Observe option value. The boolean is false if
// the option is absent.
func (p *Packet) ObserveValue() (uint32, bool, error) {
	opt, ok := p.FirstOption(OptionObserve)
	if !ok {
		return 0, false, nil
	}
	v, err := OptionUint[uint32](opt.Value)
	if err != nil {
		return 0, true, fmt.Errorf("observe: %w", err)
	}
	return v, true, nil
}

// String returns a short description for logging.
func (p *Packet) String() string {
	return fmt.Sprintf("%s %s mid=%d token=%x options=%d payload=%d",
		p.typ, p.Code(), p.messageID, p.token, len(p.options), len(p.payload))
}
