package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mash-protocol/mash-coap/pkg/fixed"
)

// FromBytes decodes a packet from buf.
// Decoding fails fast: on error no Packet is returned.
func FromBytes(buf []byte) (*Packet, error) {
	p := new(Packet)
	if err := Decode(buf, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Decode decodes buf into p, reusing p's option storage.
// On error p is left unchanged.
func Decode(buf []byte, p *Packet) error {
	if len(buf) > PacketMaxSize {
		return fmt.Errorf("%w: packet is %d bytes, limit %d", ErrCapacityExceeded, len(buf), PacketMaxSize)
	}
	if len(buf) < headerSize {
		return fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(buf), headerSize)
	}

	version := buf[0] >> 6
	if version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	typ := Type(buf[0] >> 4 & 0x03)
	tkl := int(buf[0] & 0x0F)
	if tkl > MaxTokenLength {
		return fmt.Errorf("%w: %d", ErrInvalidTokenLength, tkl)
	}
	code := Code(buf[1])
	messageID := binary.BigEndian.Uint16(buf[2:4])

	pos := headerSize
	if len(buf)-pos < tkl {
		return fmt.Errorf("%w: token needs %d bytes, %d remain", ErrTruncated, tkl, len(buf)-pos)
	}
	token := buf[pos : pos+tkl : pos+tkl]
	pos += tkl

	var store [MaxOptions]Option
	opts := fixed.From(store[:])
	var number uint32
	for pos < len(buf) && buf[pos] != PayloadMarker {
		start := pos
		hdr := buf[pos]
		pos++

		delta, n, err := readExtension(buf[pos:], hdr>>4)
		if err != nil {
			return optionError(err, "delta", opts.Len(), start)
		}
		pos += n

		length, n, err := readExtension(buf[pos:], hdr&0x0F)
		if err != nil {
			return optionError(err, "length", opts.Len(), start)
		}
		pos += n

		if uint32(len(buf)-pos) < length {
			return fmt.Errorf("%w: %w: option %d value needs %d bytes, %d remain",
				ErrMalformedOption, ErrTruncated, opts.Len(), length, len(buf)-pos)
		}

		number += delta
		end := pos + int(length)
		if err := opts.Push(Option{Number: OptionNumber(number), Value: buf[pos:end:end]}); err != nil {
			return fmt.Errorf("%w: more than %d options", ErrCapacityExceeded, MaxOptions)
		}
		pos = end
	}

	var payload []byte
	if pos < len(buf) {
		pos++ // marker
		if pos == len(buf) {
			return fmt.Errorf("%w: payload marker without payload", ErrMalformed)
		}
		payload = buf[pos:]
	}

	p.version = version
	p.typ = typ
	p.class = ClassFromCode(code)
	p.messageID = messageID
	p.token = token
	p.store = store
	n := opts.Len()
	p.options = p.store[:n:n]
	p.payload = payload
	return nil
}

func optionError(err error, field string, index, offset int) error {
	if errors.Is(err, ErrTruncated) {
		return fmt.Errorf("%w: %w: option %d %s extension at offset %d",
			ErrMalformedOption, ErrTruncated, index, field, offset)
	}
	return fmt.Errorf("%w: option %d reserved %s nibble at offset %d",
		ErrMalformedOption, index, field, offset)
}

// Size returns the encoded size of p, or the error ToBytes would return.
func (p *Packet) Size() (int, error) {
	if p.version != Version {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.version)
	}
	if !p.typ.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidType, p.typ)
	}
	if err := validateClass(p.class); err != nil {
		return 0, err
	}
	if len(p.token) > MaxTokenLength {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTokenLength, len(p.token))
	}
	if len(p.options) > MaxOptions {
		return 0, fmt.Errorf("%w: %d options, limit %d", ErrCapacityExceeded, len(p.options), MaxOptions)
	}

	size := headerSize + len(p.token)
	var prev OptionNumber
	for i, opt := range p.options {
		if opt.Number < prev {
			return 0, fmt.Errorf("%w: option %d (%s) follows %s", ErrInvalidOptionOrder, i, opt.Number, prev)
		}
		delta := uint32(opt.Number - prev)
		if delta > maxOptionField {
			return 0, fmt.Errorf("%w: option %d delta %d", ErrOptionTooLarge, i, delta)
		}
		if len(opt.Value) > maxOptionField {
			return 0, fmt.Errorf("%w: option %d length %d", ErrOptionTooLarge, i, len(opt.Value))
		}
		size += encodedOptionSize(delta, len(opt.Value))
		prev = opt.Number
	}
	if len(p.payload) > 0 {
		size += 1 + len(p.payload)
	}
	if size > PacketMaxSize {
		return 0, fmt.Errorf("%w: packet is %d bytes, limit %d", ErrCapacityExceeded, size, PacketMaxSize)
	}
	return size, nil
}

// ToBytes appends the encoded packet to out.
// Everything is validated before the first byte is written, so on error
// out is unchanged.
func (p *Packet) ToBytes(out *fixed.Buffer) error {
	size, err := p.Size()
	if err != nil {
		return err
	}
	if size > out.Remaining() {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrBufferTooSmall, size, out.Remaining())
	}

	mark := out.Len()
	if err := p.encode(out); err != nil {
		out.Truncate(mark)
		return fmt.Errorf("%w: %w", ErrBufferTooSmall, err)
	}
	return nil
}

// Marshal encodes p into a new slice.
func (p *Packet) Marshal() ([]byte, error) {
	out := fixed.NewBuffer(PacketMaxSize)
	if err := p.ToBytes(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (p *Packet) encode(out *fixed.Buffer) error {
	var hdr [headerSize]byte
	hdr[0] = p.version<<6 | uint8(p.typ)<<4 | uint8(len(p.token))
	hdr[1] = byte(p.Code())
	binary.BigEndian.PutUint16(hdr[2:], p.messageID)
	if _, err := out.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := out.Write(p.token); err != nil {
		return err
	}

	var prev OptionNumber
	for _, opt := range p.options {
		if err := writeOption(out, uint32(opt.Number-prev), opt.Value); err != nil {
			return err
		}
		prev = opt.Number
	}

	if len(p.payload) > 0 {
		if err := out.WriteByte(PayloadMarker); err != nil {
			return err
		}
		if _, err := out.Write(p.payload); err != nil {
			return err
		}
	}
	return nil
}

func writeOption(out *fixed.Buffer, delta uint32, value []byte) error {
	dn, dext := fieldNibble(delta)
	ln, lext := fieldNibble(uint32(len(value)))

	var hdr [5]byte
	hdr[0] = dn<<4 | ln
	n := 1
	n += putExtension(hdr[n:], delta, dext)
	n += putExtension(hdr[n:], uint32(len(value)), lext)

	if _, err := out.Write(hdr[:n]); err != nil {
		return err
	}
	_, err := out.Write(value)
	return err
}
