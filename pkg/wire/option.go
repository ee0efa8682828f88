package wire

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
)

// OptionNumber identifies an option. Numbers are cumulative deltas on the
// wire and may exceed 65535.
type OptionNumber uint32

// Registered option numbers.
const (
	OptionIfMatch       OptionNumber = 1
	OptionURIHost       OptionNumber = 3
	OptionETag          OptionNumber = 4
	OptionIfNoneMatch   OptionNumber = 5
	OptionObserve       OptionNumber = 6
	OptionURIPort       OptionNumber = 7
	OptionLocationPath  OptionNumber = 8
	OptionOSCORE        OptionNumber = 9
	OptionURIPath       OptionNumber = 11
	OptionContentFormat OptionNumber = 12
	OptionMaxAge        OptionNumber = 14
	OptionURIQuery      OptionNumber = 15
	OptionAccept        OptionNumber = 17
	OptionLocationQuery OptionNumber = 20
	OptionBlock2        OptionNumber = 23
	OptionBlock1        OptionNumber = 27
	OptionSize2         OptionNumber = 28
	OptionProxyURI      OptionNumber = 35
	OptionProxyScheme   OptionNumber = 39
	OptionSize1         OptionNumber = 60
	OptionNoResponse    OptionNumber = 258
)

var optionNames = map[OptionNumber]string{
	OptionIfMatch:       "If-Match",
	OptionURIHost:       "Uri-Host",
	OptionETag:          "ETag",
	OptionIfNoneMatch:   "If-None-Match",
	OptionObserve:       "Observe",
	OptionURIPort:       "Uri-Port",
	OptionLocationPath:  "Location-Path",
	OptionOSCORE:        "OSCORE",
	OptionURIPath:       "Uri-Path",
	OptionContentFormat: "Content-Format",
	OptionMaxAge:        "Max-Age",
	OptionURIQuery:      "Uri-Query",
	OptionAccept:        "Accept",
	OptionLocationQuery: "Location-Query",
	OptionBlock2:        "Block2",
	OptionBlock1:        "Block1",
	OptionSize2:         "Size2",
	OptionProxyURI:      "Proxy-Uri",
	OptionProxyScheme:   "Proxy-Scheme",
	OptionSize1:         "Size1",
	OptionNoResponse:    "No-Response",
}

// String returns the registered option name, or "Option(n)".
func (n OptionNumber) String() string {
	if name, ok := optionNames[n]; ok {
		return name
	}
	return "Option(" + strconv.FormatUint(uint64(n), 10) + ")"
}

// IsRegistered returns true if n is a registered option number.
func (n OptionNumber) IsRegistered() bool {
	_, ok := optionNames[n]
	return ok
}

// Critical returns true if an endpoint must understand the option.
func (n OptionNumber) Critical() bool { return n&0x01 != 0 }

// Unsafe returns true if a proxy must understand the option to forward it.
func (n OptionNumber) Unsafe() bool { return n&0x02 != 0 }

// NoCacheKey returns true if the option is not part of the cache key.
func (n OptionNumber) NoCacheKey() bool { return n&0x1E == 0x1C }

// Option is a single option. Value is opaque; its interpretation depends
// on Number.
type Option struct {
	Number OptionNumber
	Value  []byte
}

// String returns the option as name=value for logging.
func (o Option) String() string {
	return fmt.Sprintf("%s=%x", o.Number, o.Value)
}

// StringOption builds an option with a string value.
func StringOption(n OptionNumber, s string) Option {
	return Option{Number: n, Value: []byte(s)}
}

// UintOption builds an option carrying v in the shortest big-endian form.
// Zero encodes as an empty value.
func UintOption(n OptionNumber, v uint32) Option {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return Option{Number: n, Value: slices.Clone(buf[i:])}
}

// OptionUint decodes a big-endian unsigned option value into T.
// Leading zero bytes are accepted. A value that does not fit T returns
// ErrIncompatibleOptionValue.
func OptionUint[T ~uint8 | ~uint16 | ~uint32 | ~uint64](value []byte) (T, error) {
	var v uint64
	for i, b := range value {
		if v > 0x00FFFFFFFFFFFFFF {
			return 0, fmt.Errorf("%w: %d bytes at byte %d", ErrIncompatibleOptionValue, len(value), i)
		}
		v = v<<8 | uint64(b)
	}
	if uint64(T(v)) != v {
		return 0, fmt.Errorf("%w: %d overflows target", ErrIncompatibleOptionValue, v)
	}
	return T(v), nil
}

// SortOptions orders options by number. The sort is stable, so repeated
// options keep their relative order.
func SortOptions(opts []Option) {
	slices.SortStableFunc(opts, func(a, b Option) int {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		default:
			return 0
		}
	})
}

// fieldNibble returns the 4-bit nibble and extension length for an option
// delta or value length.
func fieldNibble(v uint32) (nibble uint8, extLen int) {
	switch {
	case v < oneByteBase:
		return uint8(v), 0
	case v < twoByteBase:
		return nibbleOneByte, 1
	default:
		return nibbleTwoBytes, 2
	}
}

// putExtension writes the extension bytes for v into dst.
func putExtension(dst []byte, v uint32, extLen int) int {
	switch extLen {
	case 1:
		dst[0] = byte(v - oneByteBase)
	case 2:
		binary.BigEndian.PutUint16(dst, uint16(v-twoByteBase))
	}
	return extLen
}

// readExtension decodes a delta or length field from its nibble and the
// bytes that follow the option header. It returns the value and how many
// extension bytes it consumed.
func readExtension(buf []byte, nibble uint8) (uint32, int, error) {
	switch nibble {
	case nibbleOneByte:
		if len(buf) < 1 {
			return 0, 0, ErrTruncated
		}
		return uint32(buf[0]) + oneByteBase, 1, nil
	case nibbleTwoBytes:
		if len(buf) < 2 {
			return 0, 0, ErrTruncated
		}
		return uint32(binary.BigEndian.Uint16(buf)) + twoByteBase, 2, nil
	case nibbleReserved:
		return 0, 0, ErrMalformedOption
	default:
		return uint32(nibble), 0, nil
	}
}

// encodedOptionSize returns the encoded size of an option given its delta.
func encodedOptionSize(delta uint32, valueLen int) int {
	_, dext := fieldNibble(delta)
	_, lext := fieldNibble(uint32(valueLen))
	return 1 + dext + lext + valueLen
}
