package wire

const (
	// Version is the only protocol version this codec accepts.
	Version uint8 = 1

	// PacketMaxSize is the largest encoded packet, in bytes.
	PacketMaxSize = 4096

	// MaxOptions is the largest number of options a packet may carry.
	MaxOptions = 32

	// PathMaxSize is the largest request path assembled from Uri-Path options.
	PathMaxSize = 128

	// MaxTokenLength is the largest token, in bytes.
	MaxTokenLength = 8

	// PayloadMarker separates the options from the payload.
	PayloadMarker byte = 0xFF

	// headerSize is the fixed header: version/type/TKL, code, message ID.
	headerSize = 4
)

// Option delta and length fields use a 4-bit nibble with up to two
// extension bytes.
const (
	nibbleOneByte  = 13
	nibbleTwoBytes = 14
	nibbleReserved = 15

	oneByteBase = 13
	twoByteBase = 269

	// maxOptionField is the largest delta or value length that fits in the
	// two-byte extension.
	maxOptionField = twoByteBase + 0xFFFF
)
