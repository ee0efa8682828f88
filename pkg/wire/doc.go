// Package wire implements the CoAP message format (RFC 7252, section 3).
//
// The codec translates between a datagram and a Packet without growing any
// container: options are collected into a fixed-capacity store, decoded
// token, option values and payload are sub-slices of the input, and the
// encoder writes into a caller-supplied fixed.Buffer.
//
// # Message Layout
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|Ver| T |  TKL  |      Code     |          Message ID           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Token (if any, TKL bytes) ...
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Options (if any) ...
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|1 1 1 1 1 1 1 1|    Payload (if any) ...
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// # Limits
//
// Packets are bounded by PacketMaxSize bytes and MaxOptions options.
// Request paths assembled from Uri-Path options are bounded by PathMaxSize.
// Exceeding a limit is an error; nothing is truncated silently.
//
// # Errors
//
// All failures are reported through the sentinel errors in errors.go and
// can be matched with errors.Is. The codec never logs and never panics on
// untrusted input.
package wire
