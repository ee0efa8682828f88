package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// RunDecode decodes a hex datagram and prints the packet in the same
// layout as the view command.
func RunDecode(hexData string, w io.Writer) error {
	data, err := parseHex(hexData)
	if err != nil {
		return err
	}

	p, err := wire.FromBytes(data)
	if err != nil {
		return fmt.Errorf("failed to decode datagram: %w", err)
	}

	msg := log.NewMessageEvent(p, len(data))
	fmt.Fprintf(w, "%s %s (v%d, %d bytes)\n", msg.Type, codeLabel(msg.Code), p.Version(), len(data))
	formatMessageDetails(w, msg)
	return nil
}

// parseHex decodes hex digits, ignoring whitespace and an optional 0x prefix.
func parseHex(s string) ([]byte, error) {
	digits := strings.Join(strings.Fields(s), "")
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	data, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("invalid hex datagram: %w", err)
	}
	return data, nil
}
