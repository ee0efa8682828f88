// Package commands implements the coap-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/mash-protocol/mash-coap/pkg/log"
	"github.com/mash-protocol/mash-coap/pkg/wire"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [ex:id] DIRECTION LAYER Label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	exID := shortenExchangeID(event.ExchangeID)

	var label string
	switch {
	case event.Datagram != nil:
		label = "Datagram"
	case event.Message != nil:
		label = event.Message.Type.String() + " " + codeLabel(event.Message.Code)
	case event.Error != nil:
		label = "Error"
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [ex:%s] %-3s %s %s", ts, exID, event.Direction, event.Layer, label)
	if event.RemoteAddr != "" {
		fmt.Fprintf(w, " %s", event.RemoteAddr)
	}
	fmt.Fprintln(w)

	switch {
	case event.Datagram != nil:
		formatDatagramDetails(w, event.Datagram)
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenExchangeID returns the first 8 characters of the exchange ID.
func shortenExchangeID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// codeLabel names a code by its method or status, falling back to c.dd.
func codeLabel(c wire.Code) string {
	switch class := wire.ClassFromCode(c).(type) {
	case wire.EmptyClass:
		return "Empty"
	case wire.RequestClass:
		return class.Method.String()
	case wire.ResponseClass:
		return c.String() + " " + class.Status.String()
	default:
		return c.String()
	}
}

func formatDatagramDetails(w io.Writer, d *log.DatagramEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", d.Size)
	if len(d.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(d.Data))
		if d.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	fmt.Fprintf(w, "  MessageID: %d\n", msg.MessageID)
	if len(msg.Token) > 0 {
		fmt.Fprintf(w, "  Token: %x\n", msg.Token)
	}
	if msg.Path != "" {
		fmt.Fprintf(w, "  Path: /%s\n", msg.Path)
	}
	for _, opt := range msg.Options {
		fmt.Fprintf(w, "  Option %s: %s\n", opt.Number, optionValue(opt))
	}
	if msg.ContentFormat != nil {
		fmt.Fprintf(w, "  ContentFormat: %s\n", msg.ContentFormat)
	}
	if msg.PayloadSize > 0 {
		fmt.Fprintf(w, "  Payload: %d bytes", msg.PayloadSize)
		if len(msg.Payload) > 0 {
			fmt.Fprintf(w, " %s", hex.EncodeToString(msg.Payload))
			if len(msg.Payload) < msg.PayloadSize {
				fmt.Fprintf(w, " (truncated)")
			}
		}
		fmt.Fprintln(w)
	}
}

// optionValue renders string options as text and the rest as hex.
func optionValue(opt log.OptionEvent) string {
	switch opt.Number {
	case wire.OptionURIHost, wire.OptionURIPath, wire.OptionURIQuery,
		wire.OptionLocationPath, wire.OptionLocationQuery,
		wire.OptionProxyURI, wire.OptionProxyScheme:
		return fmt.Sprintf("%q", opt.Value)
	case wire.OptionContentFormat, wire.OptionAccept:
		if v, err := wire.OptionUint[uint16](opt.Value); err == nil {
			return wire.ContentFormat(v).String()
		}
	case wire.OptionObserve, wire.OptionMaxAge, wire.OptionURIPort,
		wire.OptionSize1, wire.OptionSize2:
		if v, err := wire.OptionUint[uint32](opt.Value); err == nil {
			return fmt.Sprintf("%d", v)
		}
	}
	if len(opt.Value) == 0 {
		return "(empty)"
	}
	return hex.EncodeToString(opt.Value)
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer)
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %s\n", codeLabel(*err.Code))
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "wire":
		return log.LayerWire, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport or wire)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Layer:     filter.Layer,
		Direction: filter.Direction,
		Category:  filter.Category,
	})
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for event, err := range reader.Events() {
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
